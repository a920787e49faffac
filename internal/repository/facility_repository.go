package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/health-facility-service/internal/domain"
)

// FacilityRepository manages facility persistence.
type FacilityRepository interface {
	Create(ctx context.Context, facility *domain.Facility) error
	GetByID(ctx context.Context, id string) (*domain.Facility, error)
	List(ctx context.Context) ([]domain.Facility, error)
	ListByDistrict(ctx context.Context, districtID string) ([]domain.Facility, error)
	Update(ctx context.Context, id string, upd domain.FacilityUpdate) (*domain.Facility, error)
	SoftDelete(ctx context.Context, id string) (*domain.Facility, error)
}

type facilityRepository struct {
	pool *pgxpool.Pool
}

// NewFacilityRepository builds the repository.
func NewFacilityRepository(pool *pgxpool.Pool) FacilityRepository {
	return &facilityRepository{pool: pool}
}

const facilityColumns = `id, name, address_state, address_city, address_pincode,
        type, district_id, is_active, is_deleted, created_at, updated_at`

func scanFacility(row pgx.Row) (*domain.Facility, error) {
	var facility domain.Facility
	if err := row.Scan(
		&facility.ID,
		&facility.Name,
		&facility.Address.State,
		&facility.Address.City,
		&facility.Address.Pincode,
		&facility.Type,
		&facility.DistrictID,
		&facility.IsActive,
		&facility.IsDeleted,
		&facility.CreatedAt,
		&facility.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &facility, nil
}

func (r *facilityRepository) Create(ctx context.Context, facility *domain.Facility) error {
	const query = `
        INSERT INTO facilities (name, address_state, address_city, address_pincode, type, district_id, is_active, is_deleted)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
        RETURNING id, created_at, updated_at`

	return r.pool.QueryRow(ctx, query,
		facility.Name,
		facility.Address.State,
		facility.Address.City,
		facility.Address.Pincode,
		facility.Type,
		facility.DistrictID,
		facility.IsActive,
		facility.IsDeleted,
	).Scan(&facility.ID, &facility.CreatedAt, &facility.UpdatedAt)
}

func (r *facilityRepository) GetByID(ctx context.Context, id string) (*domain.Facility, error) {
	const query = `SELECT ` + facilityColumns + ` FROM facilities WHERE id=$1`
	return scanFacility(r.pool.QueryRow(ctx, query, id))
}

func (r *facilityRepository) List(ctx context.Context) ([]domain.Facility, error) {
	const query = `SELECT ` + facilityColumns + `
        FROM facilities WHERE is_active AND NOT is_deleted ORDER BY created_at`
	return r.queryMany(ctx, query)
}

func (r *facilityRepository) ListByDistrict(ctx context.Context, districtID string) ([]domain.Facility, error) {
	const query = `SELECT ` + facilityColumns + `
        FROM facilities WHERE district_id=$1 AND is_active AND NOT is_deleted ORDER BY created_at`
	return r.queryMany(ctx, query, districtID)
}

func (r *facilityRepository) queryMany(ctx context.Context, query string, args ...any) ([]domain.Facility, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Facility
	for rows.Next() {
		facility, err := scanFacility(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *facility)
	}
	return result, rows.Err()
}

func (r *facilityRepository) Update(ctx context.Context, id string, upd domain.FacilityUpdate) (*domain.Facility, error) {
	const query = `
        UPDATE facilities SET
            name            = COALESCE($2, name),
            address_state   = COALESCE($3, address_state),
            address_city    = COALESCE($4, address_city),
            address_pincode = COALESCE($5, address_pincode),
            type            = COALESCE($6, type),
            district_id     = COALESCE($7, district_id),
            updated_at      = NOW()
        WHERE id=$1
        RETURNING ` + facilityColumns
	return scanFacility(r.pool.QueryRow(ctx, query, id,
		upd.Name, upd.AddressState, upd.AddressCity, upd.AddressPincode, upd.Type, upd.DistrictID))
}

func (r *facilityRepository) SoftDelete(ctx context.Context, id string) (*domain.Facility, error) {
	const query = `
        UPDATE facilities SET is_deleted=TRUE, updated_at=NOW()
        WHERE id=$1
        RETURNING ` + facilityColumns
	return scanFacility(r.pool.QueryRow(ctx, query, id))
}

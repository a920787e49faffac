package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/health-facility-service/internal/domain"
)

// DistrictRepository manages district persistence.
type DistrictRepository interface {
	Create(ctx context.Context, district *domain.District) error
	GetByID(ctx context.Context, id string) (*domain.District, error)
	List(ctx context.Context) ([]domain.District, error)
	ListByState(ctx context.Context, stateID string) ([]domain.District, error)
	Update(ctx context.Context, id string, upd domain.DistrictUpdate) (*domain.District, error)
	SoftDelete(ctx context.Context, id string) (*domain.District, error)
}

type districtRepository struct {
	pool *pgxpool.Pool
}

// NewDistrictRepository builds the repository.
func NewDistrictRepository(pool *pgxpool.Pool) DistrictRepository {
	return &districtRepository{pool: pool}
}

const districtColumns = `id, name, state_id, is_active, is_deleted, created_at, updated_at`

func scanDistrict(row pgx.Row) (*domain.District, error) {
	var district domain.District
	if err := row.Scan(
		&district.ID,
		&district.Name,
		&district.StateID,
		&district.IsActive,
		&district.IsDeleted,
		&district.CreatedAt,
		&district.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &district, nil
}

func (r *districtRepository) Create(ctx context.Context, district *domain.District) error {
	const query = `
        INSERT INTO districts (name, state_id, is_active, is_deleted)
        VALUES ($1, $2, $3, $4)
        RETURNING id, created_at, updated_at`
	return r.pool.QueryRow(ctx, query,
		district.Name,
		district.StateID,
		district.IsActive,
		district.IsDeleted,
	).Scan(&district.ID, &district.CreatedAt, &district.UpdatedAt)
}

func (r *districtRepository) GetByID(ctx context.Context, id string) (*domain.District, error) {
	const query = `SELECT ` + districtColumns + ` FROM districts WHERE id=$1`
	return scanDistrict(r.pool.QueryRow(ctx, query, id))
}

func (r *districtRepository) List(ctx context.Context) ([]domain.District, error) {
	const query = `SELECT ` + districtColumns + `
        FROM districts WHERE is_active AND NOT is_deleted ORDER BY created_at`
	return r.queryMany(ctx, query)
}

func (r *districtRepository) ListByState(ctx context.Context, stateID string) ([]domain.District, error) {
	const query = `SELECT ` + districtColumns + `
        FROM districts WHERE state_id=$1 AND is_active AND NOT is_deleted ORDER BY created_at`
	return r.queryMany(ctx, query, stateID)
}

func (r *districtRepository) queryMany(ctx context.Context, query string, args ...any) ([]domain.District, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.District
	for rows.Next() {
		district, err := scanDistrict(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *district)
	}
	return result, rows.Err()
}

func (r *districtRepository) Update(ctx context.Context, id string, upd domain.DistrictUpdate) (*domain.District, error) {
	const query = `
        UPDATE districts SET
            name       = COALESCE($2, name),
            state_id   = COALESCE($3, state_id),
            updated_at = NOW()
        WHERE id=$1
        RETURNING ` + districtColumns
	return scanDistrict(r.pool.QueryRow(ctx, query, id, upd.Name, upd.StateID))
}

func (r *districtRepository) SoftDelete(ctx context.Context, id string) (*domain.District, error) {
	const query = `
        UPDATE districts SET is_deleted=TRUE, updated_at=NOW()
        WHERE id=$1
        RETURNING ` + districtColumns
	return scanDistrict(r.pool.QueryRow(ctx, query, id))
}

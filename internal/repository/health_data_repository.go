package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/health-facility-service/internal/domain"
)

// HealthDataRepository manages health-data report persistence.
type HealthDataRepository interface {
	Create(ctx context.Context, report *domain.HealthData) error
	GetByID(ctx context.Context, id string) (*domain.HealthData, error)
	List(ctx context.Context) ([]domain.HealthData, error)
	ListByFacility(ctx context.Context, facilityID string) ([]domain.HealthData, error)
	Update(ctx context.Context, id string, upd domain.HealthDataUpdate) (*domain.HealthData, error)
	UpdateStatus(ctx context.Context, id string, status domain.HealthDataStatus) (*domain.HealthData, error)
	SoftDelete(ctx context.Context, id string) (*domain.HealthData, error)
}

type healthDataRepository struct {
	pool *pgxpool.Pool
}

// NewHealthDataRepository builds the repository.
func NewHealthDataRepository(pool *pgxpool.Pool) HealthDataRepository {
	return &healthDataRepository{pool: pool}
}

const healthDataColumns = `id, facility_id, department_id, reported_by, data,
        status, date_of_report, is_active, is_deleted, created_at, updated_at`

func scanHealthData(row pgx.Row) (*domain.HealthData, error) {
	var report domain.HealthData
	if err := row.Scan(
		&report.ID,
		&report.FacilityID,
		&report.DepartmentID,
		&report.ReportedBy,
		&report.Data,
		&report.Status,
		&report.DateOfReport,
		&report.IsActive,
		&report.IsDeleted,
		&report.CreatedAt,
		&report.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &report, nil
}

func (r *healthDataRepository) Create(ctx context.Context, report *domain.HealthData) error {
	const query = `
        INSERT INTO health_data (facility_id, department_id, reported_by, data, status, date_of_report, is_active, is_deleted)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
        RETURNING id, created_at, updated_at`
	return r.pool.QueryRow(ctx, query,
		report.FacilityID,
		report.DepartmentID,
		report.ReportedBy,
		report.Data,
		report.Status,
		report.DateOfReport,
		report.IsActive,
		report.IsDeleted,
	).Scan(&report.ID, &report.CreatedAt, &report.UpdatedAt)
}

func (r *healthDataRepository) GetByID(ctx context.Context, id string) (*domain.HealthData, error) {
	const query = `SELECT ` + healthDataColumns + ` FROM health_data WHERE id=$1`
	return scanHealthData(r.pool.QueryRow(ctx, query, id))
}

func (r *healthDataRepository) List(ctx context.Context) ([]domain.HealthData, error) {
	const query = `SELECT ` + healthDataColumns + `
        FROM health_data WHERE is_active AND NOT is_deleted ORDER BY date_of_report DESC`
	return r.queryMany(ctx, query)
}

func (r *healthDataRepository) ListByFacility(ctx context.Context, facilityID string) ([]domain.HealthData, error) {
	const query = `SELECT ` + healthDataColumns + `
        FROM health_data WHERE facility_id=$1 AND is_active AND NOT is_deleted ORDER BY date_of_report DESC`
	return r.queryMany(ctx, query, facilityID)
}

func (r *healthDataRepository) queryMany(ctx context.Context, query string, args ...any) ([]domain.HealthData, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.HealthData
	for rows.Next() {
		report, err := scanHealthData(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *report)
	}
	return result, rows.Err()
}

func (r *healthDataRepository) Update(ctx context.Context, id string, upd domain.HealthDataUpdate) (*domain.HealthData, error) {
	const query = `
        UPDATE health_data SET data=COALESCE($2, data), updated_at=NOW()
        WHERE id=$1
        RETURNING ` + healthDataColumns
	var data any
	if upd.Data != nil {
		data = upd.Data
	}
	return scanHealthData(r.pool.QueryRow(ctx, query, id, data))
}

func (r *healthDataRepository) UpdateStatus(ctx context.Context, id string, status domain.HealthDataStatus) (*domain.HealthData, error) {
	const query = `
        UPDATE health_data SET status=$2, updated_at=NOW()
        WHERE id=$1
        RETURNING ` + healthDataColumns
	return scanHealthData(r.pool.QueryRow(ctx, query, id, status))
}

func (r *healthDataRepository) SoftDelete(ctx context.Context, id string) (*domain.HealthData, error) {
	const query = `
        UPDATE health_data SET is_deleted=TRUE, updated_at=NOW()
        WHERE id=$1
        RETURNING ` + healthDataColumns
	return scanHealthData(r.pool.QueryRow(ctx, query, id))
}

package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/health-facility-service/internal/domain"
)

// DepartmentRepository manages department persistence.
type DepartmentRepository interface {
	Create(ctx context.Context, dept *domain.Department) error
	GetByID(ctx context.Context, id string) (*domain.Department, error)
	List(ctx context.Context) ([]domain.Department, error)
	ListByFacility(ctx context.Context, facilityID string) ([]domain.Department, error)
	Update(ctx context.Context, id string, upd domain.DepartmentUpdate) (*domain.Department, error)
	SoftDelete(ctx context.Context, id string) (*domain.Department, error)
}

type departmentRepository struct {
	pool *pgxpool.Pool
}

// NewDepartmentRepository builds the repository.
func NewDepartmentRepository(pool *pgxpool.Pool) DepartmentRepository {
	return &departmentRepository{pool: pool}
}

const departmentColumns = `id, name, facility_id, is_active, is_deleted, created_at, updated_at`

func scanDepartment(row pgx.Row) (*domain.Department, error) {
	var dept domain.Department
	if err := row.Scan(
		&dept.ID,
		&dept.Name,
		&dept.FacilityID,
		&dept.IsActive,
		&dept.IsDeleted,
		&dept.CreatedAt,
		&dept.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &dept, nil
}

func (r *departmentRepository) Create(ctx context.Context, dept *domain.Department) error {
	const query = `
        INSERT INTO departments (name, facility_id, is_active, is_deleted)
        VALUES ($1, $2, $3, $4)
        RETURNING id, created_at, updated_at`
	return r.pool.QueryRow(ctx, query,
		dept.Name,
		dept.FacilityID,
		dept.IsActive,
		dept.IsDeleted,
	).Scan(&dept.ID, &dept.CreatedAt, &dept.UpdatedAt)
}

func (r *departmentRepository) GetByID(ctx context.Context, id string) (*domain.Department, error) {
	const query = `SELECT ` + departmentColumns + ` FROM departments WHERE id=$1`
	return scanDepartment(r.pool.QueryRow(ctx, query, id))
}

func (r *departmentRepository) List(ctx context.Context) ([]domain.Department, error) {
	const query = `SELECT ` + departmentColumns + `
        FROM departments WHERE is_active AND NOT is_deleted ORDER BY created_at`
	return r.queryMany(ctx, query)
}

func (r *departmentRepository) ListByFacility(ctx context.Context, facilityID string) ([]domain.Department, error) {
	const query = `SELECT ` + departmentColumns + `
        FROM departments WHERE facility_id=$1 AND is_active AND NOT is_deleted ORDER BY created_at`
	return r.queryMany(ctx, query, facilityID)
}

func (r *departmentRepository) queryMany(ctx context.Context, query string, args ...any) ([]domain.Department, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Department
	for rows.Next() {
		dept, err := scanDepartment(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *dept)
	}
	return result, rows.Err()
}

func (r *departmentRepository) Update(ctx context.Context, id string, upd domain.DepartmentUpdate) (*domain.Department, error) {
	const query = `
        UPDATE departments SET name=COALESCE($2, name), updated_at=NOW()
        WHERE id=$1
        RETURNING ` + departmentColumns
	return scanDepartment(r.pool.QueryRow(ctx, query, id, upd.Name))
}

func (r *departmentRepository) SoftDelete(ctx context.Context, id string) (*domain.Department, error) {
	const query = `
        UPDATE departments SET is_deleted=TRUE, updated_at=NOW()
        WHERE id=$1
        RETURNING ` + departmentColumns
	return scanDepartment(r.pool.QueryRow(ctx, query, id))
}

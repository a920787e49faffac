package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/health-facility-service/internal/domain"
)

// StateRepository manages state persistence.
type StateRepository interface {
	Create(ctx context.Context, state *domain.State) error
	GetByID(ctx context.Context, id string) (*domain.State, error)
	List(ctx context.Context) ([]domain.State, error)
	Update(ctx context.Context, id string, upd domain.StateUpdate) (*domain.State, error)
	SoftDelete(ctx context.Context, id string) (*domain.State, error)
}

type stateRepository struct {
	pool *pgxpool.Pool
}

// NewStateRepository builds the repository.
func NewStateRepository(pool *pgxpool.Pool) StateRepository {
	return &stateRepository{pool: pool}
}

const stateColumns = `id, name, is_active, is_deleted, created_at, updated_at`

func scanState(row pgx.Row) (*domain.State, error) {
	var state domain.State
	if err := row.Scan(
		&state.ID,
		&state.Name,
		&state.IsActive,
		&state.IsDeleted,
		&state.CreatedAt,
		&state.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &state, nil
}

func (r *stateRepository) Create(ctx context.Context, state *domain.State) error {
	const query = `
        INSERT INTO states (name, is_active, is_deleted)
        VALUES ($1, $2, $3)
        RETURNING id, created_at, updated_at`
	return r.pool.QueryRow(ctx, query, state.Name, state.IsActive, state.IsDeleted).
		Scan(&state.ID, &state.CreatedAt, &state.UpdatedAt)
}

func (r *stateRepository) GetByID(ctx context.Context, id string) (*domain.State, error) {
	const query = `SELECT ` + stateColumns + ` FROM states WHERE id=$1`
	return scanState(r.pool.QueryRow(ctx, query, id))
}

func (r *stateRepository) List(ctx context.Context) ([]domain.State, error) {
	const query = `SELECT ` + stateColumns + `
        FROM states WHERE is_active AND NOT is_deleted ORDER BY created_at`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.State
	for rows.Next() {
		state, err := scanState(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *state)
	}
	return result, rows.Err()
}

func (r *stateRepository) Update(ctx context.Context, id string, upd domain.StateUpdate) (*domain.State, error) {
	const query = `
        UPDATE states SET name=COALESCE($2, name), updated_at=NOW()
        WHERE id=$1
        RETURNING ` + stateColumns
	return scanState(r.pool.QueryRow(ctx, query, id, upd.Name))
}

func (r *stateRepository) SoftDelete(ctx context.Context, id string) (*domain.State, error) {
	const query = `
        UPDATE states SET is_deleted=TRUE, updated_at=NOW()
        WHERE id=$1
        RETURNING ` + stateColumns
	return scanState(r.pool.QueryRow(ctx, query, id))
}

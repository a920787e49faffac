package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/health-facility-service/internal/domain"
)

// UserRepository defines persistence access for users. SoftDelete is
// idempotent: repeating it on an already-deleted row still returns the row.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetActiveByEmail(ctx context.Context, email string) (*domain.User, error)
	ListByRoles(ctx context.Context, roles []domain.Role) ([]domain.User, error)
	Update(ctx context.Context, id string, upd domain.UserUpdate) (*domain.User, error)
	SoftDelete(ctx context.Context, id string) (*domain.User, error)
	SetRefreshToken(ctx context.Context, id, token string) error
	RotateRefreshToken(ctx context.Context, id, presented, next string) error
}

type userRepository struct {
	pool *pgxpool.Pool
}

// NewUserRepository returns a Postgres-backed implementation.
func NewUserRepository(pool *pgxpool.Pool) UserRepository {
	return &userRepository{pool: pool}
}

const userColumns = `id, full_name, email, mobile_number, password_hash, role,
        refresh_token, is_active, is_deleted, created_at, updated_at`

func scanUser(row pgx.Row) (*domain.User, error) {
	var user domain.User
	if err := row.Scan(
		&user.ID,
		&user.FullName,
		&user.Email,
		&user.MobileNumber,
		&user.PasswordHash,
		&user.Role,
		&user.RefreshToken,
		&user.IsActive,
		&user.IsDeleted,
		&user.CreatedAt,
		&user.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) Create(ctx context.Context, user *domain.User) error {
	const query = `
        INSERT INTO users (full_name, email, mobile_number, password_hash, role, is_active, is_deleted)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        RETURNING id, created_at, updated_at`

	return r.pool.QueryRow(ctx, query,
		user.FullName,
		user.Email,
		user.MobileNumber,
		user.PasswordHash,
		user.Role,
		user.IsActive,
		user.IsDeleted,
	).Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)
}

func (r *userRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	const query = `SELECT ` + userColumns + ` FROM users WHERE id=$1`
	return scanUser(r.pool.QueryRow(ctx, query, id))
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	const query = `SELECT ` + userColumns + ` FROM users WHERE email=$1`
	return scanUser(r.pool.QueryRow(ctx, query, email))
}

func (r *userRepository) GetActiveByEmail(ctx context.Context, email string) (*domain.User, error) {
	const query = `SELECT ` + userColumns + `
        FROM users WHERE email=$1 AND is_active AND NOT is_deleted`
	return scanUser(r.pool.QueryRow(ctx, query, email))
}

func (r *userRepository) ListByRoles(ctx context.Context, roles []domain.Role) ([]domain.User, error) {
	const query = `SELECT ` + userColumns + `
        FROM users WHERE role = ANY($1) AND is_active AND NOT is_deleted
        ORDER BY created_at`

	names := make([]string, 0, len(roles))
	for _, role := range roles {
		names = append(names, string(role))
	}

	rows, err := r.pool.Query(ctx, query, names)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.User
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *user)
	}
	return result, rows.Err()
}

func (r *userRepository) Update(ctx context.Context, id string, upd domain.UserUpdate) (*domain.User, error) {
	const query = `
        UPDATE users SET
            full_name     = COALESCE($2, full_name),
            email         = COALESCE($3, email),
            mobile_number = COALESCE($4, mobile_number),
            updated_at    = NOW()
        WHERE id=$1
        RETURNING ` + userColumns
	return scanUser(r.pool.QueryRow(ctx, query, id, upd.FullName, upd.Email, upd.MobileNumber))
}

func (r *userRepository) SoftDelete(ctx context.Context, id string) (*domain.User, error) {
	const query = `
        UPDATE users SET is_deleted=TRUE, updated_at=NOW()
        WHERE id=$1
        RETURNING ` + userColumns
	return scanUser(r.pool.QueryRow(ctx, query, id))
}

func (r *userRepository) SetRefreshToken(ctx context.Context, id, token string) error {
	const query = `UPDATE users SET refresh_token=$2, updated_at=NOW() WHERE id=$1`
	cmd, err := r.pool.Exec(ctx, query, id, token)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

// RotateRefreshToken replaces the stored token only if the presented token is
// still the stored one. The single-statement compare-and-set makes rotation
// race-safe: of two concurrent refreshes, exactly one write wins.
func (r *userRepository) RotateRefreshToken(ctx context.Context, id, presented, next string) error {
	const query = `
        UPDATE users SET refresh_token=$3, updated_at=NOW()
        WHERE id=$1 AND refresh_token=$2`
	cmd, err := r.pool.Exec(ctx, query, id, presented, next)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ijwiryacu/report-service/internal/domain"
)

// AdminRepository defines persistence access for administrators.
type AdminRepository interface {
	GetByID(ctx context.Context, id string) (*domain.AdminUser, error)
	GetByEmail(ctx context.Context, email string) (*domain.AdminUser, error)
	TouchLastLogin(ctx context.Context, id string) error
}

type adminRepository struct {
	pool *pgxpool.Pool
}

// NewAdminRepository returns a Postgres-backed implementation.
func NewAdminRepository(pool *pgxpool.Pool) AdminRepository {
	return &adminRepository{pool: pool}
}

const adminColumns = `id, email, full_name, password_hash, role, is_active, last_login, created_at, updated_at`

func (r *adminRepository) GetByID(ctx context.Context, id string) (*domain.AdminUser, error) {
	const query = `
        SELECT ` + adminColumns + `
        FROM admin_users WHERE id=$1`
	return r.fetchSingle(ctx, query, id)
}

func (r *adminRepository) GetByEmail(ctx context.Context, email string) (*domain.AdminUser, error) {
	const query = `
        SELECT ` + adminColumns + `
        FROM admin_users WHERE email=$1`
	return r.fetchSingle(ctx, query, email)
}

// TouchLastLogin stamps the admin's last successful login time.
func (r *adminRepository) TouchLastLogin(ctx context.Context, id string) error {
	const query = `UPDATE admin_users SET last_login=NOW(), updated_at=NOW() WHERE id=$1`
	cmd, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *adminRepository) fetchSingle(ctx context.Context, query string, arg any) (*domain.AdminUser, error) {
	var admin domain.AdminUser
	if err := r.pool.QueryRow(ctx, query, arg).Scan(
		&admin.ID,
		&admin.Email,
		&admin.FullName,
		&admin.PasswordHash,
		&admin.Role,
		&admin.IsActive,
		&admin.LastLogin,
		&admin.CreatedAt,
		&admin.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &admin, nil
}

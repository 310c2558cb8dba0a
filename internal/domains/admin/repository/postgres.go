package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"blog-backend/internal/domains/admin"
	"blog-backend/internal/domains/admin/model"
)

// DB is the subset of pgxpool.Pool the repository needs. pgxmock
// satisfies it in tests.
type DB interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type postgresRepository struct {
	db DB
}

func NewPostgresRepository(db DB) admin.Repository {
	return &postgresRepository{db: db}
}

// Create inserts the identity only while the admins table is empty. The
// WHERE NOT EXISTS guard makes the singleton check atomic: two concurrent
// registrations cannot both succeed.
func (r *postgresRepository) Create(ctx context.Context, a *model.Admin) error {
	const query = `
		INSERT INTO admins (id, username, email, password_hash, role, created_at, updated_at)
		SELECT $1, $2, $3, $4, $5, $6, $7
		WHERE NOT EXISTS (SELECT 1 FROM admins)
	`

	tag, err := r.db.Exec(ctx, query,
		a.ID,
		a.Username,
		a.Email,
		a.PasswordHash,
		a.Role,
		a.CreatedAt,
		a.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return admin.ErrCredentialsTaken
		}
		return fmt.Errorf("create admin: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return admin.ErrAdminExists
	}

	return nil
}

func (r *postgresRepository) FindByUsername(ctx context.Context, username string) (*model.Admin, error) {
	const query = `
		SELECT id, username, email, password_hash, role, created_at, updated_at
		FROM admins
		WHERE username = $1
	`

	return r.scanOne(r.db.QueryRow(ctx, query, username))
}

func (r *postgresRepository) FindByID(ctx context.Context, id string) (*model.Admin, error) {
	const query = `
		SELECT id, username, email, password_hash, role, created_at, updated_at
		FROM admins
		WHERE id = $1
	`

	return r.scanOne(r.db.QueryRow(ctx, query, id))
}

func (r *postgresRepository) scanOne(row pgx.Row) (*model.Admin, error) {
	var a model.Admin
	err := row.Scan(
		&a.ID,
		&a.Username,
		&a.Email,
		&a.PasswordHash,
		&a.Role,
		&a.CreatedAt,
		&a.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, admin.ErrAdminNotFound
		}
		return nil, fmt.Errorf("scan admin: %w", err)
	}
	return &a, nil
}

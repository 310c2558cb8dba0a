package repository

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blog-backend/internal/domains/admin"
	"blog-backend/internal/domains/admin/model"
)

func newTestAdmin() *model.Admin {
	now := time.Now()
	return &model.Admin{
		ID:           uuid.New(),
		Username:     "alice",
		Email:        "alice@example.com",
		PasswordHash: "$2a$12$hash",
		Role:         model.RoleAdmin,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

func TestCreate_FirstAdmin(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	a := newTestAdmin()
	mock.ExpectExec("INSERT INTO admins").
		WithArgs(a.ID, a.Username, a.Email, a.PasswordHash, a.Role, a.CreatedAt, a.UpdatedAt).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	repo := NewPostgresRepository(mock)
	require.NoError(t, repo.Create(context.Background(), a))
	require.NoError(t, mock.ExpectationsWereMet())
}

// The WHERE NOT EXISTS guard reports zero affected rows once an admin
// exists; that must surface as ErrAdminExists.
func TestCreate_SecondAdminRejected(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	a := newTestAdmin()
	mock.ExpectExec("INSERT INTO admins").
		WithArgs(a.ID, a.Username, a.Email, a.PasswordHash, a.Role, a.CreatedAt, a.UpdatedAt).
		WillReturnResult(pgxmock.NewResult("INSERT", 0))

	repo := NewPostgresRepository(mock)
	assert.ErrorIs(t, repo.Create(context.Background(), a), admin.ErrAdminExists)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreate_UniqueViolation(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	a := newTestAdmin()
	mock.ExpectExec("INSERT INTO admins").
		WithArgs(a.ID, a.Username, a.Email, a.PasswordHash, a.Role, a.CreatedAt, a.UpdatedAt).
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "admins_username_key"})

	repo := NewPostgresRepository(mock)
	assert.ErrorIs(t, repo.Create(context.Background(), a), admin.ErrCredentialsTaken)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestFindByUsername(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	a := newTestAdmin()
	rows := pgxmock.NewRows([]string{"id", "username", "email", "password_hash", "role", "created_at", "updated_at"}).
		AddRow(a.ID, a.Username, a.Email, a.PasswordHash, a.Role, a.CreatedAt, a.UpdatedAt)

	mock.ExpectQuery("SELECT (.+) FROM admins").
		WithArgs("alice").
		WillReturnRows(rows)

	repo := NewPostgresRepository(mock)
	got, err := repo.FindByUsername(context.Background(), "alice")
	require.NoError(t, err)
	assert.Equal(t, a.Username, got.Username)
	assert.Equal(t, a.PasswordHash, got.PasswordHash)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestFindByUsername_NotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectQuery("SELECT (.+) FROM admins").
		WithArgs("nobody").
		WillReturnError(pgx.ErrNoRows)

	repo := NewPostgresRepository(mock)
	_, err = repo.FindByUsername(context.Background(), "nobody")
	assert.ErrorIs(t, err, admin.ErrAdminNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestFindByID_NotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	id := uuid.NewString()
	mock.ExpectQuery("SELECT (.+) FROM admins").
		WithArgs(id).
		WillReturnError(pgx.ErrNoRows)

	repo := NewPostgresRepository(mock)
	_, err = repo.FindByID(context.Background(), id)
	assert.ErrorIs(t, err, admin.ErrAdminNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

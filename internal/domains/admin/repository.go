package admin

import (
	"context"

	"blog-backend/internal/domains/admin/model"
)

// Repository is the credential store contract.
type Repository interface {
	// Create persists the administrator identity. The insert is atomic
	// against concurrent registrations: it succeeds only while the store
	// is empty.
	// Returns ErrAdminExists if an admin is already registered,
	// ErrCredentialsTaken on a username/email collision.
	Create(ctx context.Context, admin *model.Admin) error

	// FindByUsername returns ErrAdminNotFound when absent. Used only by
	// login.
	FindByUsername(ctx context.Context, username string) (*model.Admin, error)

	// FindByID returns ErrAdminNotFound when absent. Used by the verify
	// endpoint to echo the authenticated identity.
	FindByID(ctx context.Context, id string) (*model.Admin, error)
}

package admin

import (
	"context"
)

// Service is the authentication business logic contract.
type Service interface {
	// Register creates the one admin identity. ErrAdminExists once any
	// identity is present; ErrCredentialsTaken on uniqueness violation.
	Register(ctx context.Context, req RegisterRequest) error

	// Login verifies the credentials and issues a session token.
	// Both unknown usernames and wrong passwords yield
	// ErrInvalidCredentials.
	Login(ctx context.Context, req LoginRequest) (*LoginResult, error)

	// Verify resolves a previously authenticated admin id back to its
	// identity summary.
	Verify(ctx context.Context, adminID string) (*AdminDTO, error)
}

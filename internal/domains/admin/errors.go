package admin

import "errors"

var (
	// ErrAdminExists is returned when registration is attempted while an
	// administrator identity already exists. The platform holds at most one.
	ErrAdminExists = errors.New("admin already exists")

	// ErrCredentialsTaken is returned on a username/email uniqueness
	// violation.
	ErrCredentialsTaken = errors.New("username or email already exists")

	// ErrInvalidCredentials covers both unknown username and wrong
	// password, so responses cannot be used for username enumeration.
	ErrInvalidCredentials = errors.New("invalid credentials")

	ErrAdminNotFound = errors.New("admin not found")
)

// Package identity defines the external identity provider collaborator that
// owns the email/password credential and allocates account identifiers.
package identity

import (
	"context"
	"errors"

	"github.com/gofrs/uuid/v5"
)

// Failure kinds specific to the provider. Login-side failures reuse the
// errs sentinels so the account service maps them uniformly.
var (
	// ErrEmailAlreadyExists indicates the email is already registered.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrWeakPassword indicates the password does not meet the provider minimum.
	ErrWeakPassword = errors.New("weak password")

	// ErrInvalidEmail indicates a malformed email address.
	ErrInvalidEmail = errors.New("invalid email")

	// ErrDisabled indicates the identity exists but has been disabled.
	ErrDisabled = errors.New("identity disabled")
)

// Provider manages identity records. Profile data lives elsewhere; the
// provider only knows emails, credentials and display names.
type Provider interface {
	// CreateIdentity registers a new identity and returns its identifier.
	CreateIdentity(ctx context.Context, email, password, displayName string) (uuid.UUID, error)
	// VerifyIdentity checks the credential and returns the identifier.
	// Only used when verification is delegated rather than performed locally
	// against the profile store.
	VerifyIdentity(ctx context.Context, email, password string) (uuid.UUID, error)
}

// Package errs contains sentinel errors used across layers for stable error mapping.
package errs

import (
	"errors"
	"fmt"
)

// Common sentinels across repo/service layers.
var (
	// ErrNotFound indicates the requested profile does not exist.
	ErrNotFound = errors.New("not found")

	// ErrDuplicateEmail indicates the email is already present in the profile store.
	ErrDuplicateEmail = errors.New("duplicate email")

	// ErrAmbiguousEmail indicates more than one profile matched an email lookup.
	// Should never happen given the uniqueness guarantee at create; checked anyway
	// because the store may be eventually consistent. Non-retryable.
	ErrAmbiguousEmail = errors.New("ambiguous email")

	// ErrInvalidCredentials indicates a failed password verification.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrIdentityConflict indicates the email is already registered with the
	// identity provider.
	ErrIdentityConflict = errors.New("identity conflict")

	// ErrPartialFailure indicates the identity record was created but profile
	// persistence failed. Not safe to retry automatically.
	ErrPartialFailure = errors.New("partial failure")

	// ErrRateLimited indicates temporary login lock due to rate limiting.
	ErrRateLimited = errors.New("rate limited")
)

// ValidationError reports the first input rule violated during signup or
// profile update. User-fixable; never reaches the store or identity layer.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation: %s: %s", e.Field, e.Reason)
}

// Validation constructs a ValidationError for the given field.
func Validation(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}

// UserMessage translates an internal error into the text shown to the end
// user. NotFound and InvalidCredentials collapse to the same message so a
// login probe cannot distinguish an unregistered email from a wrong password.
// Raw backend error text is never returned, only logged.
func UserMessage(err error) string {
	var ve *ValidationError
	switch {
	case errors.As(err, &ve):
		return ve.Reason
	case errors.Is(err, ErrNotFound), errors.Is(err, ErrInvalidCredentials):
		return "Invalid email or password."
	case errors.Is(err, ErrDuplicateEmail), errors.Is(err, ErrIdentityConflict):
		return "Email is already registered."
	case errors.Is(err, ErrAmbiguousEmail):
		return "Multiple accounts found with this email. Please contact support."
	case errors.Is(err, ErrPartialFailure):
		return "Account setup incomplete. Please contact support."
	case errors.Is(err, ErrRateLimited):
		return "Too many failed login attempts. Please try again later."
	default:
		return "Something went wrong. Please try again."
	}
}

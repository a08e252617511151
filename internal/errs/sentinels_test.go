package errs

import (
	"errors"
	"fmt"
	"testing"
)

func TestValidationError_ErrorAndAs(t *testing.T) {
	t.Parallel()

	err := Validation("zip", "ZIP must be 5 digits.")
	wrapped := fmt.Errorf("signup: %w", err)

	var ve *ValidationError
	if !errors.As(wrapped, &ve) {
		t.Fatalf("errors.As failed through wrapping")
	}
	if ve.Field != "zip" || ve.Reason != "ZIP must be 5 digits." {
		t.Fatalf("bad fields: %+v", ve)
	}
}

func TestUserMessage_Taxonomy(t *testing.T) {
	t.Parallel()

	cases := []struct {
		err  error
		want string
	}{
		{ErrNotFound, "Invalid email or password."},
		{ErrInvalidCredentials, "Invalid email or password."},
		{ErrDuplicateEmail, "Email is already registered."},
		{ErrIdentityConflict, "Email is already registered."},
		{ErrAmbiguousEmail, "Multiple accounts found with this email. Please contact support."},
		{ErrPartialFailure, "Account setup incomplete. Please contact support."},
		{ErrRateLimited, "Too many failed login attempts. Please try again later."},
		{Validation("state", "State must be 2 letters (ex: NY)."), "State must be 2 letters (ex: NY)."},
		{errors.New("pq: connection refused"), "Something went wrong. Please try again."},
	}
	for _, tc := range cases {
		if got := UserMessage(tc.err); got != tc.want {
			t.Fatalf("UserMessage(%v) = %q, want %q", tc.err, got, tc.want)
		}
	}

	// Wrapped sentinels map the same way; raw backend text never leaks.
	wrapped := fmt.Errorf("%w: store rejected insert for a@b.com", ErrPartialFailure)
	if got := UserMessage(wrapped); got != "Account setup incomplete. Please contact support." {
		t.Fatalf("wrapped UserMessage = %q", got)
	}
}

package service

import (
	"context"

	"github.com/Rakib65104/BCS430HealthcareProject/internal/model"
	"github.com/Rakib65104/BCS430HealthcareProject/internal/task"
	"github.com/gofrs/uuid/v5"
)

// AuthResult is the completion payload of an async signup or login, ready to
// be applied to the session context.
type AuthResult struct {
	Profile *model.Profile
	Tokens  model.Tokens
}

// Account operations are network-bound; the async wrappers run them on a
// background goroutine and hand the result back through a single-assignment
// future so the interactive thread never blocks. In-flight operations are
// not cancellable: a completion arriving after logout is dropped by the
// session's check-and-set, not by cancelling the call.

// SignupAsync runs Signup off the calling goroutine.
func (s *AccountServiceImpl) SignupAsync(ctx context.Context, in SignupInput) *task.Future[AuthResult] {
	return task.Go(func() (AuthResult, error) {
		p, tokens, err := s.Signup(ctx, in)
		return AuthResult{Profile: p, Tokens: tokens}, err
	})
}

// LoginAsync runs Login off the calling goroutine.
func (s *AccountServiceImpl) LoginAsync(ctx context.Context, email, password, client string) *task.Future[AuthResult] {
	return task.Go(func() (AuthResult, error) {
		p, tokens, err := s.Login(ctx, email, password, client)
		return AuthResult{Profile: p, Tokens: tokens}, err
	})
}

// UpdateProfileAsync runs UpdateProfile off the calling goroutine.
func (s *AccountServiceImpl) UpdateProfileAsync(ctx context.Context, id uuid.UUID, upd ProfileUpdate) *task.Future[*model.Profile] {
	return task.Go(func() (*model.Profile, error) {
		return s.UpdateProfile(ctx, id, upd)
	})
}

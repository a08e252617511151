// Package service contains the account service composing the credential
// module, profile store and identity provider.
package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	pkgcrypto "github.com/Rakib65104/BCS430HealthcareProject/internal/crypto"
	"github.com/Rakib65104/BCS430HealthcareProject/internal/errs"
	"github.com/Rakib65104/BCS430HealthcareProject/internal/identity"
	"github.com/Rakib65104/BCS430HealthcareProject/internal/limiter"
	"github.com/Rakib65104/BCS430HealthcareProject/internal/model"
	"github.com/Rakib65104/BCS430HealthcareProject/internal/repository"
	"github.com/gofrs/uuid/v5"
	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
)

// SignupInput carries validated-at-the-form signup fields. Confirmation
// matching happens in the UI layer before this point.
type SignupInput struct {
	Email    string
	Password string
	Name     string
	Role     model.Role
	Patient  *model.PatientInfo // required when Role == RolePatient
	Doctor   *model.DoctorInfo  // required when Role == RoleDoctor
}

// ProfileUpdate lists the mutable fields of a profile. Nil means "leave as
// is". Email, role, credential fields and CreatedAt are not reachable
// through this path; credential rotation is a separate operation.
type ProfileUpdate struct {
	Name    *string
	Patient *model.PatientInfo // full payload replacement, patient accounts only
	Doctor  *model.DoctorInfo  // full payload replacement, doctor accounts only
}

// AccountService defines account creation, authentication and profile edits.
type AccountService interface {
	// Signup creates the identity record and the profile document.
	Signup(ctx context.Context, in SignupInput) (*model.Profile, model.Tokens, error)
	// Login authenticates by email/password with local hash verification.
	Login(ctx context.Context, email, password, client string) (*model.Profile, model.Tokens, error)
	// UpdateProfile applies field mutations and persists the full document.
	UpdateProfile(ctx context.Context, id uuid.UUID, upd ProfileUpdate) (*model.Profile, error)
}

type AccountServiceImpl struct {
	profiles  repository.ProfileRepository
	ids       identity.Provider
	lim       limiter.Limiter
	signKey   []byte
	accessTTL time.Duration
	log       *zap.Logger
}

// NewAccountService constructs AccountService with required dependencies.
func NewAccountService(profiles repository.ProfileRepository, ids identity.Provider, lim limiter.Limiter, signKey []byte, accessTTL time.Duration, log *zap.Logger) *AccountServiceImpl {
	if log == nil {
		log = zap.NewNop()
	}
	return &AccountServiceImpl{profiles: profiles, ids: ids, lim: lim, signKey: signKey, accessTTL: accessTTL, log: log}
}

// Signup validates input, creates the identity record, then persists the
// profile with a freshly salted password hash. No side effect happens before
// validation passes. A DuplicateEmail from the store after the identity was
// created is reported as ErrPartialFailure: the account is half-made and a
// retry would not fix it.
func (s *AccountServiceImpl) Signup(ctx context.Context, in SignupInput) (*model.Profile, model.Tokens, error) {
	if err := validateSignup(&in); err != nil {
		return nil, model.Tokens{}, err
	}

	id, err := s.ids.CreateIdentity(ctx, in.Email, in.Password, in.Name)
	if err != nil {
		switch {
		case errors.Is(err, identity.ErrEmailAlreadyExists):
			return nil, model.Tokens{}, errs.ErrIdentityConflict
		case errors.Is(err, identity.ErrWeakPassword):
			return nil, model.Tokens{}, errs.Validation("password", "Password must be at least 6 characters.")
		case errors.Is(err, identity.ErrInvalidEmail):
			return nil, model.Tokens{}, errs.Validation("email", "Please enter a valid email.")
		default:
			s.log.Error("create identity", zap.String("email", in.Email), zap.Error(err))
			return nil, model.Tokens{}, err
		}
	}

	salt, err := pkgcrypto.GenerateSalt()
	if err != nil {
		return nil, model.Tokens{}, err
	}
	p := &model.Profile{
		ID:           id,
		Email:        in.Email,
		Name:         in.Name,
		Role:         in.Role,
		PasswordHash: pkgcrypto.HashPassword(in.Password, salt),
		PasswordSalt: salt,
		Patient:      in.Patient,
		Doctor:       in.Doctor,
	}
	if err := s.profiles.Create(ctx, p); err != nil {
		if errors.Is(err, errs.ErrDuplicateEmail) {
			s.log.Error("profile create conflict after identity success",
				zap.String("id", id.String()), zap.String("email", in.Email))
			return nil, model.Tokens{}, fmt.Errorf("%w: %v", errs.ErrPartialFailure, err)
		}
		s.log.Error("profile create", zap.String("id", id.String()), zap.Error(err))
		return nil, model.Tokens{}, err
	}

	tokens, err := s.issueTokens(id, in.Role)
	if err != nil {
		return nil, model.Tokens{}, err
	}
	s.log.Info("account created", zap.String("id", id.String()), zap.String("role", string(in.Role)))
	return p.Public(), tokens, nil
}

// Login loads the profile by email and verifies the password locally against
// the stored hash. The internal error kind stays distinct (ErrNotFound vs
// ErrInvalidCredentials) for logging; errs.UserMessage collapses both to the
// same user-facing text.
func (s *AccountServiceImpl) Login(ctx context.Context, email, password, client string) (*model.Profile, model.Tokens, error) {
	clientHash := limiter.HashClient(client)

	allowed, _, err := s.lim.Allow(ctx, email, clientHash)
	if err != nil {
		return nil, model.Tokens{}, err
	}
	if !allowed {
		return nil, model.Tokens{}, errs.ErrRateLimited
	}

	p, err := s.profiles.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, errs.ErrAmbiguousEmail) {
			s.log.Error("ambiguous email during login", zap.String("email", email))
			return nil, model.Tokens{}, err
		}
		if !errors.Is(err, errs.ErrNotFound) {
			s.log.Error("profile lookup", zap.Error(err))
			return nil, model.Tokens{}, err
		}
		return nil, model.Tokens{}, s.recordFailure(ctx, email, clientHash, errs.ErrNotFound)
	}

	if !pkgcrypto.VerifyPassword(password, p.PasswordHash, p.PasswordSalt) {
		return nil, model.Tokens{}, s.recordFailure(ctx, email, clientHash, errs.ErrInvalidCredentials)
	}

	_ = s.lim.Success(ctx, email, clientHash)

	tokens, err := s.issueTokens(p.ID, p.Role)
	if err != nil {
		return nil, model.Tokens{}, err
	}
	s.log.Info("login ok", zap.String("id", p.ID.String()), zap.String("role", string(p.Role)))
	return p.Public(), tokens, nil
}

// recordFailure bumps the limiter and returns the internal error kind,
// upgraded to ErrRateLimited when the failure tripped a block.
func (s *AccountServiceImpl) recordFailure(ctx context.Context, email string, clientHash []byte, kind error) error {
	s.log.Info("login failed", zap.String("email", email), zap.String("kind", kind.Error()))
	if blocked, _, ferr := s.lim.Failure(ctx, email, clientHash); ferr == nil && blocked {
		return errs.ErrRateLimited
	}
	return kind
}

// UpdateProfile loads the current document, applies the mutations and writes
// the full record back. Role, email, credential fields and CreatedAt pass
// through unchanged; UpdatedAt is refreshed by the store.
func (s *AccountServiceImpl) UpdateProfile(ctx context.Context, id uuid.UUID, upd ProfileUpdate) (*model.Profile, error) {
	p, err := s.profiles.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if upd.Name != nil {
		name := *upd.Name
		if name == "" {
			return nil, errs.Validation("name", "Name is required")
		}
		p.Name = name
	}
	if upd.Patient != nil {
		if p.Role != model.RolePatient {
			return nil, errs.Validation("profile", "Patient details do not apply to this account.")
		}
		pi := *upd.Patient
		if err := validatePatientInfo(&pi); err != nil {
			return nil, err
		}
		p.Patient = &pi
	}
	if upd.Doctor != nil {
		if p.Role != model.RoleDoctor {
			return nil, errs.Validation("profile", "Doctor details do not apply to this account.")
		}
		di := *upd.Doctor
		if err := validateDoctorInfo(&di); err != nil {
			return nil, err
		}
		p.Doctor = &di
	}

	if err := s.profiles.Replace(ctx, id, p); err != nil {
		return nil, err
	}
	s.log.Info("profile updated", zap.String("id", id.String()))
	return p.Public(), nil
}

// issueTokens creates a signed HS256 JWT for the given subject and role.
func (s *AccountServiceImpl) issueTokens(id uuid.UUID, role model.Role) (model.Tokens, error) {
	now := time.Now()
	exp := now.Add(s.accessTTL)
	claims := sessionClaims{
		Role: string(role),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   id.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(exp),
		},
	}
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := tok.SignedString(s.signKey)
	if err != nil {
		return model.Tokens{}, err
	}
	return model.Tokens{AccessToken: signed, ExpiresAt: exp}, nil
}

type sessionClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

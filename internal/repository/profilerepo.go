// Package repository defines storage interfaces implemented by concrete backends.
package repository

import (
	"context"

	"github.com/Rakib65104/BCS430HealthcareProject/internal/model"
	"github.com/gofrs/uuid/v5"
)

// ProfileRepository provides durable access to profile documents, one
// document per identifier, both roles in the same store.
type ProfileRepository interface {
	// Create persists a new profile. Fails with errs.ErrDuplicateEmail if the
	// email already exists store-wide. On success CreatedAt/UpdatedAt are
	// populated on the passed profile.
	Create(ctx context.Context, p *model.Profile) error
	// GetByID loads a profile by identifier. Fails with errs.ErrNotFound.
	GetByID(ctx context.Context, id uuid.UUID) (*model.Profile, error)
	// GetByEmail loads a profile by email. Fails with errs.ErrNotFound when
	// absent and errs.ErrAmbiguousEmail when more than one record matches.
	GetByEmail(ctx context.Context, email string) (*model.Profile, error)
	// Replace overwrites the full document. Fails with errs.ErrNotFound if the
	// identifier does not exist. Refreshes UpdatedAt, preserves CreatedAt and
	// Role. Idempotent on retry.
	Replace(ctx context.Context, id uuid.UUID, p *model.Profile) error
}

package identity

import (
	"context"
	"errors"
	"strings"

	"github.com/Rakib65104/BCS430HealthcareProject/internal/crypto"
	"github.com/Rakib65104/BCS430HealthcareProject/internal/errs"
	"github.com/gofrs/uuid/v5"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const minPasswordLen = 6

// PG is a PostgreSQL-backed identity provider. It stores its own salted
// credential copy, independent of the profile store's.
type PG struct {
	pool pgxQuerier
}

type pgxQuerier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// NewPG constructs a PostgreSQL-backed identity provider.
func NewPG(pool *pgxpool.Pool) *PG { return &PG{pool: pool} }

// NewPGWithQuerier constructs a PostgreSQL-backed identity provider.
func NewPGWithQuerier(q pgxQuerier) *PG { return &PG{pool: q} }

// CreateIdentity validates the credential shape, allocates an identifier and
// inserts the identity row. The unique index on email decides the winner
// between concurrent registrations.
func (p *PG) CreateIdentity(ctx context.Context, email, password, displayName string) (uuid.UUID, error) {
	if !strings.Contains(email, "@") || !strings.Contains(email, ".") {
		return uuid.Nil, ErrInvalidEmail
	}
	if len(password) < minPasswordLen {
		return uuid.Nil, ErrWeakPassword
	}

	id, err := uuid.NewV4()
	if err != nil {
		return uuid.Nil, err
	}
	salt, err := crypto.GenerateSalt()
	if err != nil {
		return uuid.Nil, err
	}
	hash := crypto.HashPassword(password, salt)

	const q = `
INSERT INTO identities (id, email, display_name, pwd_hash, pwd_salt)
VALUES ($1, $2, $3, $4, $5)`
	if _, err := p.pool.Exec(ctx, q, id, email, displayName, hash, salt); err != nil {
		if isUniqueViolation(err) {
			return uuid.Nil, ErrEmailAlreadyExists
		}
		return uuid.Nil, err
	}
	return id, nil
}

// VerifyIdentity checks the stored credential for email.
func (p *PG) VerifyIdentity(ctx context.Context, email, password string) (uuid.UUID, error) {
	const q = `
SELECT id, pwd_hash, pwd_salt, disabled FROM identities WHERE email=$1`
	var id uuid.UUID
	var hash, salt string
	var disabled bool
	if err := p.pool.QueryRow(ctx, q, email).Scan(&id, &hash, &salt, &disabled); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return uuid.Nil, errs.ErrNotFound
		}
		return uuid.Nil, err
	}
	if disabled {
		return uuid.Nil, ErrDisabled
	}
	if !crypto.VerifyPassword(password, hash, salt) {
		return uuid.Nil, errs.ErrInvalidCredentials
	}
	return id, nil
}

// isUniqueViolation reports whether the error is a unique constraint violation.
func isUniqueViolation(err error) bool {
	var pg *pgconn.PgError
	return errors.As(err, &pg) && pg.Code == "23505"
}

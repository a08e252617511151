package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Rakib65104/BCS430HealthcareProject/internal/errs"
	"github.com/Rakib65104/BCS430HealthcareProject/internal/model"
	"github.com/gofrs/uuid/v5"
	"github.com/jackc/pgx/v5"
)

// ProfileRepo implements ProfileRepository using PostgreSQL. Common header
// fields live in columns; the role-specific payload is a JSONB document.
type ProfileRepo struct{ db *DB }

// NewProfileRepo constructs a profile repository.
func NewProfileRepo(db *DB) *ProfileRepo { return &ProfileRepo{db: db} }

// encodeDoc serializes the role-specific payload for the doc column.
func encodeDoc(p *model.Profile) ([]byte, error) {
	switch p.Role {
	case model.RolePatient:
		if p.Patient == nil {
			return nil, fmt.Errorf("patient profile %s has no patient payload", p.ID)
		}
		return json.Marshal(p.Patient)
	case model.RoleDoctor:
		if p.Doctor == nil {
			return nil, fmt.Errorf("doctor profile %s has no doctor payload", p.ID)
		}
		return json.Marshal(p.Doctor)
	default:
		return nil, fmt.Errorf("unknown role %q", p.Role)
	}
}

// decodeDoc deserializes the doc column into the payload matching the role.
func decodeDoc(p *model.Profile, raw []byte) error {
	switch p.Role {
	case model.RolePatient:
		p.Patient = &model.PatientInfo{}
		return json.Unmarshal(raw, p.Patient)
	case model.RoleDoctor:
		p.Doctor = &model.DoctorInfo{}
		return json.Unmarshal(raw, p.Doctor)
	default:
		return fmt.Errorf("unknown role %q", p.Role)
	}
}

// Create inserts a new profile row. Timestamps are set by the database and
// written back onto p.
func (r *ProfileRepo) Create(ctx context.Context, p *model.Profile) error {
	doc, err := encodeDoc(p)
	if err != nil {
		return err
	}
	const q = `
INSERT INTO profiles (id, email, name, role, pwd_hash, pwd_salt, doc)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING created_at, updated_at`
	row := r.db.Pool.QueryRow(ctx, q, p.ID, p.Email, p.Name, string(p.Role), p.PasswordHash, p.PasswordSalt, doc)
	if err := row.Scan(&p.CreatedAt, &p.UpdatedAt); err != nil {
		if isUniqueViolation(err) {
			return errs.ErrDuplicateEmail
		}
		return err
	}
	return nil
}

// GetByID selects a profile by identifier.
func (r *ProfileRepo) GetByID(ctx context.Context, id uuid.UUID) (*model.Profile, error) {
	const q = `
SELECT id, email, name, role, pwd_hash, pwd_salt, doc, created_at, updated_at
FROM profiles WHERE id=$1`
	p, err := scanProfile(r.db.Pool.QueryRow(ctx, q, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errs.ErrNotFound
		}
		return nil, err
	}
	return p, nil
}

// GetByEmail selects a profile by email. The query deliberately takes all
// matches so a duplicate slipping past the unique index is surfaced as
// ErrAmbiguousEmail instead of silently picking one.
func (r *ProfileRepo) GetByEmail(ctx context.Context, email string) (*model.Profile, error) {
	const q = `
SELECT id, email, name, role, pwd_hash, pwd_salt, doc, created_at, updated_at
FROM profiles WHERE email=$1`
	rows, err := r.db.Pool.Query(ctx, q, email)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var found *model.Profile
	for rows.Next() {
		p, err := scanProfile(rows)
		if err != nil {
			return nil, err
		}
		if found != nil {
			return nil, errs.ErrAmbiguousEmail
		}
		found = p
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if found == nil {
		return nil, errs.ErrNotFound
	}
	return found, nil
}

// Replace overwrites the full document, refreshing updated_at. Role and
// created_at are never written through this path.
func (r *ProfileRepo) Replace(ctx context.Context, id uuid.UUID, p *model.Profile) error {
	doc, err := encodeDoc(p)
	if err != nil {
		return err
	}
	const q = `
UPDATE profiles
SET email=$2, name=$3, pwd_hash=$4, pwd_salt=$5, doc=$6, updated_at=now()
WHERE id=$1
RETURNING updated_at`
	row := r.db.Pool.QueryRow(ctx, q, id, p.Email, p.Name, p.PasswordHash, p.PasswordSalt, doc)
	if err := row.Scan(&p.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return errs.ErrNotFound
		}
		if isUniqueViolation(err) {
			return errs.ErrDuplicateEmail
		}
		return err
	}
	return nil
}

// scanProfile reads one profile row, decoding the role payload.
func scanProfile(row pgx.Row) (*model.Profile, error) {
	var p model.Profile
	var role string
	var doc []byte
	if err := row.Scan(&p.ID, &p.Email, &p.Name, &role, &p.PasswordHash, &p.PasswordSalt, &doc, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return nil, err
	}
	p.Role = model.Role(role)
	if err := decodeDoc(&p, doc); err != nil {
		return nil, err
	}
	return &p, nil
}

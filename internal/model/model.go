// Package model defines domain entities used by services and repositories.
package model

import (
	"time"

	"github.com/gofrs/uuid/v5"
)

// Role discriminates the two profile kinds.
type Role string

const (
	RolePatient Role = "PATIENT"
	RoleDoctor  Role = "DOCTOR"
)

// Valid reports whether the role is one of the two known kinds.
func (r Role) Valid() bool { return r == RolePatient || r == RoleDoctor }

// Tokens collects issued access tokens for the current session.
type Tokens struct {
	AccessToken string
	ExpiresAt   time.Time // access token expiry (for diagnostics)
}

// PatientInfo is the role-specific payload of a patient profile.
type PatientInfo struct {
	Zip              string `json:"zip"`
	DateOfBirth      string `json:"dateOfBirth,omitempty"`
	Age              int    `json:"age,omitempty"`
	Gender           string `json:"gender,omitempty"`
	InsuranceNumber  string `json:"insuranceNumber,omitempty"`
	InsuranceCompany string `json:"insuranceCompany,omitempty"`
	Allergies        string `json:"allergies,omitempty"`
	MedicalHistory   string `json:"medicalHistory,omitempty"`
}

// DoctorInfo is the role-specific payload of a doctor profile.
type DoctorInfo struct {
	Specialty            string `json:"specialty"`
	ClinicName           string `json:"clinicName"`
	Address              string `json:"address"`
	City                 string `json:"city"`
	State                string `json:"state"` // two uppercase letters
	Zip                  string `json:"zip"`   // five digits
	AcceptingNewPatients bool   `json:"acceptingNewPatients"`
}

// Profile is one account document: a common header plus exactly one
// role-specific payload selected by Role. An identifier never has both.
type Profile struct {
	ID    uuid.UUID
	Email string // unique store-wide, sole login key
	Name  string
	Role  Role // fixed at creation

	// Credential fields, base64 text. Set once at account creation and
	// stripped before a profile leaves the account service.
	PasswordHash string
	PasswordSalt string

	Patient *PatientInfo // set iff Role == RolePatient
	Doctor  *DoctorInfo  // set iff Role == RoleDoctor

	CreatedAt time.Time
	UpdatedAt time.Time // >= CreatedAt, refreshed on every write
}

// Clone returns a deep copy of the profile.
func (p *Profile) Clone() *Profile {
	if p == nil {
		return nil
	}
	c := *p
	if p.Patient != nil {
		pi := *p.Patient
		c.Patient = &pi
	}
	if p.Doctor != nil {
		di := *p.Doctor
		c.Doctor = &di
	}
	return &c
}

// Public returns a copy with the credential fields stripped. Everything
// handed to the UI layer goes through this.
func (p *Profile) Public() *Profile {
	c := p.Clone()
	if c != nil {
		c.PasswordHash = ""
		c.PasswordSalt = ""
	}
	return c
}

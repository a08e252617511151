package service

import (
	"regexp"
	"strings"

	"github.com/Rakib65104/BCS430HealthcareProject/internal/errs"
	"github.com/Rakib65104/BCS430HealthcareProject/internal/model"
)

const minPasswordLen = 6

var (
	zipRe   = regexp.MustCompile(`^\d{5}$`)
	stateRe = regexp.MustCompile(`^[A-Z]{2}$`)
)

// validateSignup checks input shape before any side effect occurs. Reports
// the first violation found. Doctor state is upper-cased in place before the
// format check, matching how the signup form treats it.
func validateSignup(in *SignupInput) error {
	in.Email = strings.TrimSpace(in.Email)
	in.Name = strings.TrimSpace(in.Name)

	if in.Name == "" {
		return errs.Validation("name", "Please fill in all fields.")
	}
	if in.Email == "" {
		return errs.Validation("email", "Please fill in all fields.")
	}
	if !strings.Contains(in.Email, "@") || !strings.Contains(in.Email, ".") {
		return errs.Validation("email", "Please enter a valid email.")
	}
	if len(in.Password) < minPasswordLen {
		return errs.Validation("password", "Password must be at least 6 characters.")
	}

	switch in.Role {
	case model.RolePatient:
		if in.Patient == nil {
			return errs.Validation("role", "Missing patient details.")
		}
		return validatePatientInfo(in.Patient)
	case model.RoleDoctor:
		if in.Doctor == nil {
			return errs.Validation("role", "Missing doctor details.")
		}
		return validateDoctorInfo(in.Doctor)
	default:
		return errs.Validation("role", "Unknown account role.")
	}
}

func validatePatientInfo(pi *model.PatientInfo) error {
	pi.Zip = strings.TrimSpace(pi.Zip)
	if pi.Zip == "" {
		return errs.Validation("zip", "Please fill in all fields.")
	}
	if !zipRe.MatchString(pi.Zip) {
		return errs.Validation("zip", "ZIP must be 5 digits.")
	}
	return nil
}

func validateDoctorInfo(di *model.DoctorInfo) error {
	di.Specialty = strings.TrimSpace(di.Specialty)
	di.ClinicName = strings.TrimSpace(di.ClinicName)
	di.Address = strings.TrimSpace(di.Address)
	di.City = strings.TrimSpace(di.City)
	di.State = strings.ToUpper(strings.TrimSpace(di.State))
	di.Zip = strings.TrimSpace(di.Zip)

	if di.Specialty == "" || di.ClinicName == "" || di.Address == "" || di.City == "" || di.State == "" || di.Zip == "" {
		return errs.Validation("doctor", "Please fill in all fields.")
	}
	if !zipRe.MatchString(di.Zip) {
		return errs.Validation("zip", "ZIP must be 5 digits.")
	}
	if !stateRe.MatchString(di.State) {
		return errs.Validation("state", "State must be 2 letters (ex: NY).")
	}
	return nil
}

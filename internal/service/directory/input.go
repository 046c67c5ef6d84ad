package directory

import (
	"strings"

	"github.com/heartmarshall/careportal-backend/internal/domain"
)

// UpsertInput holds the fields of the admin user form.
type UpsertInput struct {
	Role       domain.Role
	FullName   string
	Username   string
	Password   string
	AccessCode string
	// Chart replaces the patient chart when set. Ignored for other roles.
	Chart *domain.PatientChart
}

func (i UpsertInput) normalize() UpsertInput {
	i.FullName = strings.TrimSpace(i.FullName)
	i.Username = strings.TrimSpace(i.Username)
	i.Password = strings.TrimSpace(i.Password)
	i.AccessCode = strings.TrimSpace(i.AccessCode)
	return i
}

// Validate checks all fields and collects all errors.
func (i UpsertInput) Validate() error {
	var errs []domain.FieldError

	if !i.Role.IsValid() {
		errs = append(errs, domain.FieldError{Field: "role", Message: "must be admin, caregiver or patient"})
	}
	if strings.TrimSpace(i.FullName) == "" {
		errs = append(errs, domain.FieldError{Field: "fullName", Message: "required"})
	}
	if strings.TrimSpace(i.Username) == "" {
		errs = append(errs, domain.FieldError{Field: "username", Message: "required"})
	}
	if i.Chart != nil {
		errs = append(errs, validateMeds(i.Chart.Meds)...)
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// ChartInput holds the fields of the caregiver patient form.
type ChartInput struct {
	FullName   string
	MRN        string
	DOB        string
	Blood      string
	Allergies  string
	AccessCode string
	Meds       []domain.Medication
}

func (i ChartInput) normalize() ChartInput {
	i.FullName = strings.TrimSpace(i.FullName)
	i.MRN = strings.TrimSpace(i.MRN)
	i.DOB = strings.TrimSpace(i.DOB)
	i.Blood = strings.TrimSpace(i.Blood)
	i.Allergies = strings.TrimSpace(i.Allergies)
	i.AccessCode = strings.TrimSpace(i.AccessCode)
	return i
}

// Validate checks the medication list.
func (i ChartInput) Validate() error {
	if errs := validateMeds(i.Meds); len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

func validateMeds(meds []domain.Medication) []domain.FieldError {
	var errs []domain.FieldError
	for _, m := range meds {
		if strings.TrimSpace(m.Name) == "" {
			errs = append(errs, domain.FieldError{Field: "meds", Message: "medication name required"})
			break
		}
	}
	for _, m := range meds {
		if m.Refills < 0 {
			errs = append(errs, domain.FieldError{Field: "meds", Message: "refills must not be negative"})
			break
		}
	}
	return errs
}

package domain

import (
	"encoding/json"
	"fmt"
)

// User is a portal account. Role selects the variant: only patients carry a
// PatientChart, and the chart is reachable only through Patient.
type User struct {
	ID         string
	Role       Role
	FullName   string
	Username   string
	Password   string
	AccessCode string

	chart *PatientChart
}

// PatientChart holds the patient-only part of a user record.
type PatientChart struct {
	MRN       string
	DOB       string
	Blood     string
	Allergies string
	Meds      []Medication
}

// NewUser builds a user of the given role. Patients start with an empty chart.
func NewUser(id string, role Role) User {
	u := User{ID: id}
	u.SetRole(role)
	return u
}

// Patient returns the chart of a patient record.
func (u *User) Patient() (*PatientChart, bool) {
	if u.Role != RolePatient || u.chart == nil {
		return nil, false
	}
	return u.chart, true
}

// IsPatient reports whether u is the patient variant.
func (u *User) IsPatient() bool {
	return u.Role == RolePatient
}

// SetRole switches the variant. Becoming a patient keeps an existing chart or
// initializes an empty one; any other role drops the chart.
func (u *User) SetRole(role Role) {
	u.Role = role
	if role != RolePatient {
		u.chart = nil
		return
	}
	if u.chart == nil {
		u.chart = &PatientChart{Meds: []Medication{}}
	}
	if u.chart.Meds == nil {
		u.chart.Meds = []Medication{}
	}
}

// SetChart replaces the chart of a patient record. It is ignored for other roles.
func (u *User) SetChart(c PatientChart) {
	if u.Role != RolePatient {
		return
	}
	if c.Meds == nil {
		c.Meds = []Medication{}
	}
	u.chart = &c
}

// FieldValue returns the value of a matchable field. Patient-only fields
// report ok=false on other variants.
func (u *User) FieldValue(f UserField) (string, bool) {
	switch f {
	case UserFieldID:
		return u.ID, true
	case UserFieldUsername:
		return u.Username, true
	case UserFieldFullName:
		return u.FullName, true
	case UserFieldAccessCode:
		return u.AccessCode, true
	case UserFieldRole:
		return u.Role.String(), true
	case UserFieldMRN:
		if c, ok := u.Patient(); ok {
			return c.MRN, true
		}
	}
	return "", false
}

// Clone returns a deep copy so callers can mutate without aliasing stored data.
func (u User) Clone() User {
	if u.chart != nil {
		c := *u.chart
		c.Meds = append([]Medication(nil), u.chart.Meds...)
		u.chart = &c
	}
	return u
}

// userRecord is the persisted shape. It is flat so existing records written
// by the browser portal remain readable.
type userRecord struct {
	ID         string `json:"id"`
	Role       Role   `json:"role"`
	FullName   string `json:"fullName"`
	Username   string `json:"username"`
	Password   string `json:"password"`
	AccessCode string `json:"accessCode"`

	MRN       *string         `json:"mrn,omitempty"`
	DOB       *string         `json:"dob,omitempty"`
	Blood     *string         `json:"blood,omitempty"`
	Allergies *string         `json:"allergies,omitempty"`
	Meds      *medicationList `json:"meds,omitempty"`
}

func (u User) MarshalJSON() ([]byte, error) {
	rec := userRecord{
		ID:         u.ID,
		Role:       u.Role,
		FullName:   u.FullName,
		Username:   u.Username,
		Password:   u.Password,
		AccessCode: u.AccessCode,
	}
	if c, ok := u.Patient(); ok {
		meds := medicationList(c.Meds)
		if meds == nil {
			meds = medicationList{}
		}
		rec.MRN = &c.MRN
		rec.DOB = &c.DOB
		rec.Blood = &c.Blood
		rec.Allergies = &c.Allergies
		rec.Meds = &meds
	}
	return json.Marshal(rec)
}

func (u *User) UnmarshalJSON(data []byte) error {
	var rec userRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return fmt.Errorf("decode user: %w", err)
	}

	*u = User{
		ID:         rec.ID,
		FullName:   rec.FullName,
		Username:   rec.Username,
		Password:   rec.Password,
		AccessCode: rec.AccessCode,
	}
	u.SetRole(rec.Role)

	if c, ok := u.Patient(); ok {
		c.MRN = deref(rec.MRN)
		c.DOB = deref(rec.DOB)
		c.Blood = deref(rec.Blood)
		c.Allergies = deref(rec.Allergies)
		if rec.Meds != nil {
			c.Meds = []Medication(*rec.Meds)
		}
		if c.Meds == nil {
			c.Meds = []Medication{}
		}
	}
	return nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

package domain

import "time"

// Ticket is an admin-facing snapshot of a caregiver message. It keeps a copy
// of the text and is not linked back to the message once created.
type Ticket struct {
	ID                string    `json:"id"`
	FromCaregiverID   string    `json:"fromCaregiverId"`
	FromCaregiverName string    `json:"fromCaregiverName"`
	PatientID         string    `json:"patientId"`
	PatientName       string    `json:"patientName"`
	Text              string    `json:"text"`
	CreatedAt         time.Time `json:"createdAt"`
	Done              bool      `json:"done"`
}

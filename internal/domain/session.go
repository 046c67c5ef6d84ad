package domain

// SessionContext is the persisted login state of the device. The three
// values are set independently and cleared together on logout.
type SessionContext struct {
	UserID             string
	PatientID          string
	AdminAuthenticated bool
}

// IsZero reports whether nobody is logged in.
func (s SessionContext) IsZero() bool {
	return s.UserID == "" && s.PatientID == "" && !s.AdminAuthenticated
}

package domain

// Role represents the portal area a user belongs to. It selects both the
// record variant and the login pool.
type Role string

const (
	RoleAdmin     Role = "admin"
	RoleCaregiver Role = "caregiver"
	RolePatient   Role = "patient"
)

func (r Role) String() string { return string(r) }

func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleCaregiver, RolePatient:
		return true
	}
	return false
}

// AuthorRole identifies who wrote a message or issue entry.
type AuthorRole string

const (
	AuthorCaregiver AuthorRole = "caregiver"
	AuthorPatient   AuthorRole = "patient"
)

func (a AuthorRole) String() string { return string(a) }

func (a AuthorRole) IsValid() bool {
	switch a {
	case AuthorCaregiver, AuthorPatient:
		return true
	}
	return false
}

// UserField names a user attribute that can be matched by directory lookups.
type UserField string

const (
	UserFieldID         UserField = "id"
	UserFieldUsername   UserField = "username"
	UserFieldFullName   UserField = "fullName"
	UserFieldAccessCode UserField = "accessCode"
	UserFieldRole       UserField = "role"
	UserFieldMRN        UserField = "mrn"
)

func (f UserField) String() string { return string(f) }

func (f UserField) IsValid() bool {
	switch f {
	case UserFieldID, UserFieldUsername, UserFieldFullName,
		UserFieldAccessCode, UserFieldRole, UserFieldMRN:
		return true
	}
	return false
}

package session

import (
	"strings"

	"github.com/heartmarshall/careportal-backend/internal/domain"
)

// Credentials is what a login form submits. Either username and password or
// the access code is enough.
type Credentials struct {
	Username   string
	Password   string
	AccessCode string
}

func (c Credentials) normalize() Credentials {
	c.Username = strings.TrimSpace(c.Username)
	c.Password = strings.TrimSpace(c.Password)
	c.AccessCode = strings.TrimSpace(c.AccessCode)
	return c
}

// matchesPassword reports a username and password match. A blank username
// never matches.
func (c Credentials) matchesPassword(u domain.User) bool {
	return c.Username != "" && u.Username == c.Username && u.Password == c.Password
}

// matchesCode reports an access code match. Blank codes never match.
func (c Credentials) matchesCode(u domain.User) bool {
	return c.AccessCode != "" && u.AccessCode != "" && u.AccessCode == c.AccessCode
}

// Result is a successful login.
type Result struct {
	User    domain.User
	Session domain.SessionContext
}

package domain

import "strings"

// IsValidEmail is a structural check: exactly one "@", a non-empty local
// part, and a dotted domain part without leading/trailing dots or spaces.
// The HTTP layer applies the stricter RFC validation on top; this predicate
// guards direct service callers.
func IsValidEmail(s string) bool {
	if strings.ContainsAny(s, " \t") {
		return false
	}
	at := strings.Index(s, "@")
	if at <= 0 || at != strings.LastIndex(s, "@") {
		return false
	}
	dom := s[at+1:]
	if len(dom) < 3 || strings.HasPrefix(dom, ".") || strings.HasSuffix(dom, ".") {
		return false
	}
	return strings.Contains(dom, ".")
}

// User is the internal identity record. PasswordHash is the bcrypt verifier
// and must never leave the process; outward-facing code works with PublicUser.
//
// Emails are matched case-sensitively everywhere (store lookups, duplicate
// checks, product ownership).
type User struct {
	ID           string
	Name         string
	Email        string
	Phone        string
	NationalID   string
	PasswordHash string
	Role         string
}

// PublicUser is the projection returned by handlers. It has no verifier
// field at all, so a serialization bug cannot leak it.
type PublicUser struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	NationalID string `json:"nationalID"`
	Role       string `json:"role"`
}

func (u User) Public() PublicUser {
	return PublicUser{
		ID:         u.ID,
		Name:       u.Name,
		Email:      u.Email,
		Phone:      u.Phone,
		NationalID: u.NationalID,
		Role:       u.Role,
	}
}

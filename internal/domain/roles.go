package domain

type Role string

const (
	// User can manage their own account, products they created, and their
	// own shopping lists.
	RoleUser Role = "user"
	// Admin can additionally mutate any product.
	RoleAdmin Role = "admin"
)

func IsValidRole(r string) bool {
	return r == string(RoleUser) || r == string(RoleAdmin)
}

// NormalizeRole returns the requested role when it is exactly "user" or
// "admin", and RoleUser for anything else (absent, misspelled, unknown).
func NormalizeRole(requested string) string {
	if IsValidRole(requested) {
		return requested
	}
	return string(RoleUser)
}

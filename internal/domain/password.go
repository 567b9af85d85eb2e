package domain

// IsStrongPassword reports whether a password meets the registration policy:
// at least 8 characters, at least one ASCII uppercase letter and at least one
// ASCII digit. No other character class is required.
func IsStrongPassword(password string) bool {
	runes := []rune(password)
	if len(runes) < 8 {
		return false
	}

	hasUpper := false
	hasDigit := false
	for _, r := range runes {
		switch {
		case r >= 'A' && r <= 'Z':
			hasUpper = true
		case r >= '0' && r <= '9':
			hasDigit = true
		}
		if hasUpper && hasDigit {
			return true
		}
	}
	return false
}

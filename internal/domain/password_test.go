package domain

import "testing"

func TestIsStrongPassword(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name     string
		password string
		want     bool
	}{
		{"upper and digit, long enough", "Password123", true},
		{"all lowercase", "weakpass", false},
		{"no digit", "PASSWORD", false},
		{"no uppercase", "passw0rd", false},
		{"too short", "Pass1", false},
		{"exactly eight", "Passwrd1", true},
		{"empty", "", false},
		{"digit and upper at the end", "aaaaaaA1", true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := IsStrongPassword(tc.password); got != tc.want {
				t.Fatalf("IsStrongPassword(%q) = %v, want %v", tc.password, got, tc.want)
			}
		})
	}
}

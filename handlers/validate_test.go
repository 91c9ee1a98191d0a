package handlers

import "testing"

func TestValidEmail(t *testing.T) {
	cases := map[string]bool{
		"user@example.com":    true,
		"a.b+c@sub.domain.io": true,
		"not-an-email":        false,
		"user@domain":         false,
		"user@domain.c":       false,
		"user name@domain.co": false,
		"@domain.com":         false,
		"user@.com":           false,
	}
	for in, want := range cases {
		if got := validEmail(in); got != want {
			t.Errorf("validEmail(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestValidPassword(t *testing.T) {
	cases := map[string]bool{
		"Abc123":      true,
		"longEnough1": true,
		"Abcdefg":     false, // no digit
		"abc123":      false, // no uppercase
		"ABC123":      false, // no lowercase
		"Ab1":         false, // too short
	}
	for in, want := range cases {
		if got := validPassword(in); got != want {
			t.Errorf("validPassword(%q) = %v, want %v", in, got, want)
		}
	}
}

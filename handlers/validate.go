package handlers

import "regexp"

// Format checks mirror the signup policy the frontend was built against.
// The password policy is conjunctive (every class must be present), which is
// what the original lookahead pattern expressed.
var (
	emailRe    = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]{2,}$`)
	hasDigitRe = regexp.MustCompile(`[0-9]`)
	hasLowerRe = regexp.MustCompile(`[a-z]`)
	hasUpperRe = regexp.MustCompile(`[A-Z]`)
)

func validEmail(email string) bool {
	return emailRe.MatchString(email)
}

func validPassword(password string) bool {
	return len(password) >= 6 &&
		hasDigitRe.MatchString(password) &&
		hasLowerRe.MatchString(password) &&
		hasUpperRe.MatchString(password)
}

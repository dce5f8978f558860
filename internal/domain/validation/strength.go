// Package validation provides pure credential validation predicates.
package validation

import "unicode"

// maxStrengthScore is the upper bound of the password strength scale.
const maxStrengthScore = 100

// PasswordStrength scores a password on a 0-100 scale.
//
// The score is additive: length bands (+5 below 8 characters, +10 at 8 or
// more, a further +10 at 12 and again at 16), +10 for each character class
// present (uppercase, lowercase, digit, special), +15 when at least three
// classes are present and a further +15 when all four are. The total is
// capped at 100. An empty password scores 0.
func PasswordStrength(password string) int {
	if password == "" {
		return 0
	}

	score := 0

	if len(password) < 8 {
		score += 5
	} else {
		score += 10
	}
	if len(password) >= 12 {
		score += 10
	}
	if len(password) >= 16 {
		score += 10
	}

	var hasUpper, hasLower, hasDigit, hasSpecial bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		default:
			hasSpecial = true
		}
	}

	classes := 0
	for _, present := range []bool{hasUpper, hasLower, hasDigit, hasSpecial} {
		if present {
			score += 10
			classes++
		}
	}

	if classes >= 3 {
		score += 15
	}
	if classes == 4 {
		score += 15
	}

	if score > maxStrengthScore {
		return maxStrengthScore
	}
	return score
}

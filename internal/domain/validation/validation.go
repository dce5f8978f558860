// Package validation provides pure credential validation predicates.
// All functions are stateless and side-effect free: a value is either
// valid or invalid under a given rule, malformed input is simply invalid.
package validation

import (
	"regexp"
	"strings"
	"unicode"
)

var (
	// emailPattern matches local@domain.tld with a final label of at least 2 letters.
	emailPattern = regexp.MustCompile(`^[A-Za-z0-9+_.-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}$`)

	// phonePattern matches Vietnamese mobile numbers: leading 0, second digit 3-9,
	// followed by 8 or 9 more digits (10 or 11 digits total).
	phonePattern = regexp.MustCompile(`^0[3-9][0-9]{8,9}$`)
)

// IsValidEmail reports whether the given string is a well-formed email address.
// Surrounding whitespace is trimmed before matching.
func IsValidEmail(email string) bool {
	trimmed := strings.TrimSpace(email)
	if trimmed == "" {
		return false
	}
	return emailPattern.MatchString(trimmed)
}

// IsValidPassword reports whether a password meets the minimum requirements:
// at least 8 characters with at least one uppercase letter, one lowercase
// letter, and one digit. Special characters are not required.
func IsValidPassword(password string) bool {
	if len(password) < 8 {
		return false
	}

	var hasUpper, hasLower, hasDigit bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}

	return hasUpper && hasLower && hasDigit
}

// IsValidUsername reports whether a username is 3-20 characters long and
// contains only ASCII letters, digits, or underscores.
func IsValidUsername(username string) bool {
	if len(username) < 3 || len(username) > 20 {
		return false
	}

	for _, r := range username {
		isLetter := (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
		isDigit := r >= '0' && r <= '9'
		if !isLetter && !isDigit && r != '_' {
			return false
		}
	}
	return true
}

// IsValidPhoneNumber reports whether the given string is a valid Vietnamese
// mobile number. Surrounding whitespace is trimmed before matching.
func IsValidPhoneNumber(phone string) bool {
	trimmed := strings.TrimSpace(phone)
	if trimmed == "" {
		return false
	}
	return phonePattern.MatchString(trimmed)
}

// IsValidAge reports whether an age is within the accepted range of 1 to 150.
func IsValidAge(age int) bool {
	return age >= 1 && age <= 150
}

// IsValidCreditCard reports whether a card number passes the Luhn checksum.
// The number must be 13-19 characters long and contain only digits.
func IsValidCreditCard(cardNumber string) bool {
	if len(cardNumber) < 13 || len(cardNumber) > 19 {
		return false
	}

	for _, r := range cardNumber {
		if r < '0' || r > '9' {
			return false
		}
	}

	// Luhn: from the rightmost digit, double every second one and subtract 9
	// from doubled values above 9; valid when the total is divisible by 10.
	sum := 0
	double := false
	for i := len(cardNumber) - 1; i >= 0; i-- {
		n := int(cardNumber[i] - '0')
		if double {
			n *= 2
			if n > 9 {
				n -= 9
			}
		}
		sum += n
		double = !double
	}

	return sum%10 == 0
}

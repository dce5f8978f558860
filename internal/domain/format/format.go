// Package format provides pure string formatting and masking helpers for
// displaying credentials and contact details. All functions are stateless and
// tolerate malformed input by degrading to a safe placeholder.
package format

import (
	"regexp"
	"strings"
	"unicode"
)

var (
	nonDigitPattern  = regexp.MustCompile(`\D`)
	slugStripPattern = regexp.MustCompile(`[^a-z0-9\s-]`)
	whitespaceRun    = regexp.MustCompile(`\s+`)
	hyphenRun        = regexp.MustCompile(`-+`)
)

// PhoneNumber formats a raw phone number as "0xxx-xxx-xxx" or "0xxx-xxx-xxxx".
// Non-digit characters are stripped first. Numbers with fewer than 10 or more
// than 11 digits are returned as bare digits.
func PhoneNumber(phone string) string {
	if strings.TrimSpace(phone) == "" {
		return ""
	}

	digits := nonDigitPattern.ReplaceAllString(phone, "")
	if len(digits) < 10 || len(digits) > 11 {
		return digits
	}
	return digits[:4] + "-" + digits[4:7] + "-" + digits[7:]
}

// MaskCreditCard masks a card number for display, keeping only the last four
// digits (e.g. "**** **** **** 1234"). Inputs with fewer than four digits
// yield "****".
func MaskCreditCard(cardNumber string) string {
	if len(cardNumber) < 4 {
		return "****"
	}

	digits := nonDigitPattern.ReplaceAllString(cardNumber, "")
	if len(digits) < 4 {
		return "****"
	}
	return "**** **** **** " + digits[len(digits)-4:]
}

// MaskEmail masks the local part of an email address for privacy, keeping its
// first and last characters (e.g. "t***r@example.com"). Local parts of one or
// two characters keep only the first. Strings without "@" yield "***".
func MaskEmail(email string) string {
	atIndex := strings.Index(email, "@")
	if atIndex <= 0 {
		return "***"
	}

	localPart := email[:atIndex]
	domain := email[atIndex:]

	if len(localPart) <= 2 {
		return localPart[:1] + "***" + domain
	}
	return localPart[:1] + "***" + localPart[len(localPart)-1:] + domain
}

// Slug converts text to a lowercase hyphen-separated slug, dropping every
// character outside [a-z0-9], whitespace, and hyphens, then collapsing runs.
func Slug(text string) string {
	if strings.TrimSpace(text) == "" {
		return ""
	}

	slug := strings.TrimSpace(strings.ToLower(text))
	slug = slugStripPattern.ReplaceAllString(slug, "")
	slug = whitespaceRun.ReplaceAllString(slug, "-")
	return hyphenRun.ReplaceAllString(slug, "-")
}

// TitleCase capitalizes the first letter of each whitespace-separated word and
// lowercases the rest.
func TitleCase(text string) string {
	if strings.TrimSpace(text) == "" {
		return ""
	}

	var sb strings.Builder
	sb.Grow(len(text))
	capitalizeNext := true
	for _, r := range text {
		switch {
		case unicode.IsSpace(r):
			capitalizeNext = true
			sb.WriteRune(r)
		case capitalizeNext:
			sb.WriteRune(unicode.ToUpper(r))
			capitalizeNext = false
		default:
			sb.WriteRune(unicode.ToLower(r))
		}
	}
	return sb.String()
}

// Truncate shortens text to maxLength characters, replacing the tail with
// "..." when it fits. A non-positive maxLength yields the empty string; a
// maxLength of three or less leaves no room for the ellipsis and cuts hard.
func Truncate(text string, maxLength int) string {
	if maxLength <= 0 {
		return ""
	}
	if len(text) <= maxLength {
		return text
	}
	if maxLength <= 3 {
		return text[:maxLength]
	}
	return text[:maxLength-3] + "..."
}

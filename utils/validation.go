// utils/validation.go
package utils

import (
	"regexp"
	"strings"
)

var phonePattern = regexp.MustCompile(`^\+?\d{7,15}$`)

// CleanPhone strips spaces, dashes and brackets so equal numbers compare
// equal however they were typed.
func CleanPhone(phone string) string {
	cleaned := strings.ReplaceAll(phone, " ", "")
	cleaned = strings.ReplaceAll(cleaned, "-", "")
	cleaned = strings.ReplaceAll(cleaned, "(", "")
	cleaned = strings.ReplaceAll(cleaned, ")", "")
	return cleaned
}

// ValidatePhone accepts local numbers with a leading 0 ("0300 1234567") as
// well as international ones ("+923001234567").
func ValidatePhone(phone string) bool {
	return phonePattern.MatchString(CleanPhone(phone))
}

// NormalizePhone converts a local number to E.164 using countryCode
// ("+92"). Numbers already starting with '+' only lose their separators.
func NormalizePhone(phone, countryCode string) string {
	cleaned := CleanPhone(strings.TrimSpace(phone))
	switch {
	case strings.HasPrefix(cleaned, "+"):
		return cleaned
	case strings.HasPrefix(cleaned, "00"):
		return "+" + cleaned[2:]
	case strings.HasPrefix(cleaned, "0") && countryCode != "":
		return countryCode + cleaned[1:]
	default:
		return cleaned
	}
}

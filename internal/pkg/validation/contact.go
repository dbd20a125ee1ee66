package validation

import (
	"strings"
	"unicode"
)

// NormalizePhone strips everything but digits.
func NormalizePhone(phone string) string {
	var b strings.Builder
	for _, r := range phone {
		if unicode.IsDigit(r) && r < unicode.MaxASCII {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// IsValidPhone reports whether the phone has 10 or 11 digits once normalized
// (area code plus 8 or 9 digit number).
func IsValidPhone(phone string) bool {
	n := len(NormalizePhone(phone))
	return n == 10 || n == 11
}

// IsValidEmail reports whether email is an address with a dotted domain.
func IsValidEmail(email string) bool {
	return validate.Var(email, "contact_email") == nil
}

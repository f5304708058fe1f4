package utils

import (
	"errors"
	"strings"
)

// Checkout validation errors carry user-facing messages; this is the one
// boundary where end users see errors.
var (
	ErrMissingFields = errors.New("Please fill in your name and delivery address")
	ErrInvalidPhone  = errors.New("Please enter a valid +996 phone number")
)

// FormatPhone renders a Kyrgyz phone number as "+996 XXX XXX XXX", grouping
// whatever digits are present so far. The country prefix is stripped from the
// input if the user typed it.
func FormatPhone(raw string) string {
	digits := onlyDigits(raw)
	digits = strings.TrimPrefix(digits, "996")
	if len(digits) > 9 {
		digits = digits[:9]
	}
	if digits == "" {
		return "+996 "
	}

	var b strings.Builder
	b.WriteString("+996 ")
	b.WriteString(digits[:min(3, len(digits))])
	if len(digits) > 3 {
		b.WriteString(" ")
		b.WriteString(digits[3:min(6, len(digits))])
	}
	if len(digits) > 6 {
		b.WriteString(" ")
		b.WriteString(digits[6:])
	}
	return b.String()
}

// ValidateCheckout checks the checkout form. The returned error message is
// safe to show to the user. The phone is validated in its formatted form: a
// full number is 996 plus nine digits.
func ValidateCheckout(fullName, phone, address string) error {
	if strings.TrimSpace(fullName) == "" || strings.TrimSpace(address) == "" {
		return ErrMissingFields
	}
	digits := onlyDigits(FormatPhone(phone))
	if !strings.HasPrefix(digits, "996") || len(digits) != 12 {
		return ErrInvalidPhone
	}
	return nil
}

func onlyDigits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

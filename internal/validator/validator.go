// Package validator provides stateless predicate checks over raw field
// values, consulted before domain entities are constructed.
package validator

import (
	"regexp"
	"strings"
)

const (
	// DefaultMinAccountNumberLength is the shortest accepted account number.
	DefaultMinAccountNumberLength = 8
	// DefaultMaxAccountNumberLength is the longest accepted account number.
	DefaultMaxAccountNumberLength = 12

	minAge = 18
	maxAge = 120
)

var digitsOnly = regexp.MustCompile(`^\d+$`)

// AccountValidator holds the configured account-number length bounds.
// All checks fail closed on empty input.
type AccountValidator struct {
	minAccountNumberLength int
	maxAccountNumberLength int
}

// New creates a validator with the default 8-12 length bounds.
func New() *AccountValidator {
	return NewWithBounds(DefaultMinAccountNumberLength, DefaultMaxAccountNumberLength)
}

// NewWithBounds creates a validator with explicit account-number length
// bounds, so the limits stay configuration rather than hidden globals.
func NewWithBounds(minLength, maxLength int) *AccountValidator {
	return &AccountValidator{
		minAccountNumberLength: minLength,
		maxAccountNumberLength: maxLength,
	}
}

// IsValidAccountNumber reports whether the trimmed value is all decimal
// digits and within the configured length bounds.
func (v *AccountValidator) IsValidAccountNumber(accountNumber string) bool {
	accountNumber = strings.TrimSpace(accountNumber)

	if len(accountNumber) < v.minAccountNumberLength || len(accountNumber) > v.maxAccountNumberLength {
		return false
	}

	return digitsOnly.MatchString(accountNumber)
}

// IsValidEmail reports whether the trimmed value contains an "@" that is
// neither the first character nor past the last position. Multiple "@"
// characters are accepted as long as the first one satisfies the bounds;
// "user@@email.com" is valid. That permissiveness is intentional and
// covered by tests.
func (v *AccountValidator) IsValidEmail(email string) bool {
	email = strings.TrimSpace(email)

	idx := strings.Index(email, "@")

	return idx > 0 && idx < len(email)-1
}

// IsValidAge reports whether the age is within 18-120 inclusive.
func (v *AccountValidator) IsValidAge(age int) bool {
	return age >= minAge && age <= maxAge
}

// CanOpenAccount reports whether the age is valid and the initial
// balance is non-negative.
func (v *AccountValidator) CanOpenAccount(age int, initialBalance float64) bool {
	return v.IsValidAge(age) && initialBalance >= 0
}

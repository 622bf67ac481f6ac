package cpf

import (
	"context"
	"regexp"
	"strings"
	"sync"

	"github.com/dmitrymomot/cpfkit/pkg/sanitizer"
)

// Length is the number of digits in a normalized CPF.
const Length = 11

var digitsRegex = regexp.MustCompile(`^[0-9]{11}$`)

var defaultValidator = sync.OnceValue(func() *Validator {
	return New()
})

// Normalize strips whitespace, dots and hyphens. It does not validate.
func Normalize(s string) string {
	return sanitizer.StripSeparators(s)
}

// hasValidPattern reports whether s is exactly eleven ASCII digits that are not
// all the same digit.
func hasValidPattern(s string) bool {
	if !digitsRegex.MatchString(s) {
		return false
	}
	return strings.Count(s, s[:1]) != Length
}

// Validate checks input with the default validator: English messages, no logging.
// A nil input is reported as NullInput.
func Validate(input *string) Result {
	return defaultValidator().Validate(context.Background(), input)
}

// ValidateString is Validate for input that is always present.
func ValidateString(s string) Result {
	return Validate(&s)
}

// IsValid reports whether s is a valid CPF.
func IsValid(s string) bool {
	return ValidateString(s).Valid
}

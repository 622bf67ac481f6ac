package validator

import (
	"context"

	"github.com/dmitrymomot/cpfkit/pkg/cpf"
	"github.com/dmitrymomot/cpfkit/pkg/sanitizer"
)

// ValidCPF validates a Brazilian individual taxpayer number, with or without punctuation.
// The translation key is "validation.cpf.<kind>", e.g. "validation.cpf.invalid_cpf".
func ValidCPF(field, value string) Rule {
	return cpfRule(field, cpf.ValidateString(value))
}

// RequiredCPF is ValidCPF for optional input; a nil value fails as null_input.
func RequiredCPF(field string, value *string) Rule {
	return cpfRule(field, cpf.Validate(value))
}

// OptionalCPF passes when value is nil or blank and validates it otherwise.
func OptionalCPF(field string, value *string) Rule {
	if value == nil || sanitizer.StripSeparators(*value) == "" {
		return Rule{
			Check: func() bool { return true },
			Error: ValidationError{Field: field},
		}
	}
	return cpfRule(field, cpf.Validate(value))
}

// ValidCPFWith runs the check through v, so messages follow its language and
// the call is logged by its logger.
func ValidCPFWith(ctx context.Context, v *cpf.Validator, field, value string) Rule {
	return cpfRule(field, v.ValidateString(ctx, value))
}

func cpfRule(field string, res cpf.Result) Rule {
	key := "validation.cpf"
	if kind := res.ErrorKind(); kind != "" {
		key += "." + kind.String()
	}

	return Rule{
		Check: func() bool {
			return res.Valid
		},
		Error: ValidationError{
			Field:          field,
			Message:        res.Message(),
			TranslationKey: key,
			TranslationValues: map[string]any{
				"field": field,
				"cpf":   res.Digits,
			},
		},
	}
}

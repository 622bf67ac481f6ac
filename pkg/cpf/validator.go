package cpf

import (
	"context"
	"log/slog"

	"github.com/dmitrymomot/cpfkit/pkg/i18n"
	"github.com/dmitrymomot/cpfkit/pkg/logger"
)

// Translator resolves message keys; *i18n.Translator satisfies it.
type Translator interface {
	T(lang, key string, args ...string) string
}

// Validator runs the validation pipeline. The zero value is usable and behaves
// like New() with no options.
type Validator struct {
	logger     *slog.Logger
	translator Translator
	lang       string
}

var discardLogger = slog.New(slog.DiscardHandler)

// Option configures a Validator.
type Option func(*Validator)

// WithLogger sets the logger used for per-call debug records. Nil is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(v *Validator) {
		if l != nil {
			v.logger = l
		}
	}
}

// WithTranslator replaces the embedded message catalog. Nil is ignored.
func WithTranslator(t Translator) Option {
	return func(v *Validator) {
		if t != nil {
			v.translator = t
		}
	}
}

// WithLanguage selects the message language, e.g. "pt-BR".
func WithLanguage(lang string) Option {
	return func(v *Validator) {
		if lang = i18n.NormalizeLanguage(lang); lang != "" {
			v.lang = lang
		}
	}
}

// New creates a Validator. Without options it produces English messages
// from the embedded catalog and discards log output.
func New(opts ...Option) *Validator {
	v := &Validator{
		logger: discardLogger,
		lang:   i18n.DefaultLanguage,
	}
	for _, opt := range opts {
		opt(v)
	}
	if v.translator == nil {
		v.translator = embeddedTranslator()
	}
	return v
}

// Validate checks input and returns a fresh Result. A nil input is reported as NullInput.
func (v *Validator) Validate(ctx context.Context, input *string) Result {
	res := v.validate(input)

	log := v.logger
	if log == nil {
		log = discardLogger
	}

	if res.Valid {
		log.DebugContext(ctx, "cpf validated",
			logger.Document(res.Digits),
		)
	} else {
		log.DebugContext(ctx, "cpf rejected",
			logger.Document(res.Digits),
			logger.Reason(res.ErrorKind().String()),
		)
	}

	return res
}

// ValidateString is Validate for input that is always present.
func (v *Validator) ValidateString(ctx context.Context, s string) Result {
	return v.Validate(ctx, &s)
}

func (v *Validator) validate(input *string) Result {
	if input == nil {
		return v.fail(NullInput, "")
	}

	digits := Normalize(*input)
	if digits == "" {
		return v.fail(EmptyInput, digits)
	}

	if !hasValidPattern(digits) {
		return v.fail(InvalidDigitPattern, digits)
	}

	// Pattern check guarantees a nine digit base.
	expected, err := CheckDigits(digits[:Length-2])
	if err != nil || expected != digits[Length-2:] {
		return v.fail(InvalidCPF, digits)
	}

	return Result{
		Valid:   true,
		Digits:  digits,
		Success: ValidCPF,
	}
}

func (v *Validator) fail(kind ErrorKind, digits string) Result {
	return Result{
		Digits: digits,
		Failure: &ValidationError{
			Kind:    kind,
			Digits:  digits,
			Message: v.message(kind, digits),
		},
	}
}

// message asks the configured translator first. A key it does not know comes
// back unchanged or empty, in which case the embedded catalog answers.
func (v *Validator) message(kind ErrorKind, digits string) string {
	key := kind.TranslationKey()
	if v.translator != nil {
		if msg := v.translator.T(v.lang, key, "cpf", digits); msg != "" && msg != key {
			return msg
		}
	}
	return embeddedTranslator().T(v.lang, key, "cpf", digits)
}

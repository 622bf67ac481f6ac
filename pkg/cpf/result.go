package cpf

// ErrorKind classifies why a CPF was rejected.
type ErrorKind string

const (
	NullInput           ErrorKind = "null_input"
	EmptyInput          ErrorKind = "empty_input"
	InvalidDigitPattern ErrorKind = "invalid_digit_pattern"
	InvalidCPF          ErrorKind = "invalid_cpf"
)

func (k ErrorKind) String() string {
	return string(k)
}

// TranslationKey is the message catalog key for the kind.
func (k ErrorKind) TranslationKey() string {
	return "cpf.errors." + string(k)
}

// Sentinel returns the package error matching the kind, or nil for an unknown kind.
func (k ErrorKind) Sentinel() error {
	switch k {
	case NullInput:
		return ErrNullInput
	case EmptyInput:
		return ErrEmptyInput
	case InvalidDigitPattern:
		return ErrInvalidDigitPattern
	case InvalidCPF:
		return ErrInvalidCPF
	default:
		return nil
	}
}

// SuccessKind classifies an accepted CPF.
type SuccessKind string

// ValidCPF is set when the check digits match.
const ValidCPF SuccessKind = "valid_cpf"

func (k SuccessKind) String() string {
	return string(k)
}

// ValidationError describes a single rejected CPF.
// It unwraps to the sentinel of its Kind, so errors.Is(err, ErrInvalidCPF) works.
type ValidationError struct {
	Kind    ErrorKind
	Digits  string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if s := e.Kind.Sentinel(); s != nil {
		return s.Error()
	}
	return "cpf validation failed"
}

func (e *ValidationError) Unwrap() error {
	return e.Kind.Sentinel()
}

// TranslationKey is the message catalog key used to build Message.
func (e *ValidationError) TranslationKey() string {
	return e.Kind.TranslationKey()
}

// Result is the outcome of a single validation.
// Exactly one of Success and Failure is set.
type Result struct {
	Valid bool
	// Digits is the normalized input; empty for absent input.
	Digits  string
	Success SuccessKind
	Failure *ValidationError
}

// ErrorKind returns the failure classification, or "" when valid.
func (r Result) ErrorKind() ErrorKind {
	if r.Failure == nil {
		return ""
	}
	return r.Failure.Kind
}

// Message returns the human readable failure description, or "" when valid.
func (r Result) Message() string {
	if r.Failure == nil {
		return ""
	}
	return r.Failure.Message
}

// Err returns the failure as an error, or nil when valid.
func (r Result) Err() error {
	if r.Failure == nil {
		return nil
	}
	return r.Failure
}

package cpf

import "errors"

var (
	ErrNullInput           = errors.New("cpf is required")
	ErrEmptyInput          = errors.New("cpf is empty")
	ErrInvalidDigitPattern = errors.New("cpf has an invalid digit pattern")
	ErrInvalidCPF          = errors.New("cpf check digits do not match")
)

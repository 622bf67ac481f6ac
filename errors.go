package cpfkit

import "errors"

var (
	ErrInvalidConfig           = errors.New("invalid cpfkit configuration")
	ErrUnsupportedMessagesFile = errors.New("unsupported messages file format")
	ErrLoadingMessages         = errors.New("failed to load cpf messages")
)

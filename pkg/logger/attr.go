package logger

import (
	"log/slog"

	"github.com/dmitrymomot/cpfkit/pkg/sanitizer"
)

// Group creates a slog group attribute from the provided attributes.
func Group(name string, attrs ...slog.Attr) slog.Attr {
	return slog.Attr{Key: name, Value: slog.GroupValue(attrs...)}
}

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Document records an identification number under the key "document",
// masked so only the check digits remain readable.
// Empty values produce an empty Attr.
func Document(value string) slog.Attr {
	if value == "" {
		return slog.Attr{}
	}
	return slog.String("document", sanitizer.MaskDocument(value))
}

// Reason records a rejection classification under the key "reason".
func Reason(reason string) slog.Attr {
	if reason == "" {
		return slog.Attr{}
	}
	return slog.String("reason", reason)
}

// Language records a message language under the key "lang".
func Language(lang string) slog.Attr {
	if lang == "" {
		return slog.Attr{}
	}
	return slog.String("lang", lang)
}

// Component records the emitting component under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

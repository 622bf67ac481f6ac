package cpf

import (
	"context"
	"embed"
	"fmt"
	"sync"

	"github.com/dmitrymomot/cpfkit/pkg/i18n"
)

//go:embed locales/*.yaml
var locales embed.FS

// The catalog is compiled in; failing to load it is a build defect.
var embeddedTranslator = sync.OnceValue(func() *i18n.Translator {
	t, err := NewTranslator(context.Background())
	if err != nil {
		panic(fmt.Errorf("cpf: load embedded messages: %w", err))
	}
	return t
})

// NewTranslator loads the embedded message catalog (en, pt-BR).
func NewTranslator(ctx context.Context, opts ...i18n.Option) (*i18n.Translator, error) {
	adapter := i18n.NewFSAdapter(i18n.NewYAMLParser(), locales, "locales")
	return i18n.NewTranslator(ctx, adapter, opts...)
}

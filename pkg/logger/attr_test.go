package logger_test

import (
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/cpfkit/pkg/logger"
)

func TestAttrHelpers(t *testing.T) {
	t.Parallel()

	t.Run("group", func(t *testing.T) {
		attr := logger.Group("cpf", slog.String("reason", "invalid_cpf"))
		assert.Equal(t, "cpf", attr.Key)
		assert.Equal(t, slog.KindGroup, attr.Value.Kind())
		assert.Len(t, attr.Value.Group(), 1)
	})

	t.Run("error", func(t *testing.T) {
		assert.Equal(t, slog.Attr{}, logger.Error(nil))
		err := errors.New("boom")
		attr := logger.Error(err)
		assert.Equal(t, "error", attr.Key)
		assert.Equal(t, err, attr.Value.Any())
	})

	t.Run("document is masked", func(t *testing.T) {
		attr := logger.Document("111.444.777-35")
		assert.Equal(t, "document", attr.Key)
		assert.Equal(t, "*********35", attr.Value.String())
		assert.Equal(t, slog.Attr{}, logger.Document(""))
	})

	t.Run("reason", func(t *testing.T) {
		assert.Equal(t, slog.String("reason", "empty_input"), logger.Reason("empty_input"))
		assert.Equal(t, slog.Attr{}, logger.Reason(""))
	})

	t.Run("language", func(t *testing.T) {
		assert.Equal(t, slog.String("lang", "pt-BR"), logger.Language("pt-BR"))
		assert.Equal(t, slog.Attr{}, logger.Language(""))
	})

	t.Run("component", func(t *testing.T) {
		assert.Equal(t, slog.String("component", "cpf"), logger.Component("cpf"))
	})
}

package cpfkit

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"maps"
	"slices"

	"github.com/dmitrymomot/cpfkit/pkg/config"
	"github.com/dmitrymomot/cpfkit/pkg/cpf"
	"github.com/dmitrymomot/cpfkit/pkg/i18n"
	"github.com/dmitrymomot/cpfkit/pkg/logger"
)

// NewFromEnv loads Config from the environment (cached per process) and calls New.
func NewFromEnv(ctx context.Context) (*cpf.Validator, error) {
	var cfg Config
	if err := config.Load(&cfg); err != nil {
		return nil, errors.Join(ErrInvalidConfig, err)
	}
	return New(ctx, cfg)
}

// New builds a validator with the configured logger, catalog and language.
func New(ctx context.Context, cfg Config) (*cpf.Validator, error) {
	log, err := NewLogger(cfg)
	if err != nil {
		return nil, err
	}

	translator, err := NewTranslator(ctx, cfg, log)
	if err != nil {
		return nil, err
	}

	lang := i18n.MatchLanguage(cfg.Language, translator.SupportedLanguages(), translator.DefaultLanguage())
	log.DebugContext(ctx, "cpf validator ready", logger.Language(lang))

	return cpf.New(
		cpf.WithLogger(log.With(logger.Component("cpf"))),
		cpf.WithTranslator(translator),
		cpf.WithLanguage(lang),
	), nil
}

// NewLogger applies the environment preset, then any explicit level and format.
func NewLogger(cfg Config) (*slog.Logger, error) {
	opts := []logger.Option{
		logger.WithEnvironment(cfg.Env, cfg.ServiceName),
		logger.WithOutput(cfg.Output),
		logger.WithContextExtractors(cfg.ContextExtractors...),
	}

	if len(cfg.LogAttrs) > 0 {
		attrs := make([]slog.Attr, 0, len(cfg.LogAttrs))
		for _, k := range slices.Sorted(maps.Keys(cfg.LogAttrs)) {
			attrs = append(attrs, slog.String(k, cfg.LogAttrs[k]))
		}
		opts = append(opts, logger.WithAttr(attrs...))
	}

	if cfg.LogLevel != "" {
		level, err := logger.ParseLevel(cfg.LogLevel)
		if err != nil {
			return nil, errors.Join(ErrInvalidConfig, err)
		}
		opts = append(opts, logger.WithLevel(level))
	}

	if cfg.LogFormat != "" {
		format, err := logger.ParseFormat(cfg.LogFormat)
		if err != nil {
			return nil, errors.Join(ErrInvalidConfig, err)
		}
		opts = append(opts, logger.WithFormat(format))
	}

	return logger.New(opts...), nil
}

// NewTranslator loads cfg.MessagesFile when set, otherwise the embedded catalog.
func NewTranslator(ctx context.Context, cfg Config, log *slog.Logger) (*i18n.Translator, error) {
	opts := []i18n.Option{
		i18n.WithLogger(log.With(logger.Component("i18n"))),
		i18n.WithMissingTranslationsLogging(true),
	}

	if cfg.MessagesFile == "" {
		t, err := cpf.NewTranslator(ctx, opts...)
		if err != nil {
			return nil, errors.Join(ErrLoadingMessages, err)
		}
		return t, nil
	}

	parser := i18n.NewParserForFile(cfg.MessagesFile)
	if parser == nil {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedMessagesFile, cfg.MessagesFile)
	}

	t, err := i18n.NewTranslator(ctx, i18n.NewFileAdapter(parser, cfg.MessagesFile), opts...)
	if err != nil {
		return nil, errors.Join(ErrLoadingMessages, err)
	}
	return t, nil
}

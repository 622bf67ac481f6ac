// Package logger builds *slog.Logger values from functional options and
// provides attribute helpers with consistent key names.
//
// New picks slog.NewTextHandler or slog.NewJSONHandler from the configured
// Format and wraps it with LogHandlerDecorator, which runs registered
// ContextExtractor callbacks on every record.
//
// # Usage
//
//	log := logger.New(
//	    logger.WithEnvironment(cfg.Env, "cpfkit"),
//	    logger.WithContextValue("correlation_id", ctxKeyCorrelation),
//	)
//
//	log.DebugContext(ctx, "cpf rejected",
//	    logger.Document(digits),
//	    logger.Reason("invalid_cpf"),
//	)
//
// Document masks identification numbers before they reach the output, so
// validation logs never carry a full CPF.
//
// # Configuration
//
//   - WithDevelopment / WithStaging / WithProduction / WithEnvironment: presets
//   - WithFormat: output format
//   - WithLevel / WithHandlerOptions: level and handler tuning
//   - WithAttr: static attributes
//   - WithContextExtractors / WithContextValue: context attributes
//
// ParseLevel and ParseFormat convert configuration strings into option values.
package logger

package cpfkit

import (
	"io"

	"github.com/dmitrymomot/cpfkit/pkg/config"
	"github.com/dmitrymomot/cpfkit/pkg/logger"
)

// Config controls how New assembles a validator.
type Config struct {
	Env          string `env:"CPFKIT_ENV" envDefault:"development"`
	ServiceName  string `env:"CPFKIT_SERVICE_NAME" envDefault:"cpfkit"`
	LogLevel     string `env:"CPFKIT_LOG_LEVEL"`
	LogFormat    string `env:"CPFKIT_LOG_FORMAT"`
	Language     string `env:"CPFKIT_LANGUAGE" envDefault:"en"`
	MessagesFile string `env:"CPFKIT_MESSAGES_FILE"`
	// LogAttrs are static attributes on every record, e.g. "region:br,team:kyc".
	LogAttrs map[string]string `env:"CPFKIT_LOG_ATTRS"`

	// ContextExtractors add request-scoped attributes such as a correlation id.
	ContextExtractors []logger.ContextExtractor

	// Output receives log records; nil means stdout.
	Output io.Writer
}

// LoadConfig parses Config without caching; opts can supply an explicit
// environment or extra .env files.
func LoadConfig(opts ...config.Option) (Config, error) {
	var cfg Config
	if err := config.Parse(&cfg, opts...); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

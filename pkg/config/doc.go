// Package config loads typed configuration from environment variables.
//
// It wraps github.com/caarlos0/env/v11 for struct-tag parsing and
// github.com/joho/godotenv for .env files:
//
//   - Load parses the process environment once per configuration type and
//     caches the result; the default .env file is loaded first if present.
//   - Parse is the uncached variant with options for a variable prefix, an
//     explicit environment map, and extra .env files.
//   - Reset drops a cached type, mainly for tests.
//
// # Usage
//
//	type Config struct {
//	    Language string `env:"LANGUAGE" envDefault:"en"`
//	    LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
//	}
//
//	var cfg Config
//	if err := config.Parse(&cfg, config.WithPrefix("CPFKIT_")); err != nil {
//	    return err
//	}
//
// # Error Handling
//
// Failures wrap the package sentinels with errors.Join:
//
//   - ErrParsingConfig: the environment does not fit the struct
//   - ErrReadingEnvFile: a .env file passed to WithEnvFiles is unreadable
//   - ErrNilPointer: nil destination
package config

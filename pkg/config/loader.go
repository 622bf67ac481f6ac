package config

import (
	"errors"
	"fmt"
	"maps"
	"os"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type cacheEntry struct {
	once  sync.Once
	value any
	err   error
}

var (
	// cache holds one entry per configuration type, keyed by reflect.Type.
	cache sync.Map

	defaultEnvLoaded sync.Once
)

// Load parses environment variables into v and caches the result per type,
// so every later call for the same type returns the first parsed value.
// The default .env file is loaded once beforehand when present.
//
//	type Config struct {
//		Language string `env:"CPFKIT_LANGUAGE" envDefault:"en"`
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg); err != nil {
//		return err
//	}
func Load[T any](v *T) error {
	if v == nil {
		return ErrNilPointer
	}

	defaultEnvLoaded.Do(func() {
		// .env is optional
		_ = godotenv.Load()
	})

	raw, _ := cache.LoadOrStore(reflect.TypeFor[T](), &cacheEntry{})
	entry := raw.(*cacheEntry)

	entry.once.Do(func() {
		var parsed T
		if err := env.Parse(&parsed); err != nil {
			entry.err = errors.Join(ErrParsingConfig, err)
			return
		}
		entry.value = parsed
	})

	if entry.err != nil {
		return entry.err
	}

	cached, ok := entry.value.(T)
	if !ok {
		return ErrConfigNotLoaded
	}
	*v = cached
	return nil
}

// MustLoad works like Load but panics if configuration loading fails.
func MustLoad[T any](v *T) {
	if err := Load(v); err != nil {
		panic(fmt.Sprintf("failed to load required configuration: %v", err))
	}
}

// Reset drops the cached value for T so the next Load parses the environment again.
func Reset[T any]() {
	cache.Delete(reflect.TypeFor[T]())
}

// Option configures Parse.
type Option func(*parseOptions)

type parseOptions struct {
	prefix      string
	environment map[string]string
	files       []string
}

// WithPrefix only considers variables starting with prefix; struct tags omit it.
func WithPrefix(prefix string) Option {
	return func(o *parseOptions) {
		o.prefix = prefix
	}
}

// WithEnvironment parses from vars instead of the process environment.
func WithEnvironment(vars map[string]string) Option {
	return func(o *parseOptions) {
		if vars != nil {
			o.environment = maps.Clone(vars)
		}
	}
}

// WithEnvFiles reads .env files whose values fill keys missing from the environment.
func WithEnvFiles(files ...string) Option {
	return func(o *parseOptions) {
		o.files = append(o.files, files...)
	}
}

// Parse fills v without touching the cache or the process environment.
func Parse[T any](v *T, opts ...Option) error {
	if v == nil {
		return ErrNilPointer
	}

	o := &parseOptions{}
	for _, opt := range opts {
		opt(o)
	}

	vars := o.environment
	if vars == nil {
		vars = env.ToMap(os.Environ())
	}

	if len(o.files) > 0 {
		fileVars, err := godotenv.Read(o.files...)
		if err != nil {
			return errors.Join(ErrReadingEnvFile, err)
		}
		for k, val := range fileVars {
			if _, exists := vars[k]; !exists {
				vars[k] = val
			}
		}
	}

	if err := env.ParseWithOptions(v, env.Options{
		Prefix:      o.prefix,
		Environment: vars,
	}); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}
	return nil
}

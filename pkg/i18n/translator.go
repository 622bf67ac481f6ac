package i18n

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"regexp"
	"sort"
	"strings"
	"sync"
)

// Translator resolves message keys to localized strings.
// Translations are loaded once from a TranslationAdapter and are read-only afterwards,
// so a single Translator can be shared across goroutines.
type Translator struct {
	translations   map[string]map[string]any
	defaultLang    string
	fallbackToKey  bool
	missingLogMode bool
	logger         *slog.Logger
	mu             sync.RWMutex
	adapter        TranslationAdapter
}

// NewTranslator creates a new Translator instance with the given adapter and options.
func NewTranslator(ctx context.Context, adapter TranslationAdapter, options ...Option) (*Translator, error) {
	if adapter == nil {
		return nil, ErrNilAdapter
	}

	t := &Translator{
		defaultLang:    DefaultLanguage,
		fallbackToKey:  true,
		missingLogMode: false,
		logger:         slog.New(slog.NewTextHandler(io.Discard, nil)),
		adapter:        adapter,
	}

	for _, option := range options {
		option(t)
	}

	translations, err := adapter.Load(ctx)
	if err != nil {
		return nil, err
	}

	if err := t.validateTranslations(translations); err != nil {
		return nil, err
	}

	t.translations = translations
	t.logger.DebugContext(ctx, "translations loaded", "languages", t.supportedLanguages())
	return t, nil
}

// validateTranslations rejects empty language codes and nil language maps.
func (t *Translator) validateTranslations(trans map[string]map[string]any) error {
	if len(trans) == 0 {
		t.logger.Warn("no translations provided")
		return nil
	}

	for lang, translations := range trans {
		if lang == "" {
			return fmt.Errorf("%w: empty language code", ErrInvalidTranslations)
		}
		if translations == nil {
			return fmt.Errorf("%w: nil translations map for language %s", ErrInvalidTranslations, lang)
		}
	}
	return nil
}

func (t *Translator) supportedLanguages() []string {
	langs := make([]string, 0, len(t.translations))
	for lang := range t.translations {
		langs = append(langs, lang)
	}
	sort.Strings(langs)
	return langs
}

// SupportedLanguages returns the sorted list of language codes that have translations.
func (t *Translator) SupportedLanguages() []string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.supportedLanguages()
}

// DefaultLanguage returns the language used when a requested one is not available.
func (t *Translator) DefaultLanguage() string {
	return t.defaultLang
}

// getTranslation traverses a nested map using dot-separated keys.
// Key "cpf.errors.invalid" walks m["cpf"] then ["errors"] then ["invalid"].
func (t *Translator) getTranslation(m map[string]any, key string) (any, bool) {
	parts := strings.Split(key, ".")
	current := m

	for i, part := range parts {
		if i == len(parts)-1 {
			val, ok := current[part]
			return val, ok
		}

		next, ok := current[part]
		if !ok {
			return nil, false
		}

		currentMap, ok := next.(map[string]any)
		if !ok {
			anyMap, isAnyMap := next.(map[any]any)
			if !isAnyMap {
				return nil, false
			}

			currentMap = make(map[string]any, len(anyMap))
			for k, v := range anyMap {
				if ks, ok := k.(string); ok {
					currentMap[ks] = v
				}
			}
		}

		current = currentMap
	}

	return nil, false
}

// resolveLanguage picks the translations for lang, trying the exact code,
// its canonical BCP 47 form, and finally the default language.
func (t *Translator) resolveLanguage(lang string) (string, map[string]any, bool) {
	if m, ok := t.translations[lang]; ok {
		return lang, m, true
	}
	if canonical := NormalizeLanguage(lang); canonical != lang {
		if m, ok := t.translations[canonical]; ok {
			return canonical, m, true
		}
	}
	if m, ok := t.translations[t.defaultLang]; ok {
		return t.defaultLang, m, true
	}
	return "", nil, false
}

// HasTranslation reports whether key exists for exactly the given language.
func (t *Translator) HasTranslation(lang, key string) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()

	langMap, ok := t.translations[lang]
	if !ok {
		return false
	}

	_, ok = t.getTranslation(langMap, key)
	return ok
}

// buildParams converts key, value, key, value, ... pairs into a map.
// A trailing odd argument is ignored.
func (t *Translator) buildParams(args []string) map[string]string {
	params := make(map[string]string, len(args)/2)
	for i := 0; i < len(args)-1; i += 2 {
		params[args[i]] = args[i+1]
	}
	return params
}

var paramRegex = regexp.MustCompile(`%\{([^}]+)\}`)

// sprintf replaces %{name} placeholders; unknown placeholders are kept as is.
func (t *Translator) sprintf(tmpl string, args []string) string {
	if len(args) == 0 {
		return tmpl
	}
	params := t.buildParams(args)
	return paramRegex.ReplaceAllStringFunc(tmpl, func(match string) string {
		name := match[2 : len(match)-1]
		if val, ok := params[name]; ok {
			return val
		}
		return match
	})
}

// T translates key for lang, substituting %{name} placeholders from args
// given as key-value pairs:
//
//	// "cpf.errors.invalid_cpf": "CPF %{cpf} is invalid"
//	msg := translator.T("en", "cpf.errors.invalid_cpf", "cpf", "11144477736")
//
// Unsupported languages fall back to the default language. When the key is
// still missing the key itself is returned if FallbackToKey is enabled, or
// an empty string otherwise.
func (t *Translator) T(lang, key string, args ...string) string {
	t.mu.RLock()
	defer t.mu.RUnlock()

	resolved, langMap, ok := t.resolveLanguage(lang)
	if !ok {
		if t.missingLogMode {
			t.logger.Warn("language not supported", "lang", lang, "key", key)
		}
		return t.fallback(key, args)
	}

	val, ok := t.getTranslation(langMap, key)
	if !ok {
		if t.missingLogMode {
			t.logger.Warn("translation not found", "lang", resolved, "key", key)
		}
		return t.fallback(key, args)
	}

	switch v := val.(type) {
	case string:
		return t.sprintf(v, args)
	case fmt.Stringer:
		return t.sprintf(v.String(), args)
	default:
		if t.missingLogMode {
			t.logger.Warn("translation is not a string", "lang", resolved, "key", key, "type", fmt.Sprintf("%T", v))
		}
		return t.fallback(key, args)
	}
}

// Td works like T but returns defaultValue, with placeholders substituted,
// when the key cannot be resolved.
func (t *Translator) Td(lang, key, defaultValue string, args ...string) string {
	t.mu.RLock()
	_, langMap, ok := t.resolveLanguage(lang)
	var found bool
	if ok {
		_, found = t.getTranslation(langMap, key)
	}
	t.mu.RUnlock()

	if !found {
		return t.sprintf(defaultValue, args)
	}
	return t.T(lang, key, args...)
}

func (t *Translator) fallback(key string, args []string) string {
	if t.fallbackToKey {
		return t.sprintf(key, args)
	}
	return ""
}

// Package i18n provides a small, thread-safe translator for message catalogs.
//
// Translations are loaded once through a TranslationAdapter (in-memory map,
// a single file, or a directory inside any fs.FS such as embed.FS) and
// resolved with dot-separated keys. Placeholders use the %{name} syntax and
// are filled from key-value argument pairs.
//
// # Usage
//
//	//go:embed locales
//	var locales embed.FS
//
//	translator, err := i18n.NewTranslator(ctx,
//		i18n.NewFSAdapter(i18n.NewYAMLParser(), locales, "locales"),
//		i18n.WithDefaultLanguage("en"),
//	)
//	if err != nil {
//		return err
//	}
//
//	msg := translator.T("pt-BR", "cpf.errors.invalid_cpf", "cpf", "11144477736")
//
// # Language resolution
//
// T looks up the exact language code first, then its canonical BCP 47 form
// (NormalizeLanguage, backed by golang.org/x/text/language), then the
// default language. MatchLanguage selects the closest supported language
// for a requested tag.
//
// # Error Handling
//
// Loading failures are reported with errors.Join over the package sentinels,
// so callers can test them with errors.Is:
//
//	if errors.Is(err, i18n.ErrFailedToParseYAML) {
//	    // broken catalog
//	}
package i18n

package i18n

import (
	"strings"

	"golang.org/x/text/language"
)

// DefaultLanguage is the language code used when none is configured.
const DefaultLanguage = "en"

// NormalizeLanguage returns the canonical BCP 47 form of tag, so that
// "pt_br", "PT-br" and "pt-BR" all resolve to the same catalog entry.
// Tags that cannot be parsed are returned trimmed but otherwise unchanged.
func NormalizeLanguage(tag string) string {
	tag = strings.TrimSpace(tag)
	if tag == "" {
		return ""
	}
	parsed, err := language.Parse(strings.ReplaceAll(tag, "_", "-"))
	if err != nil {
		return tag
	}
	return parsed.String()
}

// MatchLanguage picks the best entry of supported for the requested tag.
// Returns defaultLang when nothing in supported is a reasonable match.
func MatchLanguage(requested string, supported []string, defaultLang string) string {
	if len(supported) == 0 {
		return defaultLang
	}

	req, err := language.Parse(strings.ReplaceAll(strings.TrimSpace(requested), "_", "-"))
	if err != nil {
		return defaultLang
	}

	tags := make([]language.Tag, 0, len(supported))
	valid := make([]string, 0, len(supported))
	for _, s := range supported {
		t, err := language.Parse(s)
		if err != nil {
			continue
		}
		tags = append(tags, t)
		valid = append(valid, s)
	}
	if len(tags) == 0 {
		return defaultLang
	}

	_, idx, conf := language.NewMatcher(tags).Match(req)
	if conf == language.No {
		return defaultLang
	}
	return valid[idx]
}

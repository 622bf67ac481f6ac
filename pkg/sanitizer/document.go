package sanitizer

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// StripSeparators removes whitespace, dots and hyphens, the punctuation people
// type into identification numbers. Every other character is preserved so that
// later validation can still reject it.
func StripSeparators(s string) string {
	if s == "" {
		return s
	}
	return stripSeparators(s)
}

var stripSeparators = Compose(removeASCIISeparators, removeUnicodeSpaces)

func removeASCIISeparators(s string) string {
	return separatorRegex.ReplaceAllString(s, "")
}

// removeUnicodeSpaces drops NBSP, ideographic space and the rest of
// unicode.IsSpace, which the ASCII class in separatorRegex does not cover.
// Invalid UTF-8 bytes are copied through unchanged.
func removeUnicodeSpaces(s string) string {
	if strings.IndexFunc(s, unicode.IsSpace) == -1 {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if !unicode.IsSpace(r) {
			b.WriteString(s[i : i+size])
		}
		i += size
	}
	return b.String()
}

// ExtractNumbers concatenates all ASCII digit sequences found in s.
func ExtractNumbers(s string) string {
	matches := digitRegex.FindAllString(s, -1)
	return strings.Join(matches, "")
}

// MaskString keeps visibleChars runes at both ends and replaces the middle with '*'.
// Strings too short to keep anything hidden are fully masked.
func MaskString(s string, visibleChars int) string {
	if visibleChars < 0 {
		visibleChars = 1
	}

	runes := []rune(s)
	length := len(runes)

	if length <= visibleChars*2 {
		return strings.Repeat("*", length)
	}

	start := string(runes[0:visibleChars])
	end := string(runes[length-visibleChars:])
	middle := strings.Repeat("*", length-visibleChars*2)

	return start + middle + end
}

// MaskDocument strips separators and hides everything except the last two
// characters, so logs can correlate a record by its check digits without
// exposing the identifier itself.
func MaskDocument(s string) string {
	clean := StripSeparators(s)
	runes := []rune(clean)
	if len(runes) <= 4 {
		return strings.Repeat("*", len(runes))
	}
	return strings.Repeat("*", len(runes)-2) + string(runes[len(runes)-2:])
}

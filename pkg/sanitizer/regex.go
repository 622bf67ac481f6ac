package sanitizer

import "regexp"

// Pre-compiled regular expressions
var (
	// Document separators: ASCII whitespace (including vertical tab), dots and hyphens
	separatorRegex = regexp.MustCompile(`[\s\v.\-]+`)

	// Numeric extraction
	digitRegex = regexp.MustCompile(`[0-9]+`)
)

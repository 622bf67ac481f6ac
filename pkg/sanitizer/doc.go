// Package sanitizer cleans identification numbers before validation and masks
// them before they reach logs.
//
// StripSeparators removes the whitespace, dots and hyphens users type into
// document numbers, including Unicode spaces such as NBSP. ExtractNumbers keeps
// only ASCII digits. MaskDocument and MaskString hide all but a few characters.
//
// Apply and Compose chain string transforms into reusable pipelines:
//
//	clean := sanitizer.Compose(
//		strings.TrimSpace,
//		sanitizer.StripSeparators,
//	)
//
//	digits := clean(" 111.444.777-35 ") // "11144477735"
//
// None of the helpers return errors and none keep state, so they are safe for
// concurrent use.
package sanitizer

package helpers

import "strings"

// NilIfBlank converts a blank string pointer to nil so optional columns are stored as NULL.
func NilIfBlank(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

// NonNilStrings makes sure array columns are written as '{}' instead of NULL.
func NonNilStrings(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}

// EscapeLike escapes LIKE wildcards so user search text matches literally.
func EscapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}

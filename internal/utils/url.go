package utils

import (
	"regexp"
	"strings"
)

// RFC 3986 scheme followed by the authority separator
var schemePrefix = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9+.\-]*://`)

// EnsureScheme returns raw unchanged when it already starts with a URL scheme
// and prefixes https:// otherwise. Blank input is returned as is.
func EnsureScheme(raw string) string {
	if strings.TrimSpace(raw) == "" || schemePrefix.MatchString(raw) {
		return raw
	}
	return "https://" + raw
}

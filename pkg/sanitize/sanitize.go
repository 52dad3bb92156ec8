/*
Package sanitize provides validation and sanitization of user provided strings.
*/
package sanitize

import (
	"strings"
)

// Log sanitizes a string for use in log messages.
func Log(s string) string {
	if s == "" {
		return "''"
	}

	spaces := false

	b := strings.Builder{}
	b.Grow(len(s) + 2)

	for _, r := range s {
		switch {
		case r < 32, r == 127:
			continue
		case r == '`', r == '"':
			r = '\''
		case r == ' ':
			spaces = true
		}

		b.WriteRune(r)
	}

	if spaces {
		return "'" + b.String() + "'"
	}

	return b.String()
}

// Path removes invalid character from a path string.
func Path(s string) string {
	s = strings.ReplaceAll(s, "\\", "/")
	s = strings.ReplaceAll(s, "../", "")

	return strings.TrimSpace(s)
}

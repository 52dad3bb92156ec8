/*
Package txt provides text formatting helpers for log messages and reports.
*/
package txt

import (
	"fmt"
	"strings"
)

// Quote adds quotation marks to a text if needed.
func Quote(text string) string {
	if text == "" || strings.ContainsAny(text, " \n'\"") {
		return fmt.Sprintf("'%s'", strings.ReplaceAll(text, "'", ""))
	}

	return text
}

// Bool casts a string to bool.
func Bool(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "true", "yes", "on":
		return true
	default:
		return false
	}
}

package bank

import "strings"

// firstListed returns the first comma-separated item of a checkbox answer.
func firstListed(answer string) string {
	if i := strings.Index(answer, ","); i >= 0 {
		return strings.TrimSpace(answer[:i])
	}
	return strings.TrimSpace(answer)
}

// truncate shortens an answer to at most n runes, appending an ellipsis when
// anything was cut.
func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n]) + "..."
}

// Author: Kaviru Hapuarachchi
// GitHub: https://github.com/kavirubc
// Created: 2026-08-22
// Last Modified: 2026-08-22

// Package text contains small helpers for working with submission bodies.
package text

import "strings"

// LeadingLines returns the first n non-empty lines of a body, joined by
// newlines. Used for classification context in log output.
func LeadingLines(body string, n int) string {
	if n <= 0 {
		return ""
	}

	var lines []string
	for _, line := range strings.Split(body, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		lines = append(lines, trimmed)
		if len(lines) == n {
			break
		}
	}
	return strings.Join(lines, "\n")
}

// Truncate shortens s to at most max runes, appending an ellipsis when the
// input was cut. Keeps log lines readable for large bodies.
func Truncate(s string, max int) string {
	if max <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max]) + "…"
}

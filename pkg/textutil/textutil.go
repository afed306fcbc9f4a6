// Package textutil provides terminal text helpers: ANSI stripping, visible
// width, centering, and truncation.
package textutil

import (
	"regexp"
	"strings"
)

// ellipsis is appended to truncated text.
const ellipsis = "..."

var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;]*m`)

// StripANSI removes ANSI SGR escape sequences from s.
func StripANSI(s string) string {
	return ansiPattern.ReplaceAllString(s, "")
}

// VisibleWidth returns the rune count of s with ANSI sequences removed.
func VisibleWidth(s string) int {
	return len([]rune(StripANSI(s)))
}

// PadCenter centers s within width columns, accounting for ANSI sequences.
// Text wider than width is returned unchanged.
func PadCenter(s string, width int) string {
	visible := VisibleWidth(s)
	if visible >= width {
		return s
	}

	padding := width - visible
	left := padding / 2

	return strings.Repeat(" ", left) + s + strings.Repeat(" ", padding-left)
}

// Truncate shortens s to at most max runes, replacing the tail with "..."
// when it does not fit.
func Truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}

	if max <= len(ellipsis) {
		return string(runes[:max])
	}

	return string(runes[:max-len(ellipsis)]) + ellipsis
}

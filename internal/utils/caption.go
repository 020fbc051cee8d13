package utils

import (
	"strings"
	"unicode/utf8"

	"github.com/samber/lo"
)

// ComposeCaption joins title, description and url with newlines. Empty
// segments are dropped, so a lone title comes back unchanged.
func ComposeCaption(title, description, url string) string {
	segments := lo.Filter([]string{title, description, url}, func(s string, _ int) bool {
		return strings.TrimSpace(s) != ""
	})
	return strings.TrimRight(strings.Join(segments, "\n"), "\n")
}

// Truncate cuts s to at most max characters. max <= 0 means no limit.
// The result is always a byte prefix of s; an invalid UTF-8 byte counts as
// one character and is kept as is.
func Truncate(s string, max int) string {
	if max <= 0 || utf8.RuneCountInString(s) <= max {
		return s
	}
	n := 0
	for i := range s {
		if n == max {
			return s[:i]
		}
		n++
	}
	return s
}

package reelsense

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// DisplayWidth is the column width of extreme sentences in text reports.
const DisplayWidth = 80

const ellipsis = "..."

var tagRE = regexp.MustCompile(`<[^>]+>`)

// CleanText removes HTML-like tags, trims the result and collapses every run
// of whitespace to a single space.
func CleanText(text string) string {
	text = tagRE.ReplaceAllString(text, " ")
	return strings.Join(strings.Fields(text), " ")
}

// FormatSentence fits s into exactly width characters: longer sentences are
// cut to width-3 characters plus an ellipsis, shorter ones are padded with
// trailing spaces.
func FormatSentence(s string, width int) string {
	n := utf8.RuneCountInString(s)
	if n > width {
		keep := width - len(ellipsis)
		if keep < 0 {
			keep = 0
		}
		return string([]rune(s)[:keep]) + ellipsis
	}
	return s + strings.Repeat(" ", width-n)
}

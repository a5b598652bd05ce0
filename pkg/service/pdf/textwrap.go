package pdf

import (
	"strings"
	"unicode/utf8"
)

// Wrap splits text into lines of at most maxChars characters using greedy
// word packing. Budgets count runes, not bytes, so multibyte text wraps by
// visible characters and truncation never splits a rune. A single word
// longer than maxChars is truncated to maxChars-3 characters with a
// trailing ellipsis instead of overflowing the budget. Character counting
// is an approximation of rendered width; the layout boxes drawn around
// wrapped text carry generous padding.
func Wrap(text string, maxChars int) []string {
	if utf8.RuneCountInString(text) <= maxChars {
		return []string{text}
	}

	words := strings.Fields(text)
	lines := make([]string, 0, utf8.RuneCountInString(text)/maxChars+1)
	current := ""
	currentLen := 0

	for _, word := range words {
		wordLen := utf8.RuneCountInString(word)

		if current != "" && currentLen+1+wordLen <= maxChars {
			current += " " + word
			currentLen += 1 + wordLen
			continue
		}

		if current != "" {
			lines = append(lines, current)
			current = ""
			currentLen = 0
		}

		if wordLen <= maxChars {
			current = word
			currentLen = wordLen
			continue
		}

		// The word alone exceeds the budget.
		lines = append(lines, truncate(word, maxChars))
	}

	if current != "" {
		lines = append(lines, current)
	}

	return lines
}

func truncate(word string, maxChars int) string {
	runes := []rune(word)
	if maxChars <= 3 {
		return string(runes[:maxChars])
	}
	return string(runes[:maxChars-3]) + "..."
}

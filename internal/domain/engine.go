// Package domain contains the core transformation workflow and logic.
package domain

import (
	"strings"

	m "tokswap.dev/pkg/tokswap/internal/model"
)

// CountOccurrences returns the number of non-overlapping occurrences of token
// in text, scanning left to right. An empty token matches nothing.
func CountOccurrences(text, token string) int {
	if token == "" {
		return 0
	}

	return strings.Count(text, token)
}

// RewriteLine replaces every non-overlapping occurrence of token in text with
// replacement and reports how many were replaced. Replaced spans are not
// rescanned, so a replacement that reintroduces the token does not cascade.
func RewriteLine(text, token, replacement string) (string, int) {
	count := CountOccurrences(text, token)
	if count == 0 {
		return text, 0
	}

	return strings.ReplaceAll(text, token, replacement), count
}

// RewriteRecord rewrites a single source line and captures the result
// together with its 1-based line number and per-line occurrence count.
func RewriteRecord(number int, text, token, replacement string) m.LineRecord {
	rewritten, count := RewriteLine(text, token, replacement)

	return m.LineRecord{
		Number:      number,
		Text:        text,
		Rewritten:   rewritten,
		Occurrences: count,
	}
}

// Spans returns the 0-based byte offsets of each non-overlapping occurrence
// of token in text, in match order.
func Spans(text, token string) []int {
	if token == "" {
		return nil
	}

	var offsets []int

	for start := 0; ; {
		i := strings.Index(text[start:], token)
		if i < 0 {
			break
		}

		offsets = append(offsets, start+i)
		start += i + len(token)
	}

	return offsets
}

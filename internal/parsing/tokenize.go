// Package parsing turns raw document text into normalized word tokens.
package parsing

import (
	"iter"
	"strings"
	"unicode"
)

// minTokenLength is the shortest token kept; anything shorter is noise.
const minTokenLength = 3

// Tokens returns a lazy, single-pass sequence of the meaningful words in text.
//
// The text is lower-cased, every character outside [A-Za-z0-9_] that is not
// whitespace becomes a space, the result is split on whitespace, and tokens
// shorter than three characters or listed as stop words are dropped.
// Non-ASCII letters act as separators.
func Tokens(text string) iter.Seq[string] {
	return func(yield func(string) bool) {
		normalized := strings.Map(normalizeRune, strings.ToLower(text))
		for _, word := range strings.FieldsFunc(normalized, unicode.IsSpace) {
			if len(word) < minTokenLength || IsStopWord(word) {
				continue
			}
			if !yield(word) {
				return
			}
		}
	}
}

// Tokenize collects Tokens(text) into a slice. Empty input yields an empty,
// non-nil slice.
func Tokenize(text string) []string {
	tokens := make([]string, 0)
	for token := range Tokens(text) {
		tokens = append(tokens, token)
	}
	return tokens
}

// normalizeRune keeps word characters and whitespace and maps everything
// else to a space.
func normalizeRune(r rune) rune {
	if isWordRune(r) || unicode.IsSpace(r) {
		return r
	}
	return ' '
}

func isWordRune(r rune) bool {
	return (r >= 'a' && r <= 'z') ||
		(r >= 'A' && r <= 'Z') ||
		(r >= '0' && r <= '9') ||
		r == '_'
}

package zipindex

import (
	"regexp"
	"strings"
)

// wordRE matches maximal runs of ASCII letters. Digits, punctuation and
// whitespace act purely as separators and never appear inside a token.
var wordRE = regexp.MustCompile(`[A-Za-z]+`)

// Tokenize splits text into lowercase alphabetic tokens. The result
// preserves text order and may contain duplicates; use NewTokenSet to
// deduplicate.
func Tokenize(text string) []string {
	words := wordRE.FindAllString(text, -1)
	tokens := make([]string, 0, len(words))
	for _, w := range words {
		tokens = append(tokens, strings.ToLower(w))
	}
	return tokens
}

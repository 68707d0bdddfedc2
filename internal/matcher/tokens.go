package matcher

import (
	"iter"
	"strings"
)

// TokenSeparator is the only character that splits query tokens
const TokenSeparator = " "

// Tokenize splits a query on single spaces.
// Consecutive separators yield empty tokens, which are kept.
// Each range over the result starts a fresh split.
func Tokenize(query string) iter.Seq[string] {
	return func(yield func(string) bool) {
		for token := range strings.SplitSeq(query, TokenSeparator) {
			if !yield(token) {
				return
			}
		}
	}
}

// Tokens requires every query token to appear verbatim in the source
type Tokens struct{}

// Score returns the number of tokens found, or 0 if any token is missing.
// An empty query scores 1.
func (Tokens) Score(source, query string) int {
	if query == "" {
		return 1
	}

	score := 0
	for token := range Tokenize(query) {
		if !strings.Contains(source, token) {
			return 0
		}
		score++
	}
	return score
}

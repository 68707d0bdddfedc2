// Package matcher decides whether a single field value matches a single query string.
//
// Two strategies exist. The token strategy splits the query on spaces and
// requires every token as a literal substring of the field. The fuzzy
// strategy accepts literal substrings and otherwise falls back to an
// approximate string scorer compared against a threshold.
package matcher

import (
	"errors"
	"fmt"
)

// Strategy names a matching policy
type Strategy string

const (
	StrategyTokens Strategy = "tokens"
	StrategyFuzzy  Strategy = "fuzzy"
)

// DefaultThreshold is the minimum fuzzy score that counts as a match
const DefaultThreshold = 50

var (
	ErrUnknownStrategy = errors.New("unknown match strategy")
	ErrUnknownScorer   = errors.New("unknown fuzzy scorer")
)

// Matcher scores how well a query matches a source field.
// A score of zero means no match; any positive score is a match.
type Matcher interface {
	Score(source, query string) int
}

// Matches reports whether query matches source under m
func Matches(m Matcher, source, query string) bool {
	return m.Score(source, query) > 0
}

// Options selects and configures a strategy
type Options struct {
	Strategy  Strategy
	Scorer    string // fuzzy only: "skim", "jaro-winkler" or "levenshtein"
	Threshold int    // fuzzy only
}

// New builds the matcher described by opts
func New(opts Options) (Matcher, error) {
	switch opts.Strategy {
	case StrategyTokens, "":
		return Tokens{}, nil
	case StrategyFuzzy:
		scorer, err := ScorerByName(opts.Scorer)
		if err != nil {
			return nil, err
		}
		return Fuzzy{Scorer: scorer, Threshold: opts.Threshold}, nil
	default:
		return nil, fmt.Errorf("%w: %q (supported: %s, %s)", ErrUnknownStrategy, opts.Strategy, StrategyTokens, StrategyFuzzy)
	}
}

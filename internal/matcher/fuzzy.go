package matcher

import (
	"fmt"
	"strings"

	"github.com/hbollon/go-edlib"
	"github.com/sahilm/fuzzy"
)

// Scorer rates the similarity of query to source.
// ok is false when the scorer finds no alignment at all.
type Scorer func(source, query string) (score int, ok bool)

// Fuzzy accepts literal substrings and otherwise defers to Scorer
type Fuzzy struct {
	Scorer    Scorer
	Threshold int
}

func (f Fuzzy) Score(source, query string) int {
	if query == "" || strings.Contains(source, query) {
		return 1
	}

	score, ok := f.Scorer(source, query)
	if !ok || score < f.Threshold {
		return 0
	}
	return max(score, 1)
}

// ScorerByName resolves a configured scorer name; empty selects skim
func ScorerByName(name string) (Scorer, error) {
	switch name {
	case "skim", "":
		return SkimScore, nil
	case "jaro-winkler":
		return JaroWinklerScore, nil
	case "levenshtein":
		return LevenshteinScore, nil
	default:
		return nil, fmt.Errorf("%w: %q (supported: skim, jaro-winkler, levenshtein)", ErrUnknownScorer, name)
	}
}

// SkimScore scores query as an in-order subsequence of source, rewarding
// adjacent matches and matches at word starts
func SkimScore(source, query string) (int, bool) {
	matches := fuzzy.Find(query, []string{source})
	if len(matches) == 0 {
		return 0, false
	}
	return matches[0].Score, true
}

// JaroWinklerScore is the Jaro-Winkler similarity scaled to 0..100
func JaroWinklerScore(source, query string) (int, bool) {
	return edlibScore(source, query, edlib.JaroWinkler)
}

// LevenshteinScore is the normalized Levenshtein similarity scaled to 0..100
func LevenshteinScore(source, query string) (int, bool) {
	return edlibScore(source, query, edlib.Levenshtein)
}

func edlibScore(source, query string, algo edlib.Algorithm) (int, bool) {
	similarity, err := edlib.StringsSimilarity(source, query, algo)
	if err != nil || similarity <= 0 {
		return 0, false
	}
	return int(similarity * 100), true
}

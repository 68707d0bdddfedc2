package search

import (
	"log/slog"

	"github.com/lehigh-university-libraries/booktldr/internal/catalog"
	"github.com/lehigh-university-libraries/booktldr/internal/matcher"
	"github.com/lehigh-university-libraries/booktldr/internal/models"
)

// Hit is a matching listing and its combined field score
type Hit struct {
	Listing *models.Listing // view into the catalog
	Score   int
}

// Engine filters a catalog with a matcher
type Engine struct {
	catalog *catalog.Catalog
	matcher matcher.Matcher
}

// NewEngine creates a query engine over c
func NewEngine(c *catalog.Catalog, m matcher.Matcher) *Engine {
	return &Engine{
		catalog: c,
		matcher: m,
	}
}

// Search returns every listing whose four fields all match the query, in catalog order
func (e *Engine) Search(q models.Query) []Hit {
	var hits []Hit
	for _, listing := range e.catalog.All() {
		if score := ScoreListing(e.matcher, listing, q); score > 0 {
			hits = append(hits, Hit{Listing: listing, Score: score})
		}
	}

	slog.Debug("Search complete",
		"chapter", q.Chapter,
		"description", q.Description,
		"listing", q.ListingID,
		"status", q.Status,
		"catalog_size", e.catalog.Len(),
		"hits", len(hits))

	return hits
}

// Filter returns the listings matching q, in catalog order
func Filter(c *catalog.Catalog, q models.Query, m matcher.Matcher) []*models.Listing {
	hits := NewEngine(c, m).Search(q)
	listings := make([]*models.Listing, len(hits))
	for i, hit := range hits {
		listings[i] = hit.Listing
	}
	return listings
}

// ScoreListing sums the per-field scores, or returns 0 if any field fails to match
func ScoreListing(m matcher.Matcher, l *models.Listing, q models.Query) int {
	fields := [...]struct{ source, query string }{
		{l.Chapter, q.Chapter},
		{l.Description, q.Description},
		{l.ListingID, q.ListingID},
		{l.Status, q.Status},
	}

	total := 0
	for _, f := range fields {
		score := m.Score(f.source, f.query)
		if score <= 0 {
			return 0
		}
		total += score
	}
	return total
}

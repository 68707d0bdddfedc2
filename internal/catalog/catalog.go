package catalog

import (
	"iter"

	"github.com/lehigh-university-libraries/booktldr/internal/models"
)

// Catalog is an ordered, read-only set of listings.
// Pointers handed out by At and All are views into the catalog and must not be modified.
type Catalog struct {
	listings []models.Listing
}

// New creates a catalog holding a copy of listings
func New(listings []models.Listing) *Catalog {
	owned := make([]models.Listing, len(listings))
	copy(owned, listings)
	return &Catalog{listings: owned}
}

// Default returns the built-in catalog
func Default() *Catalog {
	return New([]models.Listing{
		{
			Chapter:     "1",
			Description: "test",
			ListingID:   "1-1",
			Status:      "desired",
		},
		{
			Chapter:     "2",
			Description: "another test",
			ListingID:   "2-1",
			Status:      "desired",
		},
		{
			Chapter:     "3",
			Description: "error handling sketch",
			ListingID:   "3-1",
			Status:      "draft",
		},
	})
}

func (c *Catalog) Len() int {
	return len(c.listings)
}

func (c *Catalog) At(i int) *models.Listing {
	return &c.listings[i]
}

// All yields every listing in catalog order
func (c *Catalog) All() iter.Seq2[int, *models.Listing] {
	return func(yield func(int, *models.Listing) bool) {
		for i := range c.listings {
			if !yield(i, &c.listings[i]) {
				return
			}
		}
	}
}

// Listings returns a copy of the catalog contents
func (c *Catalog) Listings() []models.Listing {
	out := make([]models.Listing, len(c.listings))
	copy(out, c.listings)
	return out
}

package models

import "fmt"

// Listing is one catalog entry describing a book example
type Listing struct {
	Chapter     string `json:"chapter" yaml:"chapter" parquet:"chapter"`
	Description string `json:"description" yaml:"description" parquet:"description"`
	ListingID   string `json:"listing" yaml:"listing" parquet:"listing"` // Names the listing's text resource
	Status      string `json:"status" yaml:"status" parquet:"status"`
}

// Validate reports the first empty field
func (l Listing) Validate() error {
	fields := [...]struct{ name, value string }{
		{"chapter", l.Chapter},
		{"description", l.Description},
		{"listing", l.ListingID},
		{"status", l.Status},
	}
	for _, f := range fields {
		if f.value == "" {
			return fmt.Errorf("empty %s", f.name)
		}
	}
	return nil
}

// Query holds one partial match string per Listing field.
// An empty field matches anything.
type Query struct {
	Chapter     string
	Description string
	ListingID   string
	Status      string
}

// IsEmpty reports whether every field is a wildcard
func (q Query) IsEmpty() bool {
	return q.Chapter == "" && q.Description == "" && q.ListingID == "" && q.Status == ""
}

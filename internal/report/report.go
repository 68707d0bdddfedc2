package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/lehigh-university-libraries/booktldr/internal/models"
	"github.com/lehigh-university-libraries/booktldr/internal/resources"
	"github.com/lehigh-university-libraries/booktldr/internal/search"
	"gopkg.in/yaml.v3"
)

// Format selects the output encoding
type Format string

const (
	FormatText Format = "text"
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

var ErrUnknownFormat = errors.New("unknown output format")

// ParseFormat validates a configured format; empty selects text
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatText, "":
		return FormatText, nil
	case FormatYAML:
		return FormatYAML, nil
	case FormatJSON:
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("%w: %q (supported: text, yaml, json)", ErrUnknownFormat, s)
	}
}

// Document is the structured form of a search result
type Document struct {
	Count    int             `yaml:"count" json:"count"`
	Listings []ListingReport `yaml:"listings" json:"listings"`
}

// ListingReport is one listing in a Document
type ListingReport struct {
	Chapter     string `yaml:"chapter" json:"chapter"`
	Description string `yaml:"description" json:"description"`
	Listing     string `yaml:"listing" json:"listing"`
	Status      string `yaml:"status" json:"status"`
	Score       int    `yaml:"score" json:"score"`
	Content     string `yaml:"content,omitempty" json:"content,omitempty"`
}

// Printer writes search results. Content is fetched only when exactly one listing matched.
type Printer struct {
	out    io.Writer
	errOut io.Writer
	format Format
	lookup resources.Lookup
	naming resources.Naming
}

// NewPrinter creates a printer writing results to out and advisories to errOut
func NewPrinter(out, errOut io.Writer, format Format, lookup resources.Lookup, naming resources.Naming) *Printer {
	return &Printer{
		out:    out,
		errOut: errOut,
		format: format,
		lookup: lookup,
		naming: naming,
	}
}

// Print reports hits. A missing resource is a warning, not an error;
// errors come only from writing the output.
func (p *Printer) Print(hits []search.Hit) error {
	var content string
	var found bool
	if len(hits) == 1 {
		content, found = p.content(hits[0].Listing)
	}

	switch p.format {
	case FormatYAML, FormatJSON:
		return p.printDocument(hits, content)
	default:
		return p.printText(hits, content, found)
	}
}

func (p *Printer) content(listing *models.Listing) (string, bool) {
	name := p.naming.ResourceName(listing.ListingID)
	content, ok := p.lookup.Lookup(name)
	if !ok {
		slog.Debug("No content for listing", "listing", listing.ListingID, "resource", name)
		fmt.Fprintf(p.errOut, "warning: no content found for listing %s (%s)\n", listing.ListingID, name)
	}
	return content, ok
}

func (p *Printer) printText(hits []search.Hit, content string, found bool) error {
	var err error
	switch len(hits) {
	case 0:
		_, err = fmt.Fprintln(p.out, "none found!")
	case 1:
		if _, err = fmt.Fprint(p.out, "full listing:\n\n"); err != nil {
			return err
		}
		if err = printInfo(p.out, hits[0].Listing); err != nil {
			return err
		}
		if found {
			_, err = fmt.Fprintln(p.out, content)
		}
	default:
		if _, err = fmt.Fprint(p.out, "all matched listings:\n\n"); err != nil {
			return err
		}
		for _, hit := range hits {
			if err = printInfo(p.out, hit.Listing); err != nil {
				return err
			}
		}
	}
	return err
}

func printInfo(w io.Writer, l *models.Listing) error {
	_, err := fmt.Fprintf(w, "chapter: %s\ndescription: %s\nlisting: %s, status: %s\n\n",
		l.Chapter, l.Description, l.ListingID, l.Status)
	return err
}

// NewDocument builds the structured report for hits
func NewDocument(hits []search.Hit, content string) Document {
	doc := Document{
		Count:    len(hits),
		Listings: make([]ListingReport, 0, len(hits)),
	}
	for _, hit := range hits {
		doc.Listings = append(doc.Listings, ListingReport{
			Chapter:     hit.Listing.Chapter,
			Description: hit.Listing.Description,
			Listing:     hit.Listing.ListingID,
			Status:      hit.Listing.Status,
			Score:       hit.Score,
		})
	}
	if len(doc.Listings) == 1 {
		doc.Listings[0].Content = content
	}
	return doc
}

func (p *Printer) printDocument(hits []search.Hit, content string) error {
	doc := NewDocument(hits, content)

	var (
		data []byte
		err  error
	)
	if p.format == FormatJSON {
		data, err = json.MarshalIndent(doc, "", "  ")
		data = append(data, '\n')
	} else {
		data, err = yaml.Marshal(&doc)
	}
	if err != nil {
		return fmt.Errorf("failed to marshal report: %w", err)
	}

	_, err = p.out.Write(data)
	return err
}

package catalog

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/lehigh-university-libraries/booktldr/internal/models"
	"github.com/parquet-go/parquet-go"
	"gopkg.in/yaml.v3"
)

var (
	// ErrUnsupportedFormat is returned for catalog files with an unknown extension
	ErrUnsupportedFormat = errors.New("unsupported catalog format")
	// ErrInvalidListing is returned when a loaded listing has an empty field
	ErrInvalidListing = errors.New("invalid listing")
)

// Loader reads a catalog from a YAML, JSONL or Parquet file
type Loader struct {
	path string
}

// NewLoader creates a new catalog loader
func NewLoader(path string) *Loader {
	return &Loader{
		path: path,
	}
}

// Load reads every listing in the file, in file order
func (l *Loader) Load() (*Catalog, error) {
	var (
		listings []models.Listing
		err      error
	)

	switch ext := strings.ToLower(filepath.Ext(l.path)); ext {
	case ".yaml", ".yml":
		listings, err = l.loadYAML()
	case ".jsonl", ".json":
		listings, err = l.loadJSONL()
	case ".parquet":
		listings, err = l.loadParquet()
	default:
		return nil, fmt.Errorf("%w: %q (supported: .yaml, .jsonl, .parquet)", ErrUnsupportedFormat, ext)
	}
	if err != nil {
		return nil, err
	}

	for i, listing := range listings {
		if err := listing.Validate(); err != nil {
			return nil, fmt.Errorf("%w: listing %d in %s: %w", ErrInvalidListing, i+1, l.path, err)
		}
	}

	slog.Debug("Loaded catalog", "path", l.path, "listings", len(listings))

	return New(listings), nil
}

// catalogFile is the YAML document layout
type catalogFile struct {
	Listings []models.Listing `yaml:"listings"`
}

func (l *Loader) loadYAML() ([]models.Listing, error) {
	data, err := os.ReadFile(l.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}

	var doc catalogFile
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse catalog YAML: %w", err)
	}

	return doc.Listings, nil
}

func (l *Loader) loadJSONL() ([]models.Listing, error) {
	file, err := os.Open(l.path)
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog file: %w", err)
	}
	defer file.Close()

	var listings []models.Listing
	scanner := bufio.NewScanner(file)

	// Increase buffer size for long listing descriptions
	const maxCapacity = 10 * 1024 * 1024 // 10MB per line
	buf := make([]byte, maxCapacity)
	scanner.Buffer(buf, maxCapacity)

	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := scanner.Bytes()

		if len(strings.TrimSpace(string(line))) == 0 {
			continue
		}

		var listing models.Listing
		if err := json.Unmarshal(line, &listing); err != nil {
			return nil, fmt.Errorf("failed to parse JSON at line %d: %w", lineNum, err)
		}

		listings = append(listings, listing)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading catalog: %w", err)
	}

	return listings, nil
}

func (l *Loader) loadParquet() ([]models.Listing, error) {
	file, err := os.Open(l.path)
	if err != nil {
		return nil, fmt.Errorf("failed to open parquet file: %w", err)
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return nil, fmt.Errorf("failed to stat file: %w", err)
	}

	pf, err := parquet.OpenFile(file, info.Size())
	if err != nil {
		return nil, fmt.Errorf("failed to open parquet: %w", err)
	}

	slog.Debug("Parquet file opened", "num_rows", pf.NumRows(), "num_row_groups", len(pf.RowGroups()))

	reader := parquet.NewGenericReader[models.Listing](pf)
	defer reader.Close()

	var listings []models.Listing
	rows := make([]models.Listing, 64)

	for {
		n, err := reader.Read(rows)
		listings = append(listings, rows[:n]...)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read parquet rows: %w", err)
		}
	}

	return listings, nil
}

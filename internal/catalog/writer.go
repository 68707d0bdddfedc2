package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/parquet-go/parquet-go"
	"gopkg.in/yaml.v3"
)

// WriteFile saves the catalog in the format matching the file extension
func WriteFile(path string, c *Catalog) error {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		data, err := MarshalYAML(c)
		if err != nil {
			return err
		}
		if err := os.WriteFile(path, data, 0644); err != nil {
			return fmt.Errorf("failed to write catalog file: %w", err)
		}
	case ".jsonl", ".json":
		return writeJSONL(path, c)
	case ".parquet":
		if err := parquet.WriteFile(path, c.Listings()); err != nil {
			return fmt.Errorf("failed to write parquet file: %w", err)
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
	return nil
}

// MarshalYAML encodes the catalog in the layout Loader reads
func MarshalYAML(c *Catalog) ([]byte, error) {
	data, err := yaml.Marshal(&catalogFile{Listings: c.Listings()})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal YAML: %w", err)
	}
	return data, nil
}

func writeJSONL(path string, c *Catalog) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create catalog file: %w", err)
	}
	defer file.Close()

	enc := json.NewEncoder(file)
	for _, listing := range c.All() {
		if err := enc.Encode(listing); err != nil {
			return fmt.Errorf("failed to encode listing %s: %w", listing.ListingID, err)
		}
	}

	return file.Close()
}

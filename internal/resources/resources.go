// Package resources finds the text content that backs a listing.
package resources

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path"
	"path/filepath"
)

//go:embed listings/*.md
var embedded embed.FS

// Lookup returns the content stored under name.
// A missing or unreadable resource reports false rather than an error.
type Lookup interface {
	Lookup(name string) (string, bool)
}

// FSLookup reads resources from a file system
type FSLookup struct {
	fsys fs.FS
	root string
}

// Embedded serves the listing content compiled into the binary
func Embedded() *FSLookup {
	return &FSLookup{fsys: embedded, root: "listings"}
}

// FromFS serves resources from the root of fsys
func FromFS(fsys fs.FS) *FSLookup {
	return &FSLookup{fsys: fsys, root: "."}
}

// Dir serves resources from a directory on disk, relative to the working directory unless absolute
func Dir(root string) *FSLookup {
	if root == "" {
		root = "."
	}
	return FromFS(os.DirFS(filepath.Clean(root)))
}

func (l *FSLookup) Lookup(name string) (string, bool) {
	if !fs.ValidPath(name) {
		slog.Debug("Invalid resource name", "name", name)
		return "", false
	}

	data, err := fs.ReadFile(l.fsys, path.Join(l.root, name))
	if err != nil {
		slog.Debug("Resource unavailable", "name", name, "err", err)
		return "", false
	}
	return string(data), true
}

// Naming derives a resource name from a listing identifier
type Naming string

const (
	// NamingDirect appends the extension to the identifier: "1-1" -> "1-1.md"
	NamingDirect Naming = "direct"
	// NamingBracketed drops the first and last characters first: "[1-1]" -> "1-1.md"
	NamingBracketed Naming = "bracketed"
)

// Extension is appended to every derived resource name
const Extension = ".md"

var ErrUnknownNaming = errors.New("unknown resource naming")

// ParseNaming validates a configured naming scheme; empty selects direct
func ParseNaming(s string) (Naming, error) {
	switch Naming(s) {
	case NamingDirect, "":
		return NamingDirect, nil
	case NamingBracketed:
		return NamingBracketed, nil
	default:
		return "", fmt.Errorf("%w: %q (supported: %s, %s)", ErrUnknownNaming, s, NamingDirect, NamingBracketed)
	}
}

// ResourceName maps a listing identifier to its resource name
func (n Naming) ResourceName(listingID string) string {
	if n == NamingBracketed {
		if r := []rune(listingID); len(r) >= 2 {
			return string(r[1:len(r)-1]) + Extension
		}
	}
	return listingID + Extension
}

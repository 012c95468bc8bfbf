// Package mimetab maps file extensions to the content types advertised to
// clients. The table is defined in an embedded TOML document and is read-only
// for the process lifetime, so it is shared between request handlers without
// locking.
package mimetab

import (
	_ "embed"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// DefaultType is served for extensions not present in the table.
const DefaultType = "application/octet-stream"

//go:embed mime_types.toml
var tableTOML []byte

var types map[string]string

func init() {
	var doc struct {
		Types map[string]string `toml:"types"`
	}
	if err := toml.Unmarshal(tableTOML, &doc); err != nil {
		panic(fmt.Sprintf("mimetab: bad embedded table: %v", err))
	}
	types = doc.Types
}

// Lookup returns the content type for a filename based on its lowercased
// extension, or DefaultType when the extension is unknown or missing.
func Lookup(name string) string {
	ext := strings.ToLower(filepath.Ext(name))
	if ct, ok := types[ext]; ok {
		return ct
	}
	return DefaultType
}

// IsHTML reports whether a content type is HTML. HTML responses are sent with
// a no-cache directive while everything else is cached as immutable.
func IsHTML(contentType string) bool {
	return strings.HasPrefix(contentType, "text/html")
}

// Extensions returns every extension present in the table.
func Extensions() []string {
	exts := make([]string, 0, len(types))
	for ext := range types {
		exts = append(exts, ext)
	}
	return exts
}

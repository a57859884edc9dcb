package graph

import (
	"io"
	"path/filepath"
	"strings"
)

import ()

// Load reads a graph from input, picking the parser by the file name
// extension: .dot and .gv parse as dot, anything else as the simple
// line format. A trailing .gz is ignored (callers hand in a
// decompressed reader).
func Load(name string, input io.Reader) (*Loaded, error) {
	if strings.HasSuffix(name, ".gz") {
		name = strings.TrimSuffix(name, ".gz")
	}
	switch filepath.Ext(name) {
	case ".dot", ".gv":
		return LoadDot(input)
	default:
		return LoadSimple(input)
	}
}

package opml

import (
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"strings"
)

// Parse decodes an outline document from r into its root node.
func Parse(r io.Reader) (*Outline, error) {
	root := &Outline{}
	if err := xml.NewDecoder(r).Decode(root); err != nil {
		return nil, fmt.Errorf("parse outline document: %w", err)
	}
	return root, nil
}

// Load reads the export at path, discards its leading declaration line, and
// parses the remainder. The file is fully read and released before parsing
// begins. A nonexistent path surfaces as an error satisfying
// errors.Is(err, fs.ErrNotExist); callers decide whether that is fatal.
func Load(path string) (*Outline, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read export: %w", err)
	}
	return Parse(strings.NewReader(stripFirstLine(string(data))))
}

// stripFirstLine drops everything through the first newline, declaration
// line included. A single-line input strips to nothing and will fail to
// parse, which is the desired outcome for a structurally empty export.
func stripFirstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[i+1:]
	}
	return ""
}

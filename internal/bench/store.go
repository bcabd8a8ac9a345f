package bench

import (
	"encoding/json"
	"fmt"
	"os"
)

// Save overwrites path with the indented JSON encoding of the document.
// Parent directories are the caller's responsibility; the result file
// normally lives next to where the tool runs.
func Save(doc *Document, path string) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal result document: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write result document: %w", err)
	}
	return nil
}

// Load reads a previously saved document. A missing file is not an
// error: it returns (nil, nil) so consumers can degrade, e.g. render a
// report without the comparison section.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read result document: %w", err)
	}
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse result document %s: %w", path, err)
	}
	return &doc, nil
}

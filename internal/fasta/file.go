package fasta

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Split breaks a multi-record FASTA document into per-record blocks at
// each entry delimiter that begins a line, re-prefixing each block with
// the delimiter. Empty blocks are discarded. The blocks are not
// validated; pass each to Parse.
func Split(doc string) []string {
	doc = strings.ReplaceAll(doc, "\r\n", "\n")

	var blocks []string
	for _, block := range strings.Split("\n"+doc, "\n"+Delimiter) {
		if strings.TrimSpace(block) == "" {
			continue
		}
		blocks = append(blocks, Delimiter+block)
	}
	return blocks
}

// ReadFile reads a multi-record FASTA file into a slice of Records.
func ReadFile(path string) ([]*Record, error) {
	var err error
	if !filepath.IsAbs(path) {
		if path, err = filepath.Abs(path); err != nil {
			return nil, fmt.Errorf("failed to create path to FASTA file: %s", err)
		}
	}

	dat, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read input FASTA path: %s", err)
	}

	var records []*Record
	for i, block := range Split(string(dat)) {
		record, ok := Parse(block)
		if !ok {
			return nil, fmt.Errorf("failed to parse record %d of %s", i+1, path)
		}
		records = append(records, record)
	}

	// opened and parsed the file but found nothing
	if len(records) < 1 {
		return nil, fmt.Errorf("failed to parse any FASTA records from %s", path)
	}

	return records, nil
}

// WriteFile writes records to a file in FASTA format, each rendered at
// width residues per line and followed by a line terminator.
func WriteFile(path string, records []*Record, width int) error {
	var out strings.Builder
	for _, r := range records {
		out.WriteString(r.Render(width))
		out.WriteString("\n")
	}

	if err := os.WriteFile(path, []byte(out.String()), 0644); err != nil {
		return fmt.Errorf("failed to write FASTA records to %s: %s", path, err)
	}

	return nil
}

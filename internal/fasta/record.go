// Package fasta reads, validates and writes FASTA formatted sequence records.
package fasta

import (
	"errors"
	"strings"
)

const (
	// Delimiter marks the start of a record's header line.
	Delimiter = ">"

	// HeaderSeparator separates sub-fields within a header line, eg
	// ">gi|129295|sp|P01013". Headers are opaque to this package; the
	// constant is for callers that build or pick apart their own.
	HeaderSeparator = "|"

	// DefaultLineLength is the number of residues per line when a
	// record is rendered without an explicit width.
	DefaultLineLength = 80
)

// ErrInvalidFasta is returned by SetFasta when the passed text is not a
// valid FASTA record.
var ErrInvalidFasta = errors.New("invalid FASTA sequence")

// Record is a single FASTA record: a header and its sequence of residues.
type Record struct {
	// the text after the entry delimiter on the first line
	header string

	// the record's residue symbols with line breaks removed
	residues string

	// cached rendering at DefaultLineLength, cleared whenever the
	// header or residues change. Empty means not yet rendered; a real
	// rendering always contains at least the delimiter
	fasta string
}

// NewRecord makes a Record from a header and its residues. No alphabet
// checking is done here; use Parse to validate untrusted text.
func NewRecord(header, residues string) *Record {
	return &Record{
		header:   header,
		residues: residues,
	}
}

// Header returns the record's header, without the entry delimiter.
func (r *Record) Header() string {
	return r.header
}

// Residues returns the record's residues as a single unwrapped string.
func (r *Record) Residues() string {
	return r.residues
}

// SetHeader replaces the record's header and invalidates the cached rendering.
func (r *Record) SetHeader(header string) {
	r.header = header
	r.fasta = ""
}

// SetResidues replaces the record's residues and invalidates the cached rendering.
func (r *Record) SetResidues(residues string) {
	r.residues = residues
	r.fasta = ""
}

// Parse validates a single FASTA entry and returns its Record.
//
// The ok result is false when entry is not a valid record: fewer than
// two lines, a first line without the entry delimiter, or residues with
// symbols outside both the nucleic acid and amino acid alphabets.
// Invalid input is a normal outcome here, not an error, eg when
// filtering the entries of a mixed-quality file.
func Parse(entry string) (r *Record, ok bool) {
	lines := splitLines(entry)

	// a valid record is a header line followed by at least one residue line
	if len(lines) < 2 {
		return nil, false
	}

	// the first line must begin with the entry delimiter
	if !strings.HasPrefix(lines[0], Delimiter) {
		return nil, false
	}

	header := lines[0][len(Delimiter):]
	residues := strings.Join(lines[1:], "")

	// the residues must be exclusively nucleic acids or exclusively
	// amino acids. the alphabets overlap, so both may match
	if !IsNucleicAcid(residues) && !IsAminoAcid(residues) {
		return nil, false
	}

	return NewRecord(header, residues), true
}

// SetFasta overwrites the record's header and residues with those
// parsed from a FASTA entry. Unlike Parse, failure here is an error:
// the caller asked to replace existing record state with text that is
// not a valid record, and ignoring that would corrupt the record.
func (r *Record) SetFasta(entry string) error {
	parsed, ok := Parse(entry)
	if !ok {
		return ErrInvalidFasta
	}

	r.header = parsed.header
	r.residues = parsed.residues
	r.fasta = ""

	return nil
}

// Render returns the record in FASTA format with its residues wrapped
// to width symbols per line (the last line may be shorter; widths below
// one fall back to DefaultLineLength). No validation is performed and
// no trailing terminator is appended.
func (r *Record) Render(width int) string {
	return Delimiter + r.header + "\n" + wrap(r.residues, width)
}

// Fasta returns the record rendered at DefaultLineLength, caching the
// result until the header or residues change.
func (r *Record) Fasta() string {
	if r.fasta == "" {
		r.fasta = r.Render(DefaultLineLength)
	}
	return r.fasta
}

// wrap splits s into width sized chunks joined by newlines. Widths
// below one fall back to DefaultLineLength.
func wrap(s string, width int) string {
	if width < 1 {
		width = DefaultLineLength
	}

	var lines []string
	for i := 0; i < len(s); i += width {
		end := i + width
		if end > len(s) {
			end = len(s)
		}
		lines = append(lines, s[i:end])
	}
	return strings.Join(lines, "\n")
}

// splitLines splits s on newlines, tolerating "\r\n" line endings and
// ignoring a terminator on the final line.
func splitLines(s string) []string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.TrimSuffix(s, "\n")
	return strings.Split(s, "\n")
}

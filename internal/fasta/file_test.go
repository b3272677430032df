package fasta

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestSplit(t *testing.T) {
	type args struct {
		doc string
	}
	tests := []struct {
		name string
		args args
		want []string
	}{
		{
			"split a multi-record document at delimiters",
			args{">h1\nACD\n>h2\nACD\n>h3\nACD\n"},
			[]string{">h1\nACD", ">h2\nACD", ">h3\nACD\n"},
		},
		{
			"keep a single record whole",
			args{">h1\nACGT\nTTTT"},
			[]string{">h1\nACGT\nTTTT"},
		},
		{
			"split a document with windows line endings",
			args{">h1\r\nACD\r\n>h2\r\nACGT\r\n"},
			[]string{">h1\nACD", ">h2\nACGT\n"},
		},
		{
			"discard empty blocks",
			args{""},
			nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Split(tt.args.doc); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Split() = %q, want %q", got, tt.want)
			}
		})
	}
}

// Test reading of a multi-record FASTA file
func TestReadFile(t *testing.T) {
	records, err := ReadFile(filepath.Join("..", "..", "test", "multi.fa"))

	if err != nil {
		t.Fatalf("failed in ReadFile: %s", err.Error())
	}

	if len(records) != 3 {
		t.Fatalf("failed to load records, len=%d, slice=%v", len(records), records)
	}

	if records[0].Residues() != "ACD" {
		t.Errorf("failed to parse residues of the first record, got %q", records[0].Residues())
	}

	for _, r := range records {
		// ensure we got a header
		if len(r.Header()) < 1 {
			t.Error("failed to load a header for a Record from FASTA")
		}

		// ensure we got residues
		if len(r.Residues()) < 1 {
			t.Errorf("failed to parse residues for Record %s", r.Header())
		}
	}
}

// Test reading of a FASTA file with windows line endings
func TestReadFile_crlf(t *testing.T) {
	records, err := ReadFile(filepath.Join("..", "..", "test", "multi_crlf.fa"))

	if err != nil {
		t.Fatalf("failed in ReadFile: %s", err.Error())
	}

	if len(records) != 2 {
		t.Fatalf("failed to load records, len=%d, slice=%v", len(records), records)
	}

	if records[0].Residues() != "ACD" {
		t.Errorf("failed to parse residues of the first record, got %q", records[0].Residues())
	}
	if records[1].Residues() != "ACGTACGT" {
		t.Errorf("failed to parse residues of the second record, got %q", records[1].Residues())
	}
}

func TestReadFile_invalid(t *testing.T) {
	if _, err := ReadFile(filepath.Join("..", "..", "test", "invalid.fa")); err == nil {
		t.Error("failed to reject a FASTA file with a foreign residue symbol")
	}
}

// Test that written records survive a read back from the filesystem
func TestWriteFile(t *testing.T) {
	out := filepath.Join("..", "..", "test", "output", "write.fa")
	records := []*Record{
		NewRecord("test", "ACD"),
		NewRecord("test", "ACD"),
	}

	if err := WriteFile(out, records, 80); err != nil {
		t.Fatalf("failed in WriteFile: %s", err.Error())
	}

	dat, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("failed to read back the output file: %s", err.Error())
	}

	// each record is rendered and followed by a line terminator
	want := ">test\nACD\n>test\nACD\n"
	if string(dat) != want {
		t.Errorf("wrote %q, want %q", string(dat), want)
	}

	parsed, err := ReadFile(out)
	if err != nil {
		t.Fatalf("failed in ReadFile: %s", err.Error())
	}

	if len(parsed) != len(records) {
		t.Fatalf("failed to round-trip records, len=%d, want %d", len(parsed), len(records))
	}

	for i, r := range parsed {
		if r.Header() != records[i].Header() || r.Residues() != records[i].Residues() {
			t.Errorf("record %d = %q %q, want %q %q",
				i, r.Header(), r.Residues(), records[i].Header(), records[i].Residues())
		}
	}
}

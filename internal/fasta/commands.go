package fasta

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// ValidateCmd parses every record block in the input file and reports,
// per block, whether it is a valid FASTA record and the alphabet(s) its
// residues belong to. Exits non-zero if any block fails validation.
func ValidateCmd(cmd *cobra.Command, args []string) {
	fs, _ := parseCmdFlags(cmd, args, false)

	dat, err := os.ReadFile(fs.in)
	if err != nil {
		stderr.Fatalf("failed to read input FASTA path: %s", err)
	}

	blocks := Split(string(dat))
	if len(blocks) < 1 {
		stderr.Fatalf("failed to find any FASTA records in %s", fs.in)
	}

	invalid := 0
	for i, block := range blocks {
		record, ok := Parse(block)
		if !ok {
			invalid++
			fmt.Printf("%d\tinvalid\n", i+1)
			continue
		}

		fmt.Printf("%d\tvalid\t%s\t%s\n", i+1, alphabetsOf(record.Residues()), record.Header())
	}

	if invalid > 0 {
		stderr.Fatalf("%d of %d records failed validation", invalid, len(blocks))
	}
}

// FormatCmd reads the input file and rewrites it to the output path
// with every record's residues rewrapped at the requested width.
func FormatCmd(cmd *cobra.Command, args []string) {
	fs, _ := parseCmdFlags(cmd, args, true)

	records, err := ReadFile(fs.in)
	if err != nil {
		stderr.Fatal(err)
	}

	if err := WriteFile(fs.out, records, fs.width); err != nil {
		stderr.Fatal(err)
	}

	if viper.GetBool("verbose") {
		stderr.Printf("wrote %d records to %s at width %d", len(records), fs.out, fs.width)
	}
}

// StatsCmd prints the header, residue count and alphabet(s) of each
// record in the input file, and totals for the whole file.
func StatsCmd(cmd *cobra.Command, args []string) {
	fs, _ := parseCmdFlags(cmd, args, false)

	records, err := ReadFile(fs.in)
	if err != nil {
		stderr.Fatal(err)
	}

	residues := 0
	for _, r := range records {
		residues += len(r.Residues())
		fmt.Printf("%s\t%d\t%s\n", r.Header(), len(r.Residues()), alphabetsOf(r.Residues()))
	}

	fmt.Printf("%d records\t%d residues\n", len(records), residues)
}

// alphabetsOf names the fixed alphabets that residues belong to. A
// sequence of only shared symbols matches both.
func alphabetsOf(residues string) string {
	var names []string
	if IsNucleicAcid(residues) {
		names = append(names, "nucleic-acid")
	}
	if IsAminoAcid(residues) {
		names = append(names, "amino-acid")
	}

	if len(names) == 0 {
		return "none"
	}
	return strings.Join(names, ",")
}

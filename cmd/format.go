package cmd

import (
	"github.com/radusuciu/fastago/internal/fasta"
	"github.com/spf13/cobra"
)

// formatCmd rewraps the records of a FASTA file at a fixed line width
var formatCmd = &cobra.Command{
	Use:                        "format [input.fa]",
	Short:                      "Rewrite a FASTA file with residues wrapped at a fixed width",
	Run:                        fasta.FormatCmd,
	SuggestionsMinimumDistance: 2,
	Long: `Read every record in the input file and write them back out with each
record's residues rewrapped at a fixed number of symbols per line. Line
breaks inside a residue block are formatting, not content, so the records
themselves are unchanged.`,
	Aliases: []string{"fmt", "wrap"},
}

// set flags
func init() {
	formatCmd.Flags().StringP("in", "i", "", "input FASTA file <FASTA>")
	formatCmd.Flags().StringP("out", "o", "", "output file name <FASTA>")
	formatCmd.Flags().IntP("width", "w", 0, "residues per line in the output (default from settings)")

	RootCmd.AddCommand(formatCmd)
}

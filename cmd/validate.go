package cmd

import (
	"github.com/radusuciu/fastago/internal/fasta"
	"github.com/spf13/cobra"
)

// validateCmd checks that every record in a FASTA file is well formed
var validateCmd = &cobra.Command{
	Use:                        "validate [input.fa]",
	Short:                      "Check that every record in a FASTA file is valid",
	Run:                        fasta.ValidateCmd,
	SuggestionsMinimumDistance: 2,
	Long: `Split the input file into records and check each one: a record must have a
header line starting with '>', at least one residue line, and residues drawn
exclusively from the nucleic acid or the amino acid alphabet.

Records made up of only symbols the two alphabets share validate as both.`,
	Aliases: []string{"check"},
}

// set flags
func init() {
	validateCmd.Flags().StringP("in", "i", "", "input FASTA file <FASTA>")

	RootCmd.AddCommand(validateCmd)
}

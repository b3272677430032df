package cmd

import (
	"github.com/radusuciu/fastago/internal/fasta"
	"github.com/spf13/cobra"
)

// statsCmd summarizes the records of a FASTA file
var statsCmd = &cobra.Command{
	Use:                        "stats [input.fa]",
	Short:                      "Print the header, length and alphabet of each record",
	Run:                        fasta.StatsCmd,
	SuggestionsMinimumDistance: 2,
	Long: `Print one line per record with its header, residue count and the
alphabet(s) its residues belong to, followed by totals for the file.`,
}

// set flags
func init() {
	statsCmd.Flags().StringP("in", "i", "", "input FASTA file <FASTA>")

	RootCmd.AddCommand(statsCmd)
}

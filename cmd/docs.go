package cmd

import (
	"log"

	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"
)

// docsCmd generates Markdown documentation for the command tree
// https://github.com/spf13/cobra/blob/master/doc/md_docs.md
var docsCmd = &cobra.Command{
	Use:    "docs",
	Short:  "Generate Markdown documentation for the fastago commands",
	Hidden: true,
	Run: func(cmd *cobra.Command, args []string) {
		dir, err := cmd.Flags().GetString("dir")
		if err != nil {
			log.Fatalf("failed to parse dir flag: %v", err)
		}

		if err := doc.GenMarkdownTree(RootCmd, dir); err != nil {
			log.Fatalf("failed to generate docs: %v", err)
		}
	},
}

// set flags
func init() {
	docsCmd.Flags().StringP("dir", "d", "./docs", "directory to write the Markdown files to")

	RootCmd.AddCommand(docsCmd)
}

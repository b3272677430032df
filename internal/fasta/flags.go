package fasta

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/radusuciu/fastago/config"
	"github.com/spf13/cobra"
)

var (
	// stderr is for logging to Stderr (without an annoying timestamp)
	stderr = log.New(os.Stderr, "", 0)
)

// Flags contains parsed cobra flags like "in", "out", "width" that are
// used by multiple commands.
type Flags struct {
	// the path of the input FASTA file
	in string

	// the path to write reformatted records to
	out string

	// the number of residues per line in rendered output
	width int
}

// inputParser contains methods for parsing flags from the input &cobra.Command.
type inputParser struct{}

// parseCmdFlags gathers the in path, out path and width from a cobra
// cmd object. Returns Flags and a Config struct for the fasta commands.
func parseCmdFlags(cmd *cobra.Command, args []string, needsOut bool) (*Flags, *config.Config) {
	var err error
	fs := &Flags{} // parsed flags
	p := inputParser{}
	c := config.New()

	if fs.in, err = cmd.Flags().GetString("in"); fs.in == "" || err != nil {
		if len(args) > 0 {
			fs.in = args[0]
		} else if fs.in, err = p.guessInput(); err != nil {
			// no input flag, argument, or fasta file in this directory
			cmd.Help()
			stderr.Fatal(err)
		}
	}

	if fs.out, err = cmd.Flags().GetString("out"); needsOut && (fs.out == "" || err != nil) {
		fs.out = p.guessOutput(fs.in) // guess at an output name
	}

	if fs.width, err = cmd.Flags().GetInt("width"); err != nil || fs.width < 1 {
		fs.width = c.Output.LineLength
	}

	return fs, c
}

// guessInput returns the first fasta file in the current directory. Is used
// if the user hasn't specified an input file.
func (p *inputParser) guessInput() (in string, err error) {
	dir, _ := filepath.Abs(".")
	files, err := os.ReadDir(dir)
	if err != nil {
		return
	}

	for _, file := range files {
		if file.IsDir() {
			continue
		}

		ext := strings.ToLower(filepath.Ext(file.Name()))
		if ext == ".fa" || ext == ".fasta" {
			return file.Name(), nil
		}
	}

	return "", fmt.Errorf("failed: no input argument set and no fasta file found in %s", dir)
}

// guessOutput gets an output path from an input path (if no output path
// is specified). It uses the same name as the input path to create an output.
func (p *inputParser) guessOutput(in string) (out string) {
	ext := filepath.Ext(in)
	noExt := in[0 : len(in)-len(ext)]
	return noExt + ".output.fa"
}

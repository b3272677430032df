package fasta

import "strings"

// NucleicAcids is every valid nucleotide symbol: the four bases, uracil,
// the IUPAC ambiguity codes, and the gap symbol.
const NucleicAcids = "ACGTNUKSYMWRBDHV-"

// AminoAcids is every valid amino acid symbol, plus the stop symbol
// and the gap symbol.
const AminoAcids = "APBQCRDSETFUGVHWIYKZLXMN*-"

// alphabet is a fixed set of valid residue symbols.
type alphabet map[rune]bool

// membership tables, built once and read-only after init
var (
	nucleicAcids = newAlphabet(NucleicAcids)
	aminoAcids   = newAlphabet(AminoAcids)
)

func newAlphabet(symbols string) alphabet {
	a := make(alphabet, len(symbols))
	for _, s := range symbols {
		a[s] = true
	}
	return a
}

// contains is whether every rune of seq, uppercased, is in the alphabet.
// An empty seq is vacuously contained.
func (a alphabet) contains(seq string) bool {
	for _, r := range strings.ToUpper(seq) {
		if !a[r] {
			return false
		}
	}
	return true
}

// IsNucleicAcid is whether seq consists solely of nucleic acid symbols.
// Case-insensitive.
func IsNucleicAcid(seq string) bool {
	return nucleicAcids.contains(seq)
}

// IsAminoAcid is whether seq consists solely of amino acid symbols.
// Case-insensitive. The two alphabets overlap, so a sequence made up of
// shared symbols (eg "ACD") is both a valid nucleic acid and a valid
// amino acid sequence.
func IsAminoAcid(seq string) bool {
	return aminoAcids.contains(seq)
}

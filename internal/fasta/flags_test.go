package fasta

import "testing"

func Test_inputParser_guessOutput(t *testing.T) {
	type args struct {
		in string
	}
	tests := []struct {
		name string
		args args
		want string
	}{
		{
			"replace a fasta extension",
			args{"sequences.fa"},
			"sequences.output.fa",
		},
		{
			"replace a long fasta extension",
			args{"sequences.fasta"},
			"sequences.output.fa",
		},
		{
			"handle an input without an extension",
			args{"sequences"},
			"sequences.output.fa",
		},
	}

	p := inputParser{}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := p.guessOutput(tt.args.in); got != tt.want {
				t.Errorf("inputParser.guessOutput() = %v, want %v", got, tt.want)
			}
		})
	}
}

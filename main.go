package main

import (
	"github.com/radusuciu/fastago/cmd"
)

func main() {
	cmd.Execute() // initialize cobra commands
}

package main

import (
	"os"

	"github.com/moffa90/go-libfprint/cmd/fprintctl/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}

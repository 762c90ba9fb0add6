package main

import (
	"os"

	"github.com/katalvlaran/qkp/cmd/qkp/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}

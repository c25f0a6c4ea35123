package main

import (
	"os"

	"github.com/dompet-dev/dompet/internal/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

package main

import (
	"os"

	"github.com/bankstat-dev/bankstat/internal/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

package main

import (
	"os"

	"github.com/bwpge/daygen/internal/commands"
)

func main() {
	rootCmd := commands.RootCmd()

	rootCmd.AddCommand(commands.NestedCmd())
	rootCmd.AddCommand(commands.FlatCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

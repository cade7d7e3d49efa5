package commands

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/bwpge/daygen"
	"github.com/bwpge/daygen/internal/output"
)

// RootCmd creates and returns the root command for the daygen CLI
func RootCmd() *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:   "daygen",
		Short: "Generate Advent of Code solution modules",
		Long: `Daygen scaffolds Advent of Code solution modules in a Rust project.

For a given day it renders the solution skeleton, wires the day number into
the runner's dispatch match, and declares the module in the crate:
• nested layout: src/solutions/day05/mod.rs, declared in src/solutions/mod.rs
• flat layout:   src/day5.rs, declared in src/lib.rs

The project root is found via --parent-dir (default: ..) and must contain
Cargo.toml and Cargo.lock. After generating, daygen runs cargo fmt unless
--no-fmt is given.`,
		Version: daygen.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			output.SetVerbose(verbose)
		},
	}

	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output for debugging")

	// DAYGEN_PARENT_DIR overrides the --parent-dir default
	viper.SetEnvPrefix("daygen")
	viper.BindEnv("parent_dir")

	return cmd
}

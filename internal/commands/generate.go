package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/bwpge/daygen/internal/exec"
	"github.com/bwpge/daygen/internal/generator"
	"github.com/bwpge/daygen/internal/input"
	"github.com/bwpge/daygen/internal/output"
	"github.com/bwpge/daygen/internal/project"
	"github.com/bwpge/daygen/internal/solution"
)

// generateOptions holds the shared flags of the layout subcommands.
type generateOptions struct {
	day       int
	parentDir string
	title     string
	noFmt     bool
	dryRun    bool
}

// newLayoutCmd builds a generation subcommand for one layout. Both variants
// share flags and run flow; only the layout differs.
func newLayoutCmd(layout solution.Layout, short, example string) *cobra.Command {
	var opts generateOptions

	cmd := &cobra.Command{
		Use:   layout.Name(),
		Short: short,
		Long: short + `

The parent directory must be a Cargo project root (Cargo.toml + Cargo.lock)
with a src directory. If the day's module already exists, daygen asks before
overwriting; declining leaves the project untouched.

Example:
  ` + example,
		Run: func(cmd *cobra.Command, args []string) {
			if !cmd.Flags().Changed("parent-dir") {
				if v := viper.GetString("parent_dir"); v != "" {
					opts.parentDir = v
				}
			}

			if err := runGenerate(layout, opts); err != nil {
				output.Error(err.Error())
				os.Exit(1)
			}
		},
	}

	cmd.Flags().IntVarP(&opts.day, "num", "n", 0, "the day number for this solution (1-25)")
	cmd.MarkFlagRequired("num")
	cmd.Flags().StringVarP(&opts.parentDir, "parent-dir", "d", "..", "parent directory containing the Cargo project")
	cmd.Flags().StringVarP(&opts.title, "title", "t", "", "optional title for the day's problem (used in documentation)")
	cmd.Flags().BoolVar(&opts.noFmt, "no-fmt", false, "skip running `cargo fmt` after generating the solution")
	cmd.Flags().BoolVar(&opts.dryRun, "dry-run", false, "print planned operations without modifying the project")

	return cmd
}

// NestedCmd generates a directory-per-day module under src/solutions/.
func NestedCmd() *cobra.Command {
	return newLayoutCmd(
		solution.NestedLayout{},
		"Generate a solution module under src/solutions/",
		"daygen nested -n 5 -t \"If You Give A Seed A Fertilizer\"",
	)
}

// FlatCmd generates a single-file module under src/.
func FlatCmd() *cobra.Command {
	return newLayoutCmd(
		solution.FlatLayout{},
		"Generate a flat solution file under src/",
		"daygen flat -n 5 -t \"If You Give A Seed A Fertilizer\"",
	)
}

// runGenerate is the whole run: validate, confirm, mutate, format.
// A nil return with no mutation is how a user-declined overwrite ends.
func runGenerate(layout solution.Layout, opts generateOptions) error {
	ctx := context.Background()

	if err := project.ValidateRoot(opts.parentDir); err != nil {
		return err
	}

	cfg, err := project.LoadConfig(opts.parentDir)
	if err != nil {
		return err
	}

	crate := cfg.Crate
	if crate == "" {
		if crate, err = project.CrateName(opts.parentDir); err != nil {
			return err
		}
	}
	output.Verbose(fmt.Sprintf("Crate name: %s", crate))

	srcDir := project.SrcDir(opts.parentDir)
	modName := layout.ModName(opts.day)

	gen := solution.NewGenerator()
	ops, err := gen.Generate(srcDir, solution.Options{
		Day:    opts.day,
		Title:  opts.title,
		Crate:  crate,
		Layout: layout,
	})
	if err != nil {
		return err
	}

	// Overwrite prompt happens after rendering but before any mutation, so
	// declining always leaves the project untouched.
	if _, err := os.Stat(layout.ModulePath(srcDir, opts.day)); err == nil && !opts.dryRun {
		output.Warning(fmt.Sprintf("the module `%s` already exists", modName))
		if !input.Confirm("Are you sure you want to continue?", false) {
			output.Info("Aborted, nothing was changed")
			return nil
		}
	}

	output.Info("Generating solution:")
	execOpts := generator.ExecuteOptions{Force: true, DryRun: opts.dryRun}
	if err := generator.Execute(ctx, ops, execOpts); err != nil {
		return err
	}

	if opts.dryRun {
		return nil
	}

	if !opts.noFmt && !cfg.NoFmt {
		executor := exec.NewExecutor(&exec.Options{Dir: opts.parentDir})
		if err := executor.RunWithSpinner(ctx, "Running cargo fmt", "cargo", "fmt"); err != nil {
			return err
		}
	}

	output.Success("Solution successfully created!")
	output.Info(fmt.Sprintf("Remember to add the problem text to `%s`", layout.SolutionPath("src", opts.day)))

	return nil
}

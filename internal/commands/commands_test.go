package commands

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bwpge/daygen/internal/input"
	"github.com/bwpge/daygen/internal/solution"
)

// captureStdout captures stdout during test execution
func captureStdout(t *testing.T, f func()) string {
	t.Helper()
	old := os.Stdout
	r, w, err := os.Pipe()
	require.NoError(t, err)
	os.Stdout = w

	f()

	w.Close()
	os.Stdout = old

	var buf bytes.Buffer
	io.Copy(&buf, r)
	return buf.String()
}

func TestRootCmd(t *testing.T) {
	cmd := RootCmd()
	assert.Equal(t, "daygen", cmd.Use)
	assert.NotEmpty(t, cmd.Version)
	assert.NotNil(t, cmd.PersistentFlags().Lookup("verbose"))
}

func TestLayoutCmds_Flags(t *testing.T) {
	cmds := map[string]func() *cobra.Command{
		"nested": NestedCmd,
		"flat":   FlatCmd,
	}

	for name, mk := range cmds {
		t.Run(name, func(t *testing.T) {
			cmd := mk()
			assert.Equal(t, name, cmd.Use)

			for _, flag := range []string{"num", "parent-dir", "title", "no-fmt", "dry-run"} {
				require.NotNil(t, cmd.Flags().Lookup(flag), "missing flag %s", flag)
			}

			assert.Equal(t, "n", cmd.Flags().Lookup("num").Shorthand)
			assert.Equal(t, "d", cmd.Flags().Lookup("parent-dir").Shorthand)
			assert.Equal(t, "t", cmd.Flags().Lookup("title").Shorthand)
			assert.Equal(t, "..", cmd.Flags().Lookup("parent-dir").DefValue)
		})
	}
}

// setupCargoProject creates a complete target project for end-to-end runs.
// The .daygen.yml disables formatting so tests don't need a cargo binary.
func setupCargoProject(t *testing.T) string {
	t.Helper()
	root := t.TempDir()

	mainRS := `fn main() {
    let result = match args.day {
        1 => aoc::day1::exec(input),
        _ => Err(anyhow!("no solution found for day {}", args.day)),
    };
}
`
	files := map[string]string{
		"Cargo.toml":           "[package]\nname = \"aoc\"\nversion = \"0.1.0\"\n",
		"Cargo.lock":           "# auto-generated\n",
		".daygen.yml":          "generator:\n  no_fmt: true\n",
		"src/main.rs":          mainRS,
		"src/lib.rs":           "pub mod cli;\npub mod day1;\n",
		"src/solutions/mod.rs": "pub mod day01;\n",
	}
	for name, content := range files {
		path := filepath.Join(root, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	}
	return root
}

func TestRunGenerate_Nested(t *testing.T) {
	root := setupCargoProject(t)

	err := runGenerate(solution.NestedLayout{}, generateOptions{
		day:       5,
		parentDir: root,
		title:     "If You Give A Seed A Fertilizer",
	})
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(root, "src", "solutions", "day05", "mod.rs"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "# Day 5: If You Give A Seed A Fertilizer")

	data, err = os.ReadFile(filepath.Join(root, "src", "main.rs"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "5 => solutions::day05::exec(input),")

	data, err = os.ReadFile(filepath.Join(root, "src", "solutions", "mod.rs"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "pub mod day05;")
}

func TestRunGenerate_Flat(t *testing.T) {
	root := setupCargoProject(t)

	err := runGenerate(solution.FlatLayout{}, generateOptions{
		day:       3,
		parentDir: root,
	})
	require.NoError(t, err)

	assert.FileExists(t, filepath.Join(root, "src", "day3.rs"))

	data, err := os.ReadFile(filepath.Join(root, "src", "main.rs"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "3 => aoc::day3::exec(input),")

	data, err = os.ReadFile(filepath.Join(root, "src", "lib.rs"))
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(string(data), "pub mod day3;\n"))
}

func TestRunGenerate_ReminderNamesSolutionFile(t *testing.T) {
	root := setupCargoProject(t)

	var err error
	out := captureStdout(t, func() {
		err = runGenerate(solution.NestedLayout{}, generateOptions{
			day:       6,
			parentDir: root,
		})
	})
	require.NoError(t, err)
	assert.Contains(t, out, filepath.Join("src", "solutions", "day06", "mod.rs"))
}

func TestRunGenerate_DeclineOverwrite(t *testing.T) {
	root := setupCargoProject(t)
	require.NoError(t, os.MkdirAll(filepath.Join(root, "src", "solutions", "day05"), 0755))

	mainPath := filepath.Join(root, "src", "main.rs")
	listPath := filepath.Join(root, "src", "solutions", "mod.rs")
	mainBefore, err := os.ReadFile(mainPath)
	require.NoError(t, err)
	listBefore, err := os.ReadFile(listPath)
	require.NoError(t, err)

	restore := input.SetReader(strings.NewReader("n\n"))
	defer restore()

	captureStdout(t, func() {
		err = runGenerate(solution.NestedLayout{}, generateOptions{
			day:       5,
			parentDir: root,
		})
	})
	require.NoError(t, err)

	// Declining leaves the project byte-for-byte untouched
	assert.NoFileExists(t, filepath.Join(root, "src", "solutions", "day05", "mod.rs"))

	mainAfter, err := os.ReadFile(mainPath)
	require.NoError(t, err)
	assert.Equal(t, mainBefore, mainAfter)

	listAfter, err := os.ReadFile(listPath)
	require.NoError(t, err)
	assert.Equal(t, listBefore, listAfter)
}

func TestRunGenerate_AcceptOverwrite(t *testing.T) {
	root := setupCargoProject(t)
	dayFile := filepath.Join(root, "src", "day3.rs")
	require.NoError(t, os.WriteFile(dayFile, []byte("// stale attempt\n"), 0644))

	restore := input.SetReader(strings.NewReader("y\n"))
	defer restore()

	var err error
	captureStdout(t, func() {
		err = runGenerate(solution.FlatLayout{}, generateOptions{
			day:       3,
			parentDir: root,
		})
	})
	require.NoError(t, err)

	data, err := os.ReadFile(dayFile)
	require.NoError(t, err)
	assert.Contains(t, string(data), "//! Solution for Advent of Code 2023, Day 3.")
	assert.NotContains(t, string(data), "stale attempt")

	data, err = os.ReadFile(filepath.Join(root, "src", "main.rs"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "3 => aoc::day3::exec(input),")
}

func TestRunGenerate_InvalidRoot(t *testing.T) {
	root := t.TempDir() // no Cargo.toml/Cargo.lock

	err := runGenerate(solution.FlatLayout{}, generateOptions{
		day:       1,
		parentDir: root,
	})
	require.Error(t, err)

	// No mutation before validation passes
	assert.NoFileExists(t, filepath.Join(root, "src", "day1.rs"))
}

func TestRunGenerate_DryRun(t *testing.T) {
	root := setupCargoProject(t)
	before, err := os.ReadFile(filepath.Join(root, "src", "main.rs"))
	require.NoError(t, err)

	err = runGenerate(solution.NestedLayout{}, generateOptions{
		day:       7,
		parentDir: root,
		dryRun:    true,
	})
	require.NoError(t, err)

	assert.NoFileExists(t, filepath.Join(root, "src", "solutions", "day07", "mod.rs"))

	after, err := os.ReadFile(filepath.Join(root, "src", "main.rs"))
	require.NoError(t, err)
	assert.Equal(t, string(before), string(after))
}

func TestRunGenerate_InvalidDay(t *testing.T) {
	root := setupCargoProject(t)

	err := runGenerate(solution.FlatLayout{}, generateOptions{
		day:       99,
		parentDir: root,
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "between 1 and 25")
}

package project

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// DefaultCrate is assumed when Cargo.toml doesn't declare a package name.
// The flat layout references solutions through the crate name
// (e.g. `aoc::day5::exec(input)`).
const DefaultCrate = "aoc"

// CrateName reads the `[package] name` entry from the project's Cargo.toml.
// A missing or unnamed manifest falls back to DefaultCrate; a manifest that
// exists but can't be parsed is an error, since the routing lines built from
// it would be garbage.
func CrateName(dir string) (string, error) {
	data, err := os.ReadFile(filepath.Join(dir, ManifestFile))
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultCrate, nil
		}
		return "", fmt.Errorf("failed to read %s: %w", ManifestFile, err)
	}

	var manifest struct {
		Package struct {
			Name string `toml:"name"`
		} `toml:"package"`
	}

	if err := toml.Unmarshal(data, &manifest); err != nil {
		return "", fmt.Errorf("failed to parse %s: %w", ManifestFile, err)
	}

	if manifest.Package.Name == "" {
		return DefaultCrate, nil
	}

	return manifest.Package.Name, nil
}

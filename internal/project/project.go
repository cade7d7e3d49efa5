// Package project locates and validates the target Cargo project.
//
// The generator never parses Rust; it only checks that the directory it is
// pointed at looks like the Advent of Code crate it expects (manifest,
// lockfile, src tree) and reads a couple of optional settings.
package project

import (
	"fmt"
	"os"
	"path/filepath"
)

// Marker files that identify a Cargo project root.
const (
	ManifestFile = "Cargo.toml"
	LockFile     = "Cargo.lock"
)

// ValidateRoot checks that dir is an existing Cargo project root containing
// both marker files and a src directory. It returns a descriptive error for
// the first failed check. Nothing is created or modified.
func ValidateRoot(dir string) error {
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		abs, _ := filepath.Abs(dir)
		return fmt.Errorf("parent directory `%s` does not exist", abs)
	}

	for _, name := range []string{LockFile, ManifestFile} {
		marker := filepath.Join(dir, name)
		if _, err := os.Stat(marker); err != nil {
			abs, _ := filepath.Abs(dir)
			return fmt.Errorf("parent directory is not suitable: expected to find `%s` in `%s`", name, abs)
		}
	}

	src := filepath.Join(dir, "src")
	srcInfo, err := os.Stat(src)
	if err != nil {
		return fmt.Errorf("`src` directory does not exist in `%s`", dir)
	}
	if !srcInfo.IsDir() {
		return fmt.Errorf("`src` path exists and is not a directory")
	}

	return nil
}

// SrcDir returns the source directory under the project root.
func SrcDir(dir string) string {
	return filepath.Join(dir, "src")
}

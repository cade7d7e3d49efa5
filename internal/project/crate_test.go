package project

import (
	"os"
	"path/filepath"
	"testing"
)

func TestCrateName(t *testing.T) {
	tmpDir := t.TempDir()
	manifest := `[package]
name = "aoc2023"
version = "0.1.0"
edition = "2021"

[dependencies]
anyhow = "1.0"
`
	if err := os.WriteFile(filepath.Join(tmpDir, "Cargo.toml"), []byte(manifest), 0644); err != nil {
		t.Fatal(err)
	}

	name, err := CrateName(tmpDir)
	if err != nil {
		t.Fatalf("CrateName() error = %v", err)
	}
	if name != "aoc2023" {
		t.Errorf("CrateName() = %q, want %q", name, "aoc2023")
	}
}

func TestCrateName_MissingManifest(t *testing.T) {
	name, err := CrateName(t.TempDir())
	if err != nil {
		t.Fatalf("CrateName() error = %v", err)
	}
	if name != DefaultCrate {
		t.Errorf("CrateName() = %q, want default %q", name, DefaultCrate)
	}
}

func TestCrateName_NoPackageName(t *testing.T) {
	tmpDir := t.TempDir()
	if err := os.WriteFile(filepath.Join(tmpDir, "Cargo.toml"), []byte("[workspace]\n"), 0644); err != nil {
		t.Fatal(err)
	}

	name, err := CrateName(tmpDir)
	if err != nil {
		t.Fatalf("CrateName() error = %v", err)
	}
	if name != DefaultCrate {
		t.Errorf("CrateName() = %q, want default %q", name, DefaultCrate)
	}
}

func TestCrateName_InvalidManifest(t *testing.T) {
	tmpDir := t.TempDir()
	if err := os.WriteFile(filepath.Join(tmpDir, "Cargo.toml"), []byte("[package\nname="), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := CrateName(tmpDir); err == nil {
		t.Fatal("CrateName() error = nil, want parse error")
	}
}

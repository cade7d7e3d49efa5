package project

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfig(t *testing.T) {
	tmpDir := t.TempDir()
	daygenYML := `generator:
  crate: aoc2023
  no_fmt: true
`
	if err := os.WriteFile(filepath.Join(tmpDir, ".daygen.yml"), []byte(daygenYML), 0644); err != nil {
		t.Fatal(err)
	}

	config, err := LoadConfig(tmpDir)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	if config.Crate != "aoc2023" {
		t.Errorf("Crate = %q, want %q", config.Crate, "aoc2023")
	}
	if !config.NoFmt {
		t.Error("NoFmt = false, want true")
	}
	if config.ConfigPath == "" {
		t.Error("ConfigPath is empty, want path to .daygen.yml")
	}
}

func TestLoadConfig_Missing(t *testing.T) {
	config, err := LoadConfig(t.TempDir())
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	if config.Crate != "" || config.NoFmt || config.ConfigPath != "" {
		t.Errorf("LoadConfig() = %+v, want zero-value config", config)
	}
}

func TestLoadConfig_Invalid(t *testing.T) {
	tmpDir := t.TempDir()
	if err := os.WriteFile(filepath.Join(tmpDir, ".daygen.yml"), []byte("generator: [oops"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadConfig(tmpDir); err == nil {
		t.Fatal("LoadConfig() error = nil, want parse error")
	}
}

package project

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ConfigFile is the optional per-project generator configuration.
const ConfigFile = ".daygen.yml"

// Config holds per-project generator settings from .daygen.yml.
type Config struct {
	ConfigPath string // Path the config was loaded from ("" if absent)
	Crate      string // Crate-name override for routing lines
	NoFmt      bool   // Skip `cargo fmt` by default
}

// LoadConfig reads .daygen.yml from the project root. A missing file is not
// an error and yields a zero-value config.
func LoadConfig(dir string) (*Config, error) {
	configPath := filepath.Join(dir, ConfigFile)
	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", ConfigFile, err)
	}

	var config struct {
		Generator struct {
			Crate string `yaml:"crate"`
			NoFmt bool   `yaml:"no_fmt"`
		} `yaml:"generator"`
	}

	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", ConfigFile, err)
	}

	return &Config{
		ConfigPath: configPath,
		Crate:      config.Generator.Crate,
		NoFmt:      config.Generator.NoFmt,
	}, nil
}

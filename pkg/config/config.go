// Package config loads scanner defaults from the workspace .tdl
// directory. Command-line flags take precedence over everything here.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"tdl/pkg/core"
)

// Dir is the workspace directory holding tdl state and configuration.
const Dir = ".tdl"

const fileName = "config.yaml"

// Config holds scanner defaults read from .tdl/config.yaml.
type Config struct {
	// Tags to scan for; empty means all supported tags.
	Tags []string `yaml:"tags"`
	// Workers is the scan worker count; zero means one per CPU.
	Workers int `yaml:"workers"`
	// Color toggles colorized terminal output.
	Color bool `yaml:"color"`
	// Blame annotates comments with git blame metadata.
	Blame bool `yaml:"blame"`
	// Output selects a report format (json, yaml, text). Empty skips
	// writing a report file.
	Output string `yaml:"output"`
	// OutputDir is where report files are written.
	OutputDir string `yaml:"output_dir"`
	// ExcludeDirs are directory names skipped while collecting files.
	ExcludeDirs []string `yaml:"exclude_dirs"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Color:       true,
		OutputDir:   Dir,
		ExcludeDirs: core.DefaultExcludeDirs,
	}
}

// Path returns the config file location under root.
func Path(root string) string {
	return filepath.Join(root, Dir, fileName)
}

// Load reads the configuration under root. A missing file yields the
// defaults; a malformed file is an error.
func Load(root string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(Path(root))
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("failed to parse config file: %w", err)
	}

	if cfg.OutputDir == "" {
		cfg.OutputDir = Dir
	}
	if cfg.ExcludeDirs == nil {
		cfg.ExcludeDirs = core.DefaultExcludeDirs
	}
	return cfg, nil
}

// Write persists cfg under root, creating the .tdl directory if
// needed.
func Write(root string, cfg Config) error {
	if err := os.MkdirAll(filepath.Join(root, Dir), 0755); err != nil {
		return fmt.Errorf("failed to create %s: %w", Dir, err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	if err := os.WriteFile(Path(root), data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

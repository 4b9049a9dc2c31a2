// SPDX-License-Identifier: Apache-2.0

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/piggie-dev/manifesto/internal/core/format"
)

// Constants for default paths.
const (
	DefaultConfigDir      = ".manifesto"
	DefaultConfigFileName = "config.yaml"
	DefaultManifestoPath  = "manifesto.md"
	DefaultBackupsDir     = ".manifesto/backups"
)

// Config holds the application configuration.
type Config struct {
	// ManifestoPath is the workspace-relative location of the protected
	// manifesto document.
	ManifestoPath string `yaml:"manifesto_path"`

	// BackupsDir is the managed backup location, workspace-relative.
	BackupsDir string `yaml:"backups_dir"`

	// AutoMode executes non-protected actions immediately instead of
	// requiring approval. The create-manifesto override applies either way.
	AutoMode bool `yaml:"auto_mode"`

	// AutoPolicy is an optional CEL expression further restricting what
	// auto mode may execute.
	AutoPolicy string `yaml:"auto_policy,omitempty"`

	// LintCommand optionally names an external linter invoked by the
	// lint-code action alongside the manifesto rule check.
	LintCommand string   `yaml:"lint_command,omitempty"`
	LintArgs    []string `yaml:"lint_args,omitempty"`
}

// NewDefaultConfig creates the default configuration.
func NewDefaultConfig() *Config {
	return &Config{
		ManifestoPath: DefaultManifestoPath,
		BackupsDir:    DefaultBackupsDir,
		AutoMode:      false,
	}
}

// ExpandPathWithTilde expands ~ to the user home directory. It respects
// the MANIFESTO_HOME environment variable for testing purposes.
func ExpandPathWithTilde(path string) string {
	if path == "~" {
		home := getHomeDir()
		if home == "" {
			return path
		}
		return home
	}
	if strings.HasPrefix(path, "~/") {
		home := getHomeDir()
		if home == "" {
			return path
		}
		return filepath.Join(home, path[2:])
	}
	return path
}

func getHomeDir() string {
	if override := os.Getenv("MANIFESTO_HOME"); override != "" {
		return override
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return home
}

// Load reads the project configuration from <projectDir>/.manifesto/
// config.yaml, falling back to defaults when the file does not exist.
func Load(projectDir string) (*Config, error) {
	cfg := NewDefaultConfig()

	path := filepath.Join(projectDir, DefaultConfigDir, DefaultConfigFileName)
	loaded, err := LoadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("error loading config %s: %w", path, err)
	}

	merge(cfg, loaded)
	return cfg, nil
}

// LoadFile loads a configuration from a specific file path.
func LoadFile(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config file path cannot be empty")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("error parsing config file: %w", err)
	}

	return cfg, nil
}

// Save writes the configuration to <projectDir>/.manifesto/config.yaml.
func Save(projectDir string, cfg *Config) error {
	dir := filepath.Join(projectDir, DefaultConfigDir)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("error creating config directory: %w", err)
	}

	return format.WriteFile(filepath.Join(dir, DefaultConfigFileName), cfg)
}

// merge overlays non-zero values from source onto target. Booleans are
// taken from the source as-is; a config file that exists owns the flags.
func merge(target, source *Config) {
	if source.ManifestoPath != "" {
		target.ManifestoPath = source.ManifestoPath
	}
	if source.BackupsDir != "" {
		target.BackupsDir = ExpandPathWithTilde(source.BackupsDir)
	}
	if source.AutoPolicy != "" {
		target.AutoPolicy = source.AutoPolicy
	}
	if source.LintCommand != "" {
		target.LintCommand = source.LintCommand
		target.LintArgs = source.LintArgs
	}
	target.AutoMode = source.AutoMode
}

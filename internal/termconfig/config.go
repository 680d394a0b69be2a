// Package termconfig loads host-level terminal defaults from a YAML file.
//
// It is consumed by the demo host (cmd/vtdemo), not by the core engine:
// the engine's own terminal.Config is plain Go values a caller fills in,
// optionally seeded from the values this package loads.
package termconfig

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds the settings a host reads before constructing a
// terminal.Config.
type Config struct {
	// ShellPath overrides the shell to spawn. Empty defers to SHELL then
	// the built-in default.
	ShellPath string `yaml:"shell_path"`

	// Rows and Cols size the initial grid.
	Rows int `yaml:"rows"`
	Cols int `yaml:"cols"`

	// MaxScrollback bounds the scrollback ring.
	MaxScrollback int `yaml:"max_scrollback"`

	// BracketedPaste is loaded from and written to the file with the other
	// settings; cmd/vtdemo does not read it.
	BracketedPaste bool `yaml:"bracketed_paste"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() Config {
	return Config{
		ShellPath:      "",
		Rows:           24,
		Cols:           80,
		MaxScrollback:  10000,
		BracketedPaste: false,
	}
}

// configPath returns the path to ~/.vterm.yaml.
func configPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".vterm.yaml")
}

// Load reads the config file, falling back to defaults for missing
// fields, and writes a default file out on first run so it's there to
// edit next time.
func Load() Config {
	cfg := DefaultConfig()

	p := configPath()
	if p == "" {
		return cfg
	}

	data, err := os.ReadFile(p)
	if err != nil {
		_ = writeDefaults(p, cfg)
		return cfg
	}

	_ = yaml.Unmarshal(data, &cfg)

	if cfg.Rows < 1 {
		cfg.Rows = 1
	}
	if cfg.Cols < 1 {
		cfg.Cols = 1
	}
	if cfg.MaxScrollback < 0 {
		cfg.MaxScrollback = 0
	}

	return cfg
}

func writeDefaults(path string, cfg Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	header := []byte("# vterm configuration\n# Edit this file to customise defaults.\n\n")
	return os.WriteFile(path, append(header, data...), 0644)
}

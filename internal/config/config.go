// Package config loads the userbrush settings file and resolves the XDG
// directories the tool writes to.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	appName        = "userbrush"
	configFileName = "config.yaml"

	// DefaultLogMaxEntries bounds the operation log when the config does not.
	DefaultLogMaxEntries = 1000
	// DefaultSketchSubfolder is where variants live inside packed sketches.
	DefaultSketchSubfolder = "brushes"
)

// Config is the contents of config.yaml.
type Config struct {
	// Catalog is the YAML or TOML file describing base brushes and shaders.
	Catalog string `yaml:"catalog"`
	// BrushesDir holds user variant bundles, one folder or .zip each.
	BrushesDir string `yaml:"brushes_dir"`
	// ExportDir receives exported base brush properties.
	ExportDir       string    `yaml:"export_dir"`
	SketchSubfolder string    `yaml:"sketch_subfolder,omitempty"`
	Jobs            int       `yaml:"jobs,omitempty"`
	Log             LogConfig `yaml:"log,omitempty"`
}

type LogConfig struct {
	MaxEntries int `yaml:"max_entries,omitempty"`
}

// BaseDir returns $XDG_CONFIG_HOME/userbrush (default ~/.config/userbrush).
func BaseDir() string {
	return xdgDir("XDG_CONFIG_HOME", ".config")
}

// DataDir returns $XDG_DATA_HOME/userbrush (default ~/.local/share/userbrush).
func DataDir() string {
	return xdgDir("XDG_DATA_HOME", filepath.Join(".local", "share"))
}

// StateDir returns $XDG_STATE_HOME/userbrush (default ~/.local/state/userbrush).
func StateDir() string {
	return xdgDir("XDG_STATE_HOME", filepath.Join(".local", "state"))
}

func xdgDir(env, fallback string) string {
	if dir := os.Getenv(env); dir != "" {
		return filepath.Join(dir, appName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return filepath.Join(home, fallback, appName)
}

// ConfigPath returns the settings file path. USERBRUSH_CONFIG overrides the
// XDG location.
func ConfigPath() string {
	if p := os.Getenv("USERBRUSH_CONFIG"); p != "" {
		return p
	}
	return filepath.Join(BaseDir(), configFileName)
}

// Default returns the settings used by `userbrush init`.
func Default() *Config {
	data := DataDir()
	return &Config{
		Catalog:         filepath.Join(BaseDir(), "catalog.yaml"),
		BrushesDir:      filepath.Join(data, "Brushes"),
		ExportDir:       filepath.Join(data, "Exported Properties"),
		SketchSubfolder: DefaultSketchSubfolder,
		Log:             LogConfig{MaxEntries: DefaultLogMaxEntries},
	}
}

// Load reads config.yaml from ConfigPath.
func Load() (*Config, error) {
	return LoadFrom(ConfigPath())
}

// LoadFrom reads a settings file. Relative paths in it are resolved against
// the file's directory and "~" is expanded.
func LoadFrom(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("config not found: run 'userbrush init' first")
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if strings.TrimSpace(cfg.Catalog) == "" {
		return nil, fmt.Errorf("config has no catalog path")
	}
	if cfg.Jobs < 0 {
		return nil, fmt.Errorf("config jobs must not be negative, got %d", cfg.Jobs)
	}

	dir := filepath.Dir(path)
	cfg.Catalog = resolvePath(dir, cfg.Catalog)
	cfg.BrushesDir = resolvePath(dir, cfg.BrushesDir)
	cfg.ExportDir = resolvePath(dir, cfg.ExportDir)
	if cfg.SketchSubfolder == "" {
		cfg.SketchSubfolder = DefaultSketchSubfolder
	}
	return &cfg, nil
}

// Save writes the settings file, creating its directory.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// LogMaxEntries returns the configured log bound; 0 means the default.
func (c *Config) LogMaxEntries() int {
	if c.Log.MaxEntries > 0 {
		return c.Log.MaxEntries
	}
	return DefaultLogMaxEntries
}

func resolvePath(base, p string) string {
	if p == "" {
		return ""
	}
	if p == "~" || strings.HasPrefix(p, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			p = filepath.Join(home, p[1:])
		}
	}
	if !filepath.IsAbs(p) {
		p = filepath.Join(base, p)
	}
	return p
}

// internal/config/config.go
//
// This package handles configuration and the .orderbook directory structure.
// Orders themselves are never written here; the directory only carries the
// config file and the session journal.

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

const (
	// Dir is the name of the directory created in each project
	Dir = ".orderbook"

	ModeTUI     = "tui"
	ModeConsole = "console"

	defaultAccent      = "#5B8DEF"
	defaultJournalPath = Dir + "/logs/journal.log"
)

const defaultProjectConfigYAML = `# orderbook configuration
version: 1

ui:
  # tui opens the full-screen menu; console runs the numbered prompt loop.
  mode: tui
  accent: "#5B8DEF"

journal:
  enabled: true
  # Relative paths resolve against the project directory.
  path: .orderbook/logs/journal.log
`

// UIConfig captures front-end preferences.
type UIConfig struct {
	Mode   string `yaml:"mode"`
	Accent string `yaml:"accent,omitempty"`
}

// JournalConfig controls the session journal.
type JournalConfig struct {
	Enabled *bool  `yaml:"enabled,omitempty"`
	Path    string `yaml:"path,omitempty"`
}

// ProjectConfig models .orderbook/config.yaml.
type ProjectConfig struct {
	Version int           `yaml:"version"`
	UI      UIConfig      `yaml:"ui"`
	Journal JournalConfig `yaml:"journal"`
}

// EnvOverrides are read from the process environment and win over the file.
type EnvOverrides struct {
	Mode            string `env:"ORDERBOOK_MODE"`
	Accent          string `env:"ORDERBOOK_ACCENT"`
	JournalPath     string `env:"ORDERBOOK_JOURNAL_PATH"`
	JournalDisabled bool   `env:"ORDERBOOK_JOURNAL_DISABLED"`
}

// Config holds the runtime configuration.
type Config struct {
	// ProjectDir is the directory orderbook was started in
	ProjectDir string

	// ConfigDir is ProjectDir/.orderbook
	ConfigDir string

	Project ProjectConfig
}

// InitDir creates the .orderbook directory structure and a default config
// file when none exists.
//
// Structure created:
// .orderbook/
// ├── config.yaml
// └── logs/        <- session journal
func InitDir(projectDir string) error {
	root := filepath.Join(projectDir, Dir)
	for _, dir := range []string{root, filepath.Join(root, "logs")} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("config: ensure %s: %w", dir, err)
		}
	}
	return ensureProjectConfig(filepath.Join(root, "config.yaml"))
}

// Load reads the project config and applies environment overrides.
func Load(projectDir string) (*Config, error) {
	cfg := &Config{
		ProjectDir: projectDir,
		ConfigDir:  filepath.Join(projectDir, Dir),
		Project:    defaultProjectConfig(),
	}
	if err := cfg.loadProjectConfig(); err != nil {
		return nil, err
	}
	var overrides EnvOverrides
	if err := env.Parse(&overrides); err != nil {
		return nil, fmt.Errorf("config: parse env: %w", err)
	}
	if err := cfg.apply(overrides); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ProjectConfigPath returns the on-disk location for the config file.
func (c *Config) ProjectConfigPath() string {
	return filepath.Join(c.ConfigDir, "config.yaml")
}

// Mode returns the configured front-end, ModeTUI or ModeConsole.
func (c *Config) Mode() string {
	return c.Project.UI.Mode
}

// SetMode switches the front-end for this run. It is not written back.
func (c *Config) SetMode(mode string) error {
	mode = normalizeMode(mode)
	if err := validateMode(mode); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	c.Project.UI.Mode = mode
	return nil
}

// Accent returns the highlight colour used by the TUI.
func (c *Config) Accent() string {
	return c.Project.UI.Accent
}

// JournalEnabled reports whether the session journal should be written.
func (c *Config) JournalEnabled() bool {
	return c.Project.Journal.Enabled == nil || *c.Project.Journal.Enabled
}

// DisableJournal turns the journal off for this run.
func (c *Config) DisableJournal() {
	off := false
	c.Project.Journal.Enabled = &off
}

// JournalPath returns the absolute journal location.
func (c *Config) JournalPath() string {
	return c.Project.Journal.Path
}

func (c *Config) loadProjectConfig() error {
	path := c.ProjectConfigPath()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			c.Project.normalize(c.ProjectDir)
			return nil
		}
		return fmt.Errorf("config: read %s: %w", path, err)
	}

	var parsed ProjectConfig
	if err := yaml.Unmarshal(data, &parsed); err != nil {
		return fmt.Errorf("config: parse %s: %w", path, err)
	}

	parsed.applyDefaults()
	parsed.normalize(c.ProjectDir)
	if err := parsed.validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}

	c.Project = parsed
	return nil
}

func (c *Config) apply(o EnvOverrides) error {
	if o.Mode != "" {
		if err := c.SetMode(o.Mode); err != nil {
			return err
		}
	}
	if accent := strings.TrimSpace(o.Accent); accent != "" {
		c.Project.UI.Accent = accent
	}
	if o.JournalPath != "" {
		c.Project.Journal.Path = resolvePath(c.ProjectDir, o.JournalPath)
	}
	if o.JournalDisabled {
		c.DisableJournal()
	}
	return nil
}

func defaultProjectConfig() ProjectConfig {
	pc := ProjectConfig{}
	pc.applyDefaults()
	return pc
}

func (pc *ProjectConfig) applyDefaults() {
	if pc.Version == 0 {
		pc.Version = 1
	}
	if strings.TrimSpace(pc.UI.Mode) == "" {
		pc.UI.Mode = ModeTUI
	}
	if strings.TrimSpace(pc.UI.Accent) == "" {
		pc.UI.Accent = defaultAccent
	}
	if strings.TrimSpace(pc.Journal.Path) == "" {
		pc.Journal.Path = defaultJournalPath
	}
}

func (pc *ProjectConfig) normalize(base string) {
	pc.UI.Mode = normalizeMode(pc.UI.Mode)
	pc.UI.Accent = strings.TrimSpace(pc.UI.Accent)
	pc.Journal.Path = resolvePath(base, pc.Journal.Path)
}

func (pc *ProjectConfig) validate() error {
	if pc.Version < 1 {
		return fmt.Errorf("config version must be >= 1")
	}
	if err := validateMode(pc.UI.Mode); err != nil {
		return fmt.Errorf("ui: %w", err)
	}
	return nil
}

func normalizeMode(value string) string {
	return strings.ToLower(strings.TrimSpace(value))
}

func validateMode(mode string) error {
	switch mode {
	case ModeTUI, ModeConsole:
		return nil
	default:
		return fmt.Errorf("mode must be '%s' or '%s', got %q", ModeTUI, ModeConsole, mode)
	}
}

func resolvePath(base, candidate string) string {
	trimmed := strings.TrimSpace(candidate)
	if trimmed == "" {
		return ""
	}
	if filepath.IsAbs(trimmed) {
		return filepath.Clean(trimmed)
	}
	return filepath.Clean(filepath.Join(base, trimmed))
}

func ensureProjectConfig(path string) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return os.WriteFile(path, []byte(defaultProjectConfigYAML), 0o644)
}

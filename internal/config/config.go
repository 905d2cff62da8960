package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/pelletier/go-toml/v2"
)

// FileName is the config file name inside the scooper config directory
const FileName = "config.toml"

// ErrNotFound is returned by LoadFromPath when the file does not exist
var ErrNotFound = errors.New("config file not found")

// Config represents the application configuration
type Config struct {
	Version  int           `toml:"version"`
	ScoopDir string        `toml:"scoop_dir"`
	UI       UISettings    `toml:"ui"`
	Watch    WatchSettings `toml:"watch"`
}

// UISettings represents UI-related configuration
type UISettings struct {
	SelectorWidth    int     `toml:"selector_width"`
	QueryMinWidth    int     `toml:"query_min_width"`
	QueryWidthRatio  float64 `toml:"query_width_ratio"` // share of the panel width given to the query field
	SearchLabel      string  `toml:"search_label"`
	ShowDescriptions bool    `toml:"show_descriptions"`
}

// WatchSettings controls reloading when buckets change on disk
type WatchSettings struct {
	Enabled    bool `toml:"enabled"`
	DebounceMS int  `toml:"debounce_ms"`
}

// Debounce returns the watcher debounce as a duration
func (w WatchSettings) Debounce() time.Duration {
	return time.Duration(w.DebounceMS) * time.Millisecond
}

// ConfigService handles configuration management
type ConfigService interface {
	Load() (*Config, error)
	Save(config *Config) error
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
	Path() string
}

// configService is the concrete implementation
type configService struct {
	filePath string
}

// NewConfigService creates a config service rooted in the user config directory
func NewConfigService() ConfigService {
	configDir, err := os.UserConfigDir()
	if err != nil {
		// Fallback to home directory
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}

	return &configService{
		filePath: filepath.Join(configDir, "scooper", FileName),
	}
}

// NewConfigServiceAt creates a config service bound to an explicit file
func NewConfigServiceAt(path string) ConfigService {
	return &configService{filePath: path}
}

func (cs *configService) Path() string {
	return cs.filePath
}

// Load loads the configuration, returning defaults when no file exists yet
func (cs *configService) Load() (*Config, error) {
	cfg, err := cs.LoadFromPath(cs.filePath)
	if errors.Is(err, ErrNotFound) {
		return DefaultConfig(), nil
	}
	return cfg, err
}

// Save saves the configuration to the service's file
func (cs *configService) Save(config *Config) error {
	return cs.SaveToPath(config, cs.filePath)
}

// LoadFromPath loads configuration from a specific path.
// Keys missing from the file keep their default values.
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	cfg.normalize()

	return cfg, nil
}

// SaveToPath saves configuration to a specific path
func (cs *configService) SaveToPath(config *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version: 1,
		UI: UISettings{
			SelectorWidth:    16,
			QueryMinWidth:    20,
			QueryWidthRatio:  0.4,
			SearchLabel:      "Search",
			ShowDescriptions: true,
		},
		Watch: WatchSettings{
			Enabled:    true,
			DebounceMS: 300,
		},
	}
}

// DefaultScoopDir resolves the scoop root the same way scoop does: $SCOOP, then ~/scoop
func DefaultScoopDir() string {
	if dir := os.Getenv("SCOOP"); dir != "" {
		return dir
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = "."
	}
	return filepath.Join(homeDir, "scoop")
}

// normalize replaces out-of-range values with defaults
func (c *Config) normalize() {
	def := DefaultConfig()
	if c.UI.SelectorWidth <= 0 {
		c.UI.SelectorWidth = def.UI.SelectorWidth
	}
	if c.UI.QueryMinWidth <= 0 {
		c.UI.QueryMinWidth = def.UI.QueryMinWidth
	}
	if c.UI.QueryWidthRatio <= 0 || c.UI.QueryWidthRatio > 1 {
		c.UI.QueryWidthRatio = def.UI.QueryWidthRatio
	}
	if c.UI.SearchLabel == "" {
		c.UI.SearchLabel = def.UI.SearchLabel
	}
	if c.Watch.DebounceMS < 0 {
		c.Watch.DebounceMS = def.Watch.DebounceMS
	}
}

// ResolvedScoopDir returns the configured scoop root, or DefaultScoopDir when unset
func (c *Config) ResolvedScoopDir() string {
	if c.ScoopDir != "" {
		return c.ScoopDir
	}
	return DefaultScoopDir()
}

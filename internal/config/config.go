package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"puppetgallery/internal/domain"
)

// FileName is the default config file name
const FileName = "puppetgallery.toml"

// Config represents the application configuration
type Config struct {
	Version  int              `toml:"version"`
	Source   string           `toml:"source"` // gallery page (.html) or manifest (.yaml)
	Gallery  GallerySettings  `toml:"gallery"`
	Search   SearchSettings   `toml:"search"`
	Lightbox LightboxSettings `toml:"lightbox"`
	View     ViewSettings     `toml:"view"`
	Lazy     LazySettings     `toml:"lazy"`
	Log      LogSettings      `toml:"log"`
}

// GallerySettings controls the initial gallery state
type GallerySettings struct {
	DefaultView string   `toml:"default_view"`
	Categories  []string `toml:"categories,omitempty"` // overrides the categories found in the source
}

// SearchSettings controls the search box
type SearchSettings struct {
	DebounceMS int `toml:"debounce_ms"`
}

// LightboxSettings controls lightbox gestures
type LightboxSettings struct {
	SwipeThreshold int `toml:"swipe_threshold"` // terminal cells
}

// ViewSettings controls the responsive layout override
type ViewSettings struct {
	MobileBreakpoint int `toml:"mobile_breakpoint"` // terminal columns
}

// LazySettings controls lazy media resolution
type LazySettings struct {
	RootMargin int `toml:"root_margin"` // rows beyond the viewport
}

// LogSettings controls logging
type LogSettings struct {
	Level  string `toml:"level"`
	File   string `toml:"file"`
	Format string `toml:"format"`
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
		filePath: filepath.Join(configDir, "puppetgallery", FileName),
	}
}

// NewConfigServiceAt creates a config service for an explicit file
func NewConfigServiceAt(path string) ConfigService {
	return &configService{filePath: path}
}

// Path returns the file the service loads from and saves to
func (cs *configService) Path() string {
	return cs.filePath
}

// Load loads the configuration, returning defaults when the file is missing
func (cs *configService) Load() (*Config, error) {
	cfg, err := cs.LoadFromPath(cs.filePath)
	if errors.Is(err, os.ErrNotExist) {
		return DefaultConfig(), nil
	}
	return cfg, err
}

// Save saves the configuration to file
func (cs *configService) Save(config *Config) error {
	return cs.SaveToPath(config, cs.filePath)
}

// LoadFromPath loads configuration from a specific path
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Start from defaults so omitted keys keep sensible values
	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	cfg.Normalize()
	return cfg, nil
}

// SaveToPath saves configuration to a specific path
func (cs *configService) SaveToPath(config *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version: 1,
		Gallery: GallerySettings{
			DefaultView: string(domain.ViewGrid),
		},
		Search:   SearchSettings{DebounceMS: 300},
		Lightbox: LightboxSettings{SwipeThreshold: 6},
		View:     ViewSettings{MobileBreakpoint: 80},
		Lazy:     LazySettings{RootMargin: 2},
		Log: LogSettings{
			Level:  "info",
			File:   "puppetgallery.log",
			Format: "json",
		},
	}
}

// Normalize replaces out-of-range values with defaults
func (c *Config) Normalize() {
	def := DefaultConfig()
	if !domain.ViewMode(c.Gallery.DefaultView).Valid() {
		c.Gallery.DefaultView = def.Gallery.DefaultView
	}
	if c.Search.DebounceMS < 0 {
		c.Search.DebounceMS = def.Search.DebounceMS
	}
	if c.Lightbox.SwipeThreshold <= 0 {
		c.Lightbox.SwipeThreshold = def.Lightbox.SwipeThreshold
	}
	if c.View.MobileBreakpoint < 0 {
		c.View.MobileBreakpoint = def.View.MobileBreakpoint
	}
	if c.Lazy.RootMargin < 0 {
		c.Lazy.RootMargin = def.Lazy.RootMargin
	}
	if c.Log.Level == "" {
		c.Log.Level = def.Log.Level
	}
}

// ApplyEnv overrides settings from PUPPETGALLERY_* environment variables
func (c *Config) ApplyEnv() {
	if v := strings.TrimSpace(os.Getenv("PUPPETGALLERY_SOURCE")); v != "" {
		c.Source = v
	}
	if v := strings.TrimSpace(os.Getenv("PUPPETGALLERY_LOG_LEVEL")); v != "" {
		c.Log.Level = v
	}
	if v := strings.TrimSpace(os.Getenv("PUPPETGALLERY_LOG_FILE")); v != "" {
		c.Log.File = v
	}
}

// CategoryList returns the configured category override
func (c *Config) CategoryList() []domain.Category {
	if len(c.Gallery.Categories) == 0 {
		return nil
	}
	out := make([]domain.Category, 0, len(c.Gallery.Categories))
	for _, name := range c.Gallery.Categories {
		if name = strings.TrimSpace(name); name != "" && domain.Category(name) != domain.CategoryAll {
			out = append(out, domain.Category(name))
		}
	}
	return out
}

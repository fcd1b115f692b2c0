package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"termviz/internal/events"
)

// Event names published by the config service.
const (
	EventLoaded = "config:loaded"
	EventSaved  = "config:saved"
)

// LoadedEvent is the payload of config:loaded.
type LoadedEvent struct {
	Config *Config
	Path   string
}

// SavedEvent is the payload of config:saved.
type SavedEvent struct {
	Path string
}

// Config represents the application configuration.
type Config struct {
	Version       int          `toml:"version"`
	SelectionMode string       `toml:"selection_mode"` // "single" or "multiple"
	UI            UISettings   `toml:"ui"`
	Series        []SeriesSpec `toml:"series"`
}

// UISettings holds dashboard-related settings.
type UISettings struct {
	ShowEventLog bool `toml:"show_event_log"`
	ShowLegend   bool `toml:"show_legend"`
	LogLines     int  `toml:"log_lines"`
}

// SeriesSpec describes one synthetic series to generate at startup.
type SeriesSpec struct {
	Name   string  `toml:"name"`
	Unit   string  `toml:"unit"`
	Seed   int64   `toml:"seed"`
	Start  float64 `toml:"start"`
	Step   float64 `toml:"step"`
	Points int     `toml:"points"`
}

// Service handles configuration management.
type Service interface {
	Load() (*Config, error)
	Save(config *Config) error
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
}

type service struct {
	bus      events.Observable
	filePath string
}

// NewService creates a config service rooted at the user config directory.
func NewService() Service {
	configDir, err := os.UserConfigDir()
	if err != nil {
		// Fallback to home directory
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}

	dir := filepath.Join(configDir, "termviz")
	os.MkdirAll(dir, 0755)

	return &service{filePath: filepath.Join(dir, "config.toml")}
}

// NewServiceWithBus creates a config service that publishes load and save
// events on the given bus.
func NewServiceWithBus(bus events.Observable) Service {
	s := NewService().(*service)
	s.bus = bus
	return s
}

// Load reads the configuration file, returning defaults when no file
// exists yet.
func (s *service) Load() (*Config, error) {
	if _, err := os.Stat(s.filePath); os.IsNotExist(err) {
		cfg := DefaultConfig()
		s.publishLoaded(cfg)
		return cfg, nil
	}

	cfg, err := s.LoadFromPath(s.filePath)
	if err != nil {
		return nil, err
	}
	s.publishLoaded(cfg)
	return cfg, nil
}

// Save writes the configuration to the service's file.
func (s *service) Save(config *Config) error {
	if err := s.SaveToPath(config, s.filePath); err != nil {
		return err
	}
	if s.bus != nil {
		s.bus.Trigger(EventSaved, SavedEvent{Path: s.filePath})
	}
	return nil
}

// LoadFromPath loads configuration from a specific path.
func (s *service) LoadFromPath(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file not found: %s", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	normalize(&cfg)

	return &cfg, nil
}

// SaveToPath saves configuration to a specific path.
func (s *service) SaveToPath(config *Config, path string) error {
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

func (s *service) publishLoaded(cfg *Config) {
	if s.bus != nil {
		s.bus.Trigger(EventLoaded, LoadedEvent{Config: cfg, Path: s.filePath})
	}
}

// normalize fills in usable values for fields the file left at zero.
func normalize(cfg *Config) {
	if cfg.SelectionMode == "" {
		cfg.SelectionMode = "multiple"
	}
	if cfg.UI.LogLines <= 0 {
		cfg.UI.LogLines = 6
	}
	for i := range cfg.Series {
		if cfg.Series[i].Points <= 0 {
			cfg.Series[i].Points = 60
		}
		if cfg.Series[i].Step == 0 {
			cfg.Series[i].Step = 1
		}
	}
}

// DefaultConfig returns the default configuration, including a demo set
// of series so a fresh install has something to render.
func DefaultConfig() *Config {
	return &Config{
		Version:       1,
		SelectionMode: "multiple",
		UI: UISettings{
			ShowEventLog: true,
			ShowLegend:   true,
			LogLines:     6,
		},
		Series: []SeriesSpec{
			{Name: "cpu", Unit: "%", Seed: 11, Start: 35, Step: 4, Points: 60},
			{Name: "mem", Unit: "MiB", Seed: 23, Start: 512, Step: 12, Points: 60},
			{Name: "net", Unit: "KiB/s", Seed: 47, Start: 80, Step: 9, Points: 60},
			{Name: "disk", Unit: "IOPS", Seed: 83, Start: 140, Step: 15, Points: 60},
		},
	}
}

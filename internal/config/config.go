// Package config loads the optional LifeQuest settings file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.yaml.in/yaml/v3"
)

// FileName is looked up under the user's home directory.
const FileName = ".lifequest.yaml"

const (
	DefaultWeekStart    = "monday"
	DefaultNotifyWindow = "5m"
)

// ErrInvalid marks configuration validation failures.
var ErrInvalid = errors.New("invalid config")

// Config holds the few knobs the tracker exposes. Day and week
// boundaries are always local time; week_start makes the weekly
// recurrence bucket explicit instead of hard-coding Monday.
type Config struct {
	WeekStart    string `yaml:"week_start"`
	NotifyWindow string `yaml:"notify_window"`
	DBPath       string `yaml:"db_path,omitempty"`
}

// NewDefault returns the built-in configuration.
func NewDefault() *Config {
	return &Config{
		WeekStart:    DefaultWeekStart,
		NotifyWindow: DefaultNotifyWindow,
	}
}

// Load reads the config from the home directory, falling back to
// defaults when the file does not exist.
func Load() (*Config, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("get home dir: %w", err)
	}
	return LoadFrom(filepath.Join(homeDir, FileName))
}

// LoadFrom reads and validates the config at the given path.
func LoadFrom(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return NewDefault(), nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	cfg := NewDefault()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the config for errors.
func (c *Config) Validate() error {
	if _, err := c.WeekStartDay(); err != nil {
		return err
	}
	if _, err := c.NotifyWindowDuration(); err != nil {
		return err
	}
	return nil
}

// WeekStartDay maps week_start to a weekday.
func (c *Config) WeekStartDay() (time.Weekday, error) {
	switch strings.ToLower(strings.TrimSpace(c.WeekStart)) {
	case "", "monday":
		return time.Monday, nil
	case "sunday":
		return time.Sunday, nil
	default:
		return time.Monday, fmt.Errorf("%w: week_start must be monday or sunday, got %q", ErrInvalid, c.WeekStart)
	}
}

// NotifyWindowDuration parses the due-soon lookahead window.
func (c *Config) NotifyWindowDuration() (time.Duration, error) {
	s := strings.TrimSpace(c.NotifyWindow)
	if s == "" {
		s = DefaultNotifyWindow
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, fmt.Errorf("%w: notify_window %q: %v", ErrInvalid, c.NotifyWindow, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("%w: notify_window must be positive, got %q", ErrInvalid, c.NotifyWindow)
	}
	return d, nil
}

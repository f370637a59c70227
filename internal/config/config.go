// Package config loads the demo's YAML configuration.
package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"timepiece/timekit"
)

// ICSSource points at one iCalendar file feeding the heatmap.
type ICSSource struct {
	// Path is a local .ics file.
	Path string `yaml:"path"`
	// Name is a human-friendly label.
	Name string `yaml:"name"`
}

// Config is the top-level demo configuration.
type Config struct {
	// Timezone is the IANA zone used to bucket events into days.
	Timezone string `yaml:"timezone"`

	// WeekStart is "monday" or "sunday" and controls calendar layouts.
	WeekStart string `yaml:"week_start"`

	// Year is the heatmap's initial year; zero means the current year.
	Year int `yaml:"year"`

	// LogFile receives the demo's structured log.
	LogFile string `yaml:"log_file"`

	// ICS lists the calendar files to load.
	ICS []ICSSource `yaml:"ics"`
}

// Default returns the in-memory default configuration.
func Default() *Config {
	return &Config{
		Timezone:  "Local",
		WeekStart: "monday",
		LogFile:   "timepiece.log",
		ICS:       []ICSSource{},
	}
}

// Normalize fills missing fields so partially written configs still work.
func (c *Config) Normalize() {
	if c.Timezone == "" {
		c.Timezone = "Local"
	}
	switch c.WeekStart {
	case "monday", "sunday":
	default:
		c.WeekStart = "monday"
	}
	if c.Year == 0 {
		c.Year = time.Now().Year()
	}
	if c.Year < timekit.MinYear {
		c.Year = timekit.MinYear
	}
	if c.Year > timekit.MaxYear {
		c.Year = timekit.MaxYear
	}
	if c.LogFile == "" {
		c.LogFile = "timepiece.log"
	}
	if c.ICS == nil {
		c.ICS = []ICSSource{}
	}
}

// WeekStartDay maps the configured week start onto a weekday.
func (c *Config) WeekStartDay() time.Weekday {
	if c.WeekStart == "sunday" {
		return time.Sunday
	}
	return time.Monday
}

// Location resolves the configured timezone.
func (c *Config) Location() (*time.Location, error) {
	if c.Timezone == "" || c.Timezone == "Local" {
		return time.Local, nil
	}
	return time.LoadLocation(c.Timezone)
}

// Load reads the YAML config at path. A missing file yields the defaults;
// any other read or parse failure is an error.
func Load(path string) (*Config, error) {
	if path == "" {
		return nil, errors.New("config path is empty")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			cfg := Default()
			cfg.Normalize()
			return cfg, nil
		}
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	cfg.Normalize()
	return &cfg, nil
}

// Save writes the config atomically with 0600 permissions.
func Save(path string, cfg *Config) error {
	if path == "" {
		return errors.New("config path is empty")
	}
	if cfg == nil {
		return errors.New("config is nil")
	}
	cfg.Normalize()

	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return err
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}

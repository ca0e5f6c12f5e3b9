// Package config loads the configuration of the tcal tool.
//
// Values come, by increasing priority, from the defaults, an optional TOML file,
// and TRADECAL_* environment variables (a .env file in the working directory is loaded first).
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/etnz/tradecal"
	"github.com/etnz/tradecal/storage"
	"github.com/joho/godotenv"
	toml "github.com/pelletier/go-toml/v2"
)

// DefaultFile is the configuration file read when none is given explicitly.
const DefaultFile = "tcal.toml"

// Config holds all configuration for tcal
type Config struct {
	Calendar CalendarConfig `toml:"calendar"`
	Storage  StorageConfig  `toml:"storage"`
	Logging  LoggingConfig  `toml:"logging"`
}

// CalendarConfig describes the trading year.
type CalendarConfig struct {
	Year        int                      `toml:"year"`
	Currency    string                   `toml:"currency"`
	Underlyings []string                 `toml:"underlyings"`
	Holidays    []tradecal.MarketHoliday `toml:"holidays"`
}

// StorageConfig selects where the calendar is saved between runs.
type StorageConfig struct {
	Backend string `toml:"backend"` // file or sqlite
	Path    string `toml:"path"`    // defaults depend on the backend
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level  string `toml:"level"`
	Pretty bool   `toml:"pretty"`
}

// NewDefaultConfig returns the configuration for the 2025 calendar saved in a CSV file.
func NewDefaultConfig() *Config {
	return &Config{
		Calendar: CalendarConfig{
			Year:        2025,
			Currency:    tradecal.DefaultCurrency,
			Underlyings: slices.Clone(tradecal.Underlyings),
			Holidays:    slices.Clone(tradecal.Holidays2025),
		},
		Storage: StorageConfig{Backend: storage.KindFile},
		Logging: LoggingConfig{Level: "info", Pretty: true},
	}
}

// Load reads the configuration.
//
// If 'path' is empty, TRADECAL_CONFIG is used, then DefaultFile if it exists.
// A file given explicitly must exist.
func Load(path string) (*Config, error) {
	// Load .env file if it exists
	_ = godotenv.Load()

	cfg := NewDefaultConfig()

	explicit := path != ""
	if !explicit {
		path = os.Getenv("TRADECAL_CONFIG")
		explicit = path != ""
	}
	if path == "" {
		path = DefaultFile
	}

	// without a configuration file, defaults apply.
	if err := cfg.readFile(path); err != nil && (explicit || !errors.Is(err, fs.ErrNotExist)) {
		return nil, err
	}

	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return cfg, nil
}

func (c *Config) readFile(path string) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading config %q: %w", path, err)
	}
	// lists in the file replace the defaults instead of extending them.
	underlyings, holidays := c.Calendar.Underlyings, c.Calendar.Holidays
	c.Calendar.Underlyings, c.Calendar.Holidays = nil, nil
	if err := toml.Unmarshal(content, c); err != nil {
		return fmt.Errorf("parsing config %q: %w", path, err)
	}
	if c.Calendar.Underlyings == nil {
		c.Calendar.Underlyings = underlyings
	}
	if c.Calendar.Holidays == nil {
		c.Calendar.Holidays = holidays
	}
	return nil
}

// applyEnvOverrides overrides values with TRADECAL_* environment variables.
func applyEnvOverrides(c *Config) {
	if v := os.Getenv("TRADECAL_YEAR"); v != "" {
		if year, err := strconv.Atoi(v); err == nil {
			c.Calendar.Year = year
		}
	}
	if v := os.Getenv("TRADECAL_BACKEND"); v != "" {
		c.Storage.Backend = v
	}
	if v := os.Getenv("TRADECAL_DATA"); v != "" {
		c.Storage.Path = v
	}
	if v := os.Getenv("TRADECAL_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
}

// Validate checks the configuration and returns all the problems found.
func (c *Config) Validate() error {
	var problems []string

	if c.Calendar.Year < 1 || c.Calendar.Year > 9999 {
		problems = append(problems, fmt.Sprintf("invalid calendar year %d", c.Calendar.Year))
	}
	if c.Calendar.Currency == "" {
		problems = append(problems, "currency cannot be empty")
	}
	for _, h := range c.Calendar.Holidays {
		if h.Date.IsZero() {
			problems = append(problems, fmt.Sprintf("holiday %q has no date", h.Name))
		}
	}
	for _, u := range c.Calendar.Underlyings {
		if strings.ContainsAny(u, ",\n") {
			problems = append(problems, fmt.Sprintf("invalid underlying %q: commas and line breaks are not allowed", u))
		}
	}
	if !slices.Contains(storage.Kinds, c.Storage.Backend) {
		problems = append(problems, fmt.Sprintf("invalid storage backend %q: must be one of %v", c.Storage.Backend, storage.Kinds))
	}

	if len(problems) > 0 {
		return errors.New(strings.Join(problems, "; "))
	}
	return nil
}

// NewCalendar returns the trading calendar described by the configuration.
func (c *Config) NewCalendar() *tradecal.Calendar {
	return tradecal.NewCalendar(c.Calendar.Year, c.Calendar.Holidays)
}

// StoragePath returns the storage path, or the backend default if it is not set.
func (c *Config) StoragePath() string {
	if c.Storage.Path != "" {
		return c.Storage.Path
	}
	if c.Storage.Backend == storage.KindSQLite {
		return "tcal.db"
	}
	return ExportFileName(c.Calendar.Year)
}

// ExportFileName returns the default name of the exported CSV file.
func ExportFileName(year int) string { return fmt.Sprintf("trades_tracker_%d.csv", year) }

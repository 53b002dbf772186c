// Package config provides configuration loading and management.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/zaibaitech/asrar-core/internal/domain/entities"
)

const (
	// DefaultConfigDir is the directory name for asrar configuration.
	DefaultConfigDir = ".asrar"
	// DefaultConfigFile is the default config file name.
	DefaultConfigFile = "config.yaml"
	// DefaultSnapshotFile is the default ephemeris snapshot file name.
	DefaultSnapshotFile = "positions.yaml"
)

// Config holds static configuration (read-only after init).
type Config struct {
	Location  LocationConfig  `yaml:"location,omitempty"`
	User      UserConfig      `yaml:"user,omitempty"`
	Ephemeris EphemerisConfig `yaml:"ephemeris,omitempty"`
}

// LocationConfig holds the observer's coordinates.
type LocationConfig struct {
	Name      string  `yaml:"name,omitempty"`
	Latitude  float64 `yaml:"latitude"`
	Longitude float64 `yaml:"longitude"`
}

// UserConfig holds per-user settings.
type UserConfig struct {
	// Element is the user's personal element (fire, earth, air, water).
	Element string `yaml:"element,omitempty"`
}

// EphemerisConfig holds settings for the cached position snapshot.
type EphemerisConfig struct {
	// SnapshotPath overrides the default snapshot location.
	SnapshotPath string `yaml:"snapshot_path,omitempty"`
	// SnapshotMaxAge is how long a snapshot stays usable (e.g. "24h").
	SnapshotMaxAge string `yaml:"snapshot_max_age,omitempty"`
}

// Default returns a Config with default values: Mecca, fire element, one
// day of snapshot freshness.
func Default() *Config {
	return &Config{
		Location: LocationConfig{
			Name:      "Mecca",
			Latitude:  21.4225,
			Longitude: 39.8262,
		},
		User: UserConfig{
			Element: "fire",
		},
		Ephemeris: EphemerisConfig{
			SnapshotMaxAge: "24h",
		},
	}
}

// Load loads configuration from the .asrar directory in the given path.
func Load(basePath string) (*Config, error) {
	configFile := filepath.Join(basePath, DefaultConfigDir, DefaultConfigFile)

	data, err := os.ReadFile(configFile)
	if os.IsNotExist(err) {
		return nil, fmt.Errorf("config file not found: %s (run 'asrar init' first)", configFile)
	}
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	// Start with defaults
	cfg := Default()

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	// Apply environment variable overrides
	if err := cfg.applyEnvOverrides(); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// applyEnvOverrides applies environment variable overrides.
func (c *Config) applyEnvOverrides() error {
	if lat := os.Getenv("ASRAR_LATITUDE"); lat != "" {
		v, err := strconv.ParseFloat(lat, 64)
		if err != nil {
			return fmt.Errorf("parsing ASRAR_LATITUDE: %w", err)
		}
		c.Location.Latitude = v
	}
	if lon := os.Getenv("ASRAR_LONGITUDE"); lon != "" {
		v, err := strconv.ParseFloat(lon, 64)
		if err != nil {
			return fmt.Errorf("parsing ASRAR_LONGITUDE: %w", err)
		}
		c.Location.Longitude = v
	}
	if el := os.Getenv("ASRAR_ELEMENT"); el != "" {
		c.User.Element = el
	}
	return nil
}

// Validate checks the config against the domain contracts.
func (c *Config) Validate() error {
	if c.Location.Latitude < -90 || c.Location.Latitude > 90 {
		return fmt.Errorf("latitude %v out of range [-90,90]", c.Location.Latitude)
	}
	if c.Location.Longitude < -180 || c.Location.Longitude > 180 {
		return fmt.Errorf("longitude %v out of range [-180,180]", c.Location.Longitude)
	}
	if c.User.Element != "" {
		if _, err := entities.ParseElement(c.User.Element); err != nil {
			return err
		}
	}
	if c.Ephemeris.SnapshotMaxAge != "" {
		if _, err := time.ParseDuration(c.Ephemeris.SnapshotMaxAge); err != nil {
			return fmt.Errorf("parsing snapshot_max_age: %w", err)
		}
	}
	return nil
}

// UserElement returns the configured user element.
func (c *Config) UserElement() (entities.Element, error) {
	if c.User.Element == "" {
		return entities.Fire, nil
	}
	return entities.ParseElement(c.User.Element)
}

// SnapshotMaxAge returns the configured snapshot freshness window, or zero
// when unset so the provider default applies.
func (c *Config) SnapshotMaxAge() time.Duration {
	if c.Ephemeris.SnapshotMaxAge == "" {
		return 0
	}
	d, err := time.ParseDuration(c.Ephemeris.SnapshotMaxAge)
	if err != nil {
		return 0
	}
	return d
}

// ConfigDir returns the path to the .asrar config directory.
func ConfigDir(basePath string) string {
	return filepath.Join(basePath, DefaultConfigDir)
}

// ConfigFilePath returns the path to the config file.
func ConfigFilePath(basePath string) string {
	return filepath.Join(basePath, DefaultConfigDir, DefaultConfigFile)
}

// SnapshotFilePath returns the path to the ephemeris snapshot file, taking
// any configured override into account.
func (c *Config) SnapshotFilePath(basePath string) string {
	if c.Ephemeris.SnapshotPath != "" {
		return c.Ephemeris.SnapshotPath
	}
	return filepath.Join(basePath, DefaultConfigDir, DefaultSnapshotFile)
}

// Exists checks if an asrar config exists in the given path.
func Exists(basePath string) bool {
	configFile := filepath.Join(basePath, DefaultConfigDir, DefaultConfigFile)
	_, err := os.Stat(configFile)
	return err == nil
}

// Package config provides configuration loading and management.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/ersonp/archiquiz/internal/domain/quiz"
)

const (
	// DefaultConfigDir is the directory name for archiquiz configuration.
	DefaultConfigDir = ".archiquiz"
	// DefaultConfigFile is the default config file name.
	DefaultConfigFile = "config.yaml"
	// DefaultPlayer is the player whose score is used when none is given.
	DefaultPlayer = "default"
)

var (
	// reNonAlphanumeric matches characters that aren't alphanumeric or underscore.
	reNonAlphanumeric = regexp.MustCompile(`[^a-z0-9_]`)
	// reMultipleUnderscores matches consecutive underscores.
	reMultipleUnderscores = regexp.MustCompile(`_+`)
)

// Config holds static configuration (read-only after init).
type Config struct {
	Catalog CatalogConfig `yaml:"catalog,omitempty"`
	Quiz    QuizConfig    `yaml:"quiz,omitempty"`
	Matcher MatcherConfig `yaml:"matcher,omitempty"`
	Stats   SQLiteConfig  `yaml:"stats,omitempty"`
	Log     LogConfig     `yaml:"log,omitempty"`
}

// CatalogConfig locates the building catalog.
type CatalogConfig struct {
	Path string `yaml:"path,omitempty" validate:"required"`
	// Format is json, csv, yaml or auto (by file extension).
	Format string `yaml:"format,omitempty" validate:"omitempty,oneof=auto json csv yaml"`
}

// QuizConfig holds game settings.
type QuizConfig struct {
	OptionCount int    `yaml:"option_count,omitempty" validate:"gte=2,lte=10"`
	Mode        string `yaml:"mode,omitempty" validate:"omitempty,oneof=random choice text"`
	// Seed makes question order reproducible. Zero seeds from the clock.
	Seed uint64 `yaml:"seed,omitempty"`
}

// MatcherConfig holds the tolerances of free-text judgement.
type MatcherConfig struct {
	ToleranceRatio    float64 `yaml:"tolerance_ratio,omitempty" validate:"gte=0,lte=1"`
	MinTolerance      int     `yaml:"min_tolerance,omitempty" validate:"gte=0"`
	MaxTolerance      int     `yaml:"max_tolerance,omitempty" validate:"gtefield=MinTolerance"`
	PrefixMinLength   int     `yaml:"prefix_min_length,omitempty" validate:"gte=1"`
	ContainsMinLength int     `yaml:"contains_min_length,omitempty" validate:"gte=1"`
}

// SQLiteConfig holds configuration for the SQLite score database.
type SQLiteConfig struct {
	// Path is the file path to the SQLite database.
	// When empty it is derived per player using StatsPathForPlayer.
	Path string `yaml:"path,omitempty"`
}

// LogConfig holds logger settings.
type LogConfig struct {
	// Mode is dev, prod or off.
	Mode  string `yaml:"mode,omitempty" validate:"omitempty,oneof=dev prod off"`
	Level string `yaml:"level,omitempty" validate:"omitempty,oneof=debug info warn error"`
}

// MatchOptions converts the matcher section into quiz options.
func (m MatcherConfig) MatchOptions() quiz.MatchOptions {
	return quiz.MatchOptions{
		ToleranceRatio:    m.ToleranceRatio,
		MinTolerance:      m.MinTolerance,
		MaxTolerance:      m.MaxTolerance,
		PrefixMinLength:   m.PrefixMinLength,
		ContainsMinLength: m.ContainsMinLength,
	}
}

// Default returns a Config with default values.
func Default() *Config {
	opts := quiz.DefaultMatchOptions()
	return &Config{
		Catalog: CatalogConfig{
			Path:   "data/buildings.json",
			Format: "auto",
		},
		Quiz: QuizConfig{
			OptionCount: 4,
			Mode:        "random",
		},
		Matcher: MatcherConfig{
			ToleranceRatio:    opts.ToleranceRatio,
			MinTolerance:      opts.MinTolerance,
			MaxTolerance:      opts.MaxTolerance,
			PrefixMinLength:   opts.PrefixMinLength,
			ContainsMinLength: opts.ContainsMinLength,
		},
		Log: LogConfig{
			Mode:  "dev",
			Level: "warn",
		},
	}
}

// Load loads configuration from the .archiquiz directory in the given path.
// Without a config file the defaults are used.
func Load(basePath string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(ConfigFilePath(basePath))
	switch {
	case os.IsNotExist(err):
	case err != nil:
		return nil, fmt.Errorf("reading config file: %w", err)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	cfg.applyEnvOverrides()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// applyEnvOverrides applies environment variable overrides.
func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("ARCHIQUIZ_CATALOG"); v != "" {
		c.Catalog.Path = v
	}
	if v := os.Getenv("ARCHIQUIZ_STATS_DB"); v != "" {
		c.Stats.Path = v
	}
	if v := os.Getenv("ARCHIQUIZ_LOG_LEVEL"); v != "" {
		c.Log.Level = strings.ToLower(v)
	}
}

// Validate checks the configuration for invalid values.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// ConfigDir returns the path to the .archiquiz config directory.
func ConfigDir(basePath string) string {
	return filepath.Join(basePath, DefaultConfigDir)
}

// ConfigFilePath returns the path to the config file.
func ConfigFilePath(basePath string) string {
	return filepath.Join(basePath, DefaultConfigDir, DefaultConfigFile)
}

// Exists checks if an archiquiz config exists in the given path.
func Exists(basePath string) bool {
	_, err := os.Stat(ConfigFilePath(basePath))
	return err == nil
}

// SanitizePlayerName converts a player name to a safe directory name.
func SanitizePlayerName(name string) string {
	// Convert to lowercase
	name = strings.ToLower(name)

	// Replace spaces and hyphens with underscores
	name = strings.ReplaceAll(name, " ", "_")
	name = strings.ReplaceAll(name, "-", "_")

	// Remove any characters that aren't alphanumeric or underscore
	name = reNonAlphanumeric.ReplaceAllString(name, "")

	// Remove consecutive underscores
	name = reMultipleUnderscores.ReplaceAllString(name, "_")

	// Trim leading/trailing underscores
	name = strings.Trim(name, "_")

	if name == "" {
		return DefaultPlayer
	}

	return name
}

// StatsPathForPlayer returns the SQLite score database path for a player.
func StatsPathForPlayer(basePath, player string) string {
	return filepath.Join(basePath, DefaultConfigDir, "players", SanitizePlayerName(player), "stats.db")
}

// StatsPath resolves the score database path, preferring an explicit path.
func (c *Config) StatsPath(basePath, player string) string {
	if c.Stats.Path != "" {
		return c.Stats.Path
	}
	return StatsPathForPlayer(basePath, player)
}

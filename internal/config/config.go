// SPDX-License-Identifier: MIT
// Package: lvseq/internal/config
//
// config.go - CLI configuration.
//
// Sources, lowest precedence first: built-in defaults, a TOML file
// (.lvseq.toml in the working directory or $HOME/.config/lvseq/config.toml,
// or an explicit path), LVSEQ_* environment variables. Command-line flags are
// applied by the caller on top of the returned Config.

// Package config loads and validates lvseq CLI settings.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"
	"golang.org/x/text/language"
)

// EnvPrefix is the prefix of every environment override.
const EnvPrefix = "LVSEQ"

// Key names, shared by the file, the environment and the CLI flags.
const (
	KeyFormat   = "format"
	KeyMaxSteps = "max_steps"
	KeyTimeout  = "timeout"
	KeyLogLevel = "log_level"
	KeyDB       = "db"
	KeyLocale   = "locale"
)

// Formats accepted by KeyFormat.
var Formats = []string{"text", "json", "yaml", "toml"}

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config holds the effective CLI settings.
type Config struct {
	Format   string        `mapstructure:"format"`
	MaxSteps int64         `mapstructure:"max_steps"`
	Timeout  time.Duration `mapstructure:"timeout"`
	LogLevel string        `mapstructure:"log_level"`
	DB       string        `mapstructure:"db"`
	Locale   string        `mapstructure:"locale"`
}

// Dir returns $HOME/.config/lvseq, or "." when no home directory exists.
func Dir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}

	return filepath.Join(home, ".config", "lvseq")
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Format:   "text",
		MaxSteps: 0,
		Timeout:  0,
		LogLevel: "warn",
		DB:       filepath.Join(Dir(), "runs.db"),
		Locale:   "en",
	}
}

// Load resolves the configuration. An empty path searches the default
// locations and tolerates their absence; an explicit path must exist.
func Load(path string) (Config, error) {
	v := viper.New()
	def := Default()
	v.SetDefault(KeyFormat, def.Format)
	v.SetDefault(KeyMaxSteps, def.MaxSteps)
	v.SetDefault(KeyTimeout, def.Timeout)
	v.SetDefault(KeyLogLevel, def.LogLevel)
	v.SetDefault(KeyDB, def.DB)
	v.SetDefault(KeyLocale, def.Locale)

	v.SetConfigType("toml")
	if path == "" {
		path = discover()
	}
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("config: read %s: %w", path, err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: decode: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// discover returns the first existing default config file, or "".
func discover() string {
	for _, p := range []string{".lvseq.toml", filepath.Join(Dir(), "config.toml")} {
		if info, err := os.Stat(p); err == nil && !info.IsDir() {
			return p
		}
	}

	return ""
}

// Validate checks value ranges and enumerations.
func (c Config) Validate() error {
	if !validFormat(c.Format) {
		return fmt.Errorf("%w: format %q (want one of %v)", ErrInvalidConfig, c.Format, Formats)
	}
	if c.MaxSteps < 0 {
		return fmt.Errorf("%w: max_steps must be ≥ 0, got %d", ErrInvalidConfig, c.MaxSteps)
	}
	if c.Timeout < 0 {
		return fmt.Errorf("%w: timeout must be ≥ 0, got %s", ErrInvalidConfig, c.Timeout)
	}
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: log_level %q", ErrInvalidConfig, c.LogLevel)
	}
	if !ValidLocale(c.Locale) {
		return fmt.Errorf("%w: locale %q is not a BCP 47 tag", ErrInvalidConfig, c.Locale)
	}

	return nil
}

// Level returns the parsed log level; Validate guarantees it parses.
func (c Config) Level() log.Level {
	lvl, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		return log.WarnLevel
	}

	return lvl
}

// ValidLocale reports whether tag is a well-formed, non-empty BCP 47 tag.
func ValidLocale(tag string) bool {
	if tag == "" {
		return false
	}
	_, err := language.Parse(tag)

	return err == nil
}

func validFormat(f string) bool {
	for _, ok := range Formats {
		if f == ok {
			return true
		}
	}

	return false
}

// document is the on-disk TOML shape; durations are written as strings so
// they read back through viper unchanged.
type document struct {
	Format   string `toml:"format"`
	MaxSteps int64  `toml:"max_steps"`
	Timeout  string `toml:"timeout"`
	LogLevel string `toml:"log_level"`
	DB       string `toml:"db"`
	Locale   string `toml:"locale"`
}

// TOML renders c as a config file.
func (c Config) TOML() ([]byte, error) {
	return toml.Marshal(document{
		Format:   c.Format,
		MaxSteps: c.MaxSteps,
		Timeout:  c.Timeout.String(),
		LogLevel: c.LogLevel,
		DB:       c.DB,
		Locale:   c.Locale,
	})
}

// Package config loads the application settings from a TOML file overlaid by
// ACADEMIC_* environment variables.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/toml/v2"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"academicevents/internal/domain"
)

const (
	// DefaultPath is used when neither --config nor ACADEMIC_CONFIG is set.
	DefaultPath = "academic.toml"
	EnvPrefix   = "ACADEMIC_"

	// Development defaults. Not safe outside a local machine.
	DefaultDatabaseURL      = "postgres://localhost:5432/academic_events_db"
	DefaultDatabaseUser     = "postgres"
	DefaultDatabasePassword = "password"
)

type Config struct {
	DB  Database `koanf:"db" validate:"required"`
	Log Log      `koanf:"log" validate:"required"`
	App App      `koanf:"app" validate:"required"`
}

// Database holds the connection settings read on every connection acquisition.
type Database struct {
	URL             string        `koanf:"url" validate:"required"`
	Username        string        `koanf:"username"`
	Password        string        `koanf:"password"`
	ConnectTimeout  time.Duration `koanf:"connect_timeout" validate:"gt=0"`
	ConnectAttempts int           `koanf:"connect_attempts" validate:"min=1,max=10"`
}

type Log struct {
	Level  string `koanf:"level" validate:"oneof=trace debug info warn error"`
	Format string `koanf:"format" validate:"oneof=console json"`
}

type App struct {
	Locale   string `koanf:"locale" validate:"required"`
	Timezone string `koanf:"timezone" validate:"required"`
}

// UsesDefaultCredentials reports whether the insecure development password is in use.
func (d Database) UsesDefaultCredentials() bool {
	return d.Password == DefaultDatabasePassword
}

func defaults() map[string]any {
	return map[string]any{
		"db.url":              DefaultDatabaseURL,
		"db.username":         DefaultDatabaseUser,
		"db.password":         DefaultDatabasePassword,
		"db.connect_timeout":  "5s",
		"db.connect_attempts": 3,
		"log.level":           "info",
		"log.format":          "console",
		"app.locale":          "en",
		"app.timezone":        "Local",
	}
}

// ResolvePath picks the configuration file: explicit flag, then ACADEMIC_CONFIG, then DefaultPath.
func ResolvePath(flagValue string) string {
	if strings.TrimSpace(flagValue) != "" {
		return flagValue
	}
	if p := os.Getenv(EnvPrefix + "CONFIG"); p != "" {
		return p
	}
	return DefaultPath
}

// Load reads path, applies environment overrides and validates the result.
// A missing or unreadable file yields domain.ErrConfigurationMissing; rejected values
// yield domain.ErrConfigurationInvalid.
func Load(path string) (*Config, error) {
	// .env is optional when variables come from the environment (Docker, CI, etc.).
	_ = godotenv.Load()

	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("config %q: %w", path, domain.ErrConfigurationMissing)
		}
		return nil, fmt.Errorf("config %q: %w: %v", path, domain.ErrConfigurationMissing, err)
	}

	k := koanf.New(".")
	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return nil, fmt.Errorf("config: defaults: %w: %v", domain.ErrConfigurationInvalid, err)
	}
	if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
		return nil, fmt.Errorf("config %q: %w: %v", path, domain.ErrConfigurationMissing, err)
	}
	// ACADEMIC_DB_CONNECT_TIMEOUT -> db.connect_timeout
	err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
		return strings.Replace(key, "_", ".", 1)
	}), nil)
	if err != nil {
		return nil, fmt.Errorf("config: environment: %w: %v", domain.ErrConfigurationInvalid, err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w: %v", domain.ErrConfigurationInvalid, err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// validate applies the struct tag rules and checks the database URL shape.
// Failures wrap domain.ErrConfigurationInvalid.
func (c *Config) validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("config: %w: %w", domain.ErrConfigurationInvalid, err)
	}

	parsed, err := url.Parse(c.DB.URL)
	if err != nil {
		return fmt.Errorf("config: db.url invalid (%q): %w: %w", c.DB.URL, domain.ErrConfigurationInvalid, err)
	}
	if parsed.Scheme == "" || parsed.Host == "" {
		return fmt.Errorf("config: db.url invalid (%q): %w: missing scheme or host", c.DB.URL, domain.ErrConfigurationInvalid)
	}
	return nil
}

// FileSource re-reads the database section from Path on every call.
type FileSource struct {
	Path string
}

func (s FileSource) LoadDatabase() (Database, error) {
	cfg, err := Load(s.Path)
	if err != nil {
		return Database{}, err
	}
	return cfg.DB, nil
}

// StaticSource always returns the same settings.
type StaticSource Database

func (s StaticSource) LoadDatabase() (Database, error) {
	return Database(s), nil
}

package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/ilyakaznacheev/cleanenv"
)

// DefaultPath is read when no --config flag is given and the file exists.
const DefaultPath = "config.yaml"

// Config holds all configuration for the portal.
// Values come from an optional YAML file; environment variables override it.
type Config struct {
	HTTP     HTTPConfig     `yaml:"http"`
	SQLite   SQLiteConfig   `yaml:"sqlite"`
	Log      LogConfig      `yaml:"log"`
	Seed     SeedConfig     `yaml:"seed"`
	DemoUser DemoUserConfig `yaml:"demo_user"`
}

type HTTPConfig struct {
	Addr            string `yaml:"addr" env:"APP_ADDR" env-default:":8080"`
	EnableCSRF      bool   `yaml:"enable_csrf" env:"APP_ENABLE_CSRF" env-default:"false"`
	SecureCookies   bool   `yaml:"secure_cookies" env:"APP_SECURE_COOKIES" env-default:"false"`
	ShutdownSeconds int    `yaml:"shutdown_seconds" env:"APP_SHUTDOWN_SECONDS" env-default:"2"`
	MaxUploadMB     int64  `yaml:"max_upload_mb" env:"APP_MAX_UPLOAD_MB" env-default:"10"`
}

// SQLiteConfig points the audit store at a database. The default is a
// shared-cache in-memory database that disappears with the process.
type SQLiteConfig struct {
	Path          string `yaml:"path" env:"SQLITE_PATH" env-default:"file:sampark-audit?mode=memory&cache=shared"`
	MigrationsDir string `yaml:"migrations_dir" env:"SQLITE_MIGRATIONS_DIR" env-default:""`
}

type LogConfig struct {
	Level       string `yaml:"level" env:"LOG_LEVEL" env-default:"info"`
	Development bool   `yaml:"development" env:"LOG_DEVELOPMENT" env-default:"false"`
}

// SeedConfig optionally replaces the embedded seed data.
type SeedConfig struct {
	File string `yaml:"file" env:"SEED_FILE" env-default:""`
}

// DemoUserConfig is the identity every new session is bound to.
type DemoUserConfig struct {
	FullName   string `yaml:"full_name" env:"DEMO_USER_NAME" env-default:"Admin User"`
	Email      string `yaml:"email" env:"DEMO_USER_EMAIL" env-default:"admin@sampark.gov.in"`
	Role       string `yaml:"role" env:"DEMO_USER_ROLE" env-default:"admin"`
	AgencyName string `yaml:"agency_name" env:"DEMO_USER_AGENCY" env-default:"Ministry of Social Justice"`
	StateName  string `yaml:"state_name" env:"DEMO_USER_STATE" env-default:"Delhi"`
}

// Load reads path (if it exists) and applies environment overrides.
// An empty path falls back to DefaultPath when that file is present.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	explicit := path != ""
	if !explicit {
		path = DefaultPath
	}

	if _, err := os.Stat(path); err == nil {
		if err := cleanenv.ReadConfig(path, cfg); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	} else if explicit || !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("stat config %s: %w", path, err)
	} else if err := cleanenv.ReadEnv(cfg); err != nil {
		return nil, fmt.Errorf("read config from env: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if strings.TrimSpace(c.HTTP.Addr) == "" {
		return errors.New("http.addr is required")
	}
	if strings.TrimSpace(c.SQLite.Path) == "" {
		return errors.New("sqlite.path is required")
	}
	switch c.DemoUser.Role {
	case "admin", "user":
	default:
		return fmt.Errorf("demo_user.role must be admin or user, got %q", c.DemoUser.Role)
	}
	if c.HTTP.MaxUploadMB <= 0 {
		return errors.New("http.max_upload_mb must be positive")
	}
	return nil
}

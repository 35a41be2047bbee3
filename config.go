package seo

import (
	"fmt"
	"os"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"gopkg.in/yaml.v3"
)

// Config holds the settings of the SEO module.
type Config struct {
	DatabasePath     string `yaml:"database_path"`     // Registry SQLite path (default "data/seo.db")
	SessionName      string `yaml:"session_name"`      // Host session carrying user_id (default "admin_session")
	ServerName       string `yaml:"server_name"`       // Overrides the request host for the localhost check
	AdminUserID      int64  `yaml:"admin_user_id"`     // Never tracked (default 1)
	MetricsNamespace string `yaml:"metrics_namespace"` // Prometheus namespace (default "seo")
}

func (c *Config) setDefaults() {
	if c.DatabasePath == "" {
		c.DatabasePath = "data/seo.db"
	}
	if c.SessionName == "" {
		c.SessionName = "admin_session"
	}
	if c.AdminUserID == 0 {
		c.AdminUserID = AdminUserID
	}
	if c.MetricsNamespace == "" {
		c.MetricsNamespace = "seo"
	}
}

// LoadConfig reads a YAML config file and applies SEO_* environment
// overrides. A missing file is not an error.
func LoadConfig(path string) (Config, error) {
	var cfg Config
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return Config{}, fmt.Errorf("seo: parse config %s: %w", path, err)
			}
		case !os.IsNotExist(err):
			return Config{}, fmt.Errorf("seo: read config: %w", err)
		}
	}

	cfg.DatabasePath = EnvOr("SEO_DATABASE_PATH", cfg.DatabasePath)
	cfg.SessionName = EnvOr("SEO_SESSION_NAME", cfg.SessionName)
	cfg.ServerName = EnvOr("SEO_SERVER_NAME", cfg.ServerName)
	if v := os.Getenv("SEO_ADMIN_USER_ID"); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return Config{}, fmt.Errorf("seo: SEO_ADMIN_USER_ID: %w", err)
		}
		cfg.AdminUserID = id
	}

	cfg.setDefaults()
	return cfg, nil
}

// EnvOr returns the value of the environment variable key, or fallback if empty.
func EnvOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// Option configures additional Module behavior.
type Option func(*Module)

// WithLogger sets the logger used by the hooks.
func WithLogger(l echo.Logger) Option {
	return func(m *Module) {
		m.logger = l
	}
}

// WithRegisterer registers the module metrics with r instead of a private
// registry.
func WithRegisterer(r prometheus.Registerer) Option {
	return func(m *Module) {
		m.registerer = r
	}
}

// WithRegistry sets the store consulted by the export hook.
func WithRegistry(r RegistryFinder) Option {
	return func(m *Module) {
		m.registry = r
	}
}

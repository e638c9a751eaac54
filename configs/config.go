package configs

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"
)

// FileConfig defines the structure loaded from the YAML configuration
// file. Connection settings live here so a deployment can pin a sandbox or
// custom domain without touching the environment.
type FileConfig struct {
	InstanceURL string `yaml:"instance_url,omitempty"`
	IDToken     string `yaml:"id_token,omitempty"`
}

// Config holds the final application configuration, merged from file and
// environment variables. Fields are loaded from environment variables with
// the prefix "SFBRIDGE_", overriding file settings.
type Config struct {
	// Config file path (loaded first from env). Empty means no file.
	ConfigFilePath string `envconfig:"CONFIG_FILE"`

	// Salesforce connection. InstanceURL and IDToken may instead arrive
	// per-call in the parameter bag; AccessToken feeds the fallback token
	// source.
	InstanceURL string `envconfig:"INSTANCE_URL"`
	IDToken     string `envconfig:"ID_TOKEN"`
	AccessToken string `envconfig:"ACCESS_TOKEN"`

	ListenAddr               string        `envconfig:"LISTEN_ADDR" default:":8080"`
	AdminAddr                string        `envconfig:"ADMIN_ADDR" default:":8081"`
	HTTPClientTimeout        time.Duration `envconfig:"HTTP_CLIENT_TIMEOUT" default:"30s"`
	ShutdownTimeout          time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"5s"`
	OtelExporterOtlpEndpoint string        `envconfig:"OTEL_EXPORTER_OTLP_ENDPOINT"`
	OtelExporterOtlpInsecure bool          `envconfig:"OTEL_EXPORTER_OTLP_INSECURE" default:"true"`
	LogLevel                 string        `envconfig:"LOG_LEVEL" default:"info"`
}

// ParsedLogLevel returns the slog.Level for the configured LogLevel string.
func (c *Config) ParsedLogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	case "info":
		fallthrough
	default:
		return slog.LevelInfo
	}
}

// Load loads configuration first from environment variables (to get the
// file path), then from the YAML file if one is named, and finally applies
// environment variables again so they win over file settings.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("sfbridge", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process environment variables: %w", err)
	}

	if cfg.ConfigFilePath != "" {
		raw, err := os.ReadFile(cfg.ConfigFilePath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %q: %w", cfg.ConfigFilePath, err)
		}
		var fileCfg FileConfig
		if err := yaml.Unmarshal(raw, &fileCfg); err != nil {
			return nil, fmt.Errorf("failed to unmarshal config file %q: %w", cfg.ConfigFilePath, err)
		}
		if fileCfg.InstanceURL != "" {
			cfg.InstanceURL = fileCfg.InstanceURL
		}
		if fileCfg.IDToken != "" {
			cfg.IDToken = fileCfg.IDToken
		}

		// Environment wins over the file.
		if err := envconfig.Process("sfbridge", &cfg); err != nil {
			return nil, fmt.Errorf("failed to process overriding environment variables: %w", err)
		}
	}

	return &cfg, nil
}

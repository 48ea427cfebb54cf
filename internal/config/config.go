// Package config holds the itemstore application configuration.
package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
)

// Config is the complete itemstore configuration.
type Config struct {
	Catalog   CatalogConfig   `mapstructure:"catalog"`
	Feedback  FeedbackConfig  `mapstructure:"feedback"`
	Log       LogConfig       `mapstructure:"log"`
	Telemetry TelemetryConfig `mapstructure:"telemetry"`
}

// CatalogConfig controls where the catalog document comes from.
type CatalogConfig struct {
	// Source is a local path or an http(s) URL.
	Source string `mapstructure:"source"`
	// Watch reloads a local source when it changes on disk.
	Watch bool `mapstructure:"watch"`
	// Timeout bounds an HTTP fetch.
	Timeout time.Duration `mapstructure:"timeout"`
}

// FeedbackConfig controls feedback submission.
type FeedbackConfig struct {
	// Webhook overrides the document's webhook URL when set.
	Webhook string        `mapstructure:"webhook"`
	Timeout time.Duration `mapstructure:"timeout"`
}

// LogConfig controls the log file.
type LogConfig struct {
	// File is the log path; empty disables logging.
	File  string `mapstructure:"file"`
	Level string `mapstructure:"level"`
}

// TelemetryConfig controls trace export.
type TelemetryConfig struct {
	// Endpoint is an OTLP/HTTP host:port; empty disables export.
	Endpoint    string `mapstructure:"endpoint"`
	ServiceName string `mapstructure:"service_name"`
}

// Default returns the configuration used when nothing is set.
func Default() *Config {
	return &Config{
		Catalog: CatalogConfig{
			Source:  "data.json",
			Timeout: 10 * time.Second,
		},
		Feedback: FeedbackConfig{
			Timeout: 10 * time.Second,
		},
		Log: LogConfig{
			File:  "itemstore.log",
			Level: "info",
		},
		Telemetry: TelemetryConfig{
			ServiceName: "itemstore",
		},
	}
}

// SetDefaults registers Default() values on v.
func SetDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault("catalog.source", d.Catalog.Source)
	v.SetDefault("catalog.watch", d.Catalog.Watch)
	v.SetDefault("catalog.timeout", d.Catalog.Timeout)
	v.SetDefault("feedback.webhook", d.Feedback.Webhook)
	v.SetDefault("feedback.timeout", d.Feedback.Timeout)
	v.SetDefault("log.file", d.Log.File)
	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("telemetry.endpoint", d.Telemetry.Endpoint)
	v.SetDefault("telemetry.service_name", d.Telemetry.ServiceName)
}

// Load unmarshals v into a Config and validates it.
func Load(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	if errs := cfg.Validate(); len(errs) > 0 {
		return nil, ValidationErrors(errs)
	}
	return &cfg, nil
}

// ConfigDir returns the user's itemstore config directory.
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "itemstore")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".itemstore"
	}
	return filepath.Join(home, ".config", "itemstore")
}

// ConfigFile returns the default config file path.
func ConfigFile() string {
	return filepath.Join(ConfigDir(), "config.yaml")
}

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/solidmcp/solidmcp/pkg/logger"
)

// Config holds the command server settings. Values come from defaults, then
// an optional JSON config file, then environment variables, in that order of
// precedence.
type Config struct {
	Host           string `json:"host" env:"SOLIDMCP_HOST"`
	Port           int    `json:"port" env:"SOLIDMCP_PORT"`
	PollIntervalMS int    `json:"pollIntervalMs" env:"SOLIDMCP_POLL_INTERVAL_MS"`
	ExportDir      string `json:"exportDir" env:"SOLIDMCP_EXPORT_DIR"`
	Log            Log    `json:"log"`
}

// Log is the request-log configuration.
type Log struct {
	Level string `json:"level" env:"SOLIDMCP_LOG_LEVEL"`
	File  string `json:"file" env:"SOLIDMCP_LOG_FILE"`
}

// Default returns the built-in settings: loopback on port 9876, 100 ms poll
// cadence, console-only info logging.
func Default() *Config {
	return &Config{
		Host:           "127.0.0.1",
		Port:           9876,
		PollIntervalMS: 100,
		ExportDir:      os.TempDir(),
		Log:            Log{Level: "info"},
	}
}

// Load reads the optional config file at path and applies environment
// overrides. A missing file is not an error; a malformed one is.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			if !os.IsNotExist(err) {
				return nil, fmt.Errorf("read config %s: %w", path, err)
			}
		} else if err := json.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// Addr returns the host:port listen address.
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// PollInterval returns the accept-poll cadence as a duration.
func (c *Config) PollInterval() time.Duration {
	return time.Duration(c.PollIntervalMS) * time.Millisecond
}

// CreateLogger builds the request logger from the log section.
func (c *Config) CreateLogger() (*logger.Logger, error) {
	return logger.New(logger.Config{
		Level:  logger.ParseLevel(c.Log.Level),
		Prefix: "[solidmcp] ",
		File:   c.Log.File,
	})
}

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the top-level configuration loaded from file/env.
type Config struct {
	// HTTPAddr is the listen address for the HTTP API.
	HTTPAddr string `json:"httpAddr" yaml:"httpAddr"`
	// RetentionSeconds is the inactivity window after which a room and its
	// events become eligible for the expiration sweep.
	RetentionSeconds int64 `json:"retentionSeconds" yaml:"retentionSeconds"`
	// PayloadMaxBytes bounds the serialized size of a single event payload.
	PayloadMaxBytes int `json:"payloadMaxBytes" yaml:"payloadMaxBytes"`
}

// Default returns built-in defaults.
func Default() Config {
	return Config{
		HTTPAddr:         ":8080",
		RetentionSeconds: int64((24 * time.Hour).Seconds()),
		PayloadMaxBytes:  256,
	}
}

// RetentionWindow returns the retention window as a duration.
func (c Config) RetentionWindow() time.Duration {
	return time.Duration(c.RetentionSeconds) * time.Second
}

// Load reads configuration from a JSON or YAML file (by extension). If path
// is empty, returns defaults.
func Load(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	cfg := Default()
	switch filepath.Ext(path) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(b, &cfg); err != nil {
			return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
		}
	default:
		if err := json.Unmarshal(b, &cfg); err != nil {
			return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
		}
	}
	return cfg, nil
}

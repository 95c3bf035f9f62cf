package config

import (
	"os"
	"strconv"
)

// FromEnv overlays CHECKLIST_* environment variables onto cfg.
func FromEnv(cfg *Config) {
	if v := os.Getenv("CHECKLIST_HTTP_ADDR"); v != "" {
		cfg.HTTPAddr = v
	}
	if v := os.Getenv("CHECKLIST_RETENTION_SECONDS"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil && n > 0 {
			cfg.RetentionSeconds = n
		}
	}
	if v := os.Getenv("CHECKLIST_PAYLOAD_MAX_BYTES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.PayloadMaxBytes = n
		}
	}
}

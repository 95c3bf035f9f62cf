// Package config provides loading and environment overlay for the checklist
// server configuration. It exposes a Default() baseline, file loading (JSON
// or YAML), and a CHECKLIST_* environment overlay.
//
// Example:
//
//	cfg := config.Default()
//	if fileCfg, err := config.Load("/etc/checklist.yaml"); err == nil {
//	    cfg = fileCfg
//	}
//	config.FromEnv(&cfg)
package config

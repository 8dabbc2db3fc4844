// Package config provides loading and environment overlay for the geouuid
// CLI configuration. It exposes a Default() baseline, an optional JSON file
// loader, and a GEOUUID_* environment overlay.
//
// Example:
//
//	cfg := config.Default()
//	if path := os.Getenv("GEOUUID_CONFIG"); path != "" {
//	    if fileCfg, err := config.Load(path); err == nil {
//	        cfg = fileCfg
//	    }
//	}
//	config.FromEnv(&cfg)
package config

import (
	"encoding/json"
	"os"
)

// Config is the top-level configuration loaded from file/env.
type Config struct {
	LogLevel  string `json:"logLevel"`
	LogFormat string `json:"logFormat"`
}

// Default returns built-in defaults.
func Default() Config {
	return Config{
		LogLevel:  "info",
		LogFormat: "text",
	}
}

// Load reads configuration from a JSON file. If path is empty, returns
// defaults.
func Load(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	cfg := Default()
	if err := json.Unmarshal(b, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

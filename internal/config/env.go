package config

import "os"

// FromEnv overlays GEOUUID_* environment variables onto cfg.
func FromEnv(cfg *Config) {
	if v := os.Getenv("GEOUUID_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("GEOUUID_LOG_FORMAT"); v != "" {
		cfg.LogFormat = v
	}
}

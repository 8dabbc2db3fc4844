package main

import (
	"os"

	"github.com/bitner/geotemporal-uuid/internal/cli"
	cfgpkg "github.com/bitner/geotemporal-uuid/internal/config"
	"github.com/bitner/geotemporal-uuid/pkg/geouuid"
	logpkg "github.com/bitner/geotemporal-uuid/pkg/log"
)

func main() {
	cfg := cfgpkg.Default()
	if path := os.Getenv("GEOUUID_CONFIG"); path != "" {
		if fileCfg, err := cfgpkg.Load(path); err == nil {
			cfg = fileCfg
		}
	}
	cfgpkg.FromEnv(&cfg)

	level, err := logpkg.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = logpkg.InfoLevel
	}
	var formatter logpkg.Formatter = &logpkg.TextFormatter{}
	if cfg.LogFormat == "json" {
		formatter = &logpkg.JSONFormatter{}
	}
	logger := logpkg.NewLogger(
		logpkg.WithLevel(level),
		logpkg.WithFormatter(formatter),
		logpkg.WithOutput(logpkg.NewConsoleOutput()),
	).WithComponent("cli")

	root := cli.NewRoot(geouuid.NewCodec())
	root.SilenceErrors = true
	if err := root.Execute(); err != nil {
		logger.Error("command failed", logpkg.Err(err))
		os.Exit(1)
	}
}

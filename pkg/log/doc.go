// Package log provides the structured logging facade used by the geouuid
// CLI.
//
// # Overview
//
// The package exposes a small Logger interface with leveled methods and a
// Field type for structured context. Entries flow through a pluggable
// Formatter (text or JSON) to one or more Outputs.
//
// Quick start
//
//	l := log.NewLogger(
//	    log.WithLevel(log.InfoLevel),
//	    log.WithFormatter(&log.TextFormatter{}),
//	    log.WithOutput(log.NewConsoleOutput()),
//	)
//	l = l.With(log.Component("cli"))
//	l.Info("decoded", log.Str("uuid", s), log.Float64("lat", lat))
package log

// Package log provides the structured logging facade used by the checklist
// server.
//
// The package exposes a small Logger interface with leveled methods and a
// Field type for structured context, backed by a formatter/output pipeline.
//
// Quick start
//
//	l := log.NewLogger(
//	    log.WithLevel(log.InfoLevel),
//	    log.WithFormatter(&log.TextFormatter{}),
//	    log.WithOutput(log.NewConsoleOutput()),
//	)
//	l = l.With(log.Component("server"))
//	l.Info("server started", log.Str("addr", ":8080"))
//
// Use ApplyConfig to build a logger from a declarative Config (level and
// format), typically sourced from environment variables.
//
// Room access tokens must never be passed as field values.
package log

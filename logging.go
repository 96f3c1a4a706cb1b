package main

import (
	"os"

	"github.com/charmbracelet/log"
)

// newLogger builds the process-wide logger. Level is read from
// RESOLVE_LOG_LEVEL so the CLI and any embedding script can turn up
// verbosity without a flag, the same environment-variable habit as the
// NODE_OPTIONS-style toggles in config.go.
func newLogger() *log.Logger {
	lvl := log.InfoLevel
	switch os.Getenv("RESOLVE_LOG_LEVEL") {
	case "debug":
		lvl = log.DebugLevel
	case "warn":
		lvl = log.WarnLevel
	case "error":
		lvl = log.ErrorLevel
	}
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: false,
		Level:           lvl,
	})
	return logger
}

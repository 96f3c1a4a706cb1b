package main

import (
	"encoding/json"
	"io"
	"os"
)

// watchDependencyReport is the JSON shape emitted when
// WATCH_REPORT_DEPENDENCIES is set: {"watch:require": ["/abs/path"]}, one
// line per missed resolution, matching devCommands.go's existing
// encoding/json use for structured CLI output.
type watchDependencyReport struct {
	WatchRequire []string `json:"watch:require"`
}

// stdoutWatchReporter implements resolver.WatchReporter. It is only wired
// in when the WATCH_REPORT_DEPENDENCIES env var is set; the resolver falls
// back to a NoopWatchReporter otherwise (see resolver.NoopWatchReporter).
type stdoutWatchReporter struct {
	out io.Writer
}

func newWatchReporter(out io.Writer) *stdoutWatchReporter {
	return &stdoutWatchReporter{out: out}
}

func (w *stdoutWatchReporter) ReportMissing(path string) {
	line, err := json.Marshal(watchDependencyReport{WatchRequire: []string{path}})
	if err != nil {
		return
	}
	w.out.Write(append(line, '\n'))
}

func watchReportingEnabled() bool {
	return os.Getenv("WATCH_REPORT_DEPENDENCIES") != ""
}

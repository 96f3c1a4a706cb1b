package main

import (
	"sync"

	"github.com/charmbracelet/log"
	"github.com/fatih/color"
)

// loggingDeprecationSink implements resolver.DeprecationSink, deduplicated
// by (code, pjsonPath, match), backed by a mutex-guarded set the same
// shape as a per-resolver alias cache.
type loggingDeprecationSink struct {
	logger *log.Logger

	mu   sync.Mutex
	seen map[string]bool
}

func newDeprecationSink(logger *log.Logger) *loggingDeprecationSink {
	return &loggingDeprecationSink{
		logger: logger,
		seen:   make(map[string]bool),
	}
}

func (s *loggingDeprecationSink) Emit(code, pjsonPath, match, message string) {
	key := code + "\x00" + pjsonPath + "\x00" + match

	s.mu.Lock()
	if s.seen[key] {
		s.mu.Unlock()
		return
	}
	s.seen[key] = true
	s.mu.Unlock()

	warn := color.YellowString("[%s]", code)
	s.logger.Warn(warn+" "+message, "package.json", pjsonPath)
}

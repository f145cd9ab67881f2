package setpacking

import (
	"os"
	"sync"

	"github.com/charmbracelet/log"
)

var (
	loggerOnce sync.Once
	logger     *log.Logger
)

// moduleLogger returns the process-wide logger for this package, built on
// first use. The level comes from SETPACKING_LOG_LEVEL (debug, info, warn,
// error); unset or unparsable values default to warn, which keeps the
// library silent in normal operation.
func moduleLogger() *log.Logger {
	loggerOnce.Do(func() {
		level := log.WarnLevel
		if v := os.Getenv("SETPACKING_LOG_LEVEL"); v != "" {
			if parsed, err := log.ParseLevel(v); err == nil {
				level = parsed
			}
		}
		logger = log.NewWithOptions(os.Stderr, log.Options{
			Prefix: "setpacking",
			Level:  level,
		})
	})

	return logger
}

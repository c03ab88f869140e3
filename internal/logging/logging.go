// Package logging configures the leveled logger shared by esql-check's
// packages.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/op/go-logging"
)

// EnvLevel names the environment variable that overrides the log level.
const EnvLevel = "ESQL_CHECK_LOG_LEVEL"

// DefaultLevel applies until Setup is called with another level.
const DefaultLevel = logging.WARNING

var format = logging.MustStringFormatter(
	`%{time:15:04:05.000} %{level:.4s} %{module} ▶ %{message}`,
)

func init() {
	Setup(os.Stderr, DefaultLevel)
}

// MustGetLogger returns the logger for module. Loggers obtained here write
// through the backend installed by this package, so importers never log at
// go-logging's built-in DEBUG default.
func MustGetLogger(module string) *logging.Logger {
	return logging.MustGetLogger(module)
}

// ParseLevel maps a level name (CRITICAL, ERROR, WARNING, NOTICE, INFO,
// DEBUG; case-insensitive) to a logging.Level.
func ParseLevel(name string) (logging.Level, error) {
	lvl, err := logging.LogLevel(strings.ToUpper(strings.TrimSpace(name)))
	if err != nil {
		return logging.ERROR, fmt.Errorf("invalid log level %q", name)
	}
	return lvl, nil
}

// Setup sends every module's log output to w at the given level. A level set
// in the environment takes precedence over defaultLevel.
func Setup(w io.Writer, defaultLevel logging.Level) logging.Level {
	level := defaultLevel
	if env := os.Getenv(EnvLevel); env != "" {
		if lvl, err := ParseLevel(env); err == nil {
			level = lvl
		}
	}

	backend := logging.NewLogBackend(w, "", 0)
	formatted := logging.NewBackendFormatter(backend, format)
	leveled := logging.AddModuleLevel(formatted)
	leveled.SetLevel(level, "")
	logging.SetBackend(leveled)
	return level
}

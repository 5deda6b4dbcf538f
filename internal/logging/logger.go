// Reelsift - Media Title Query Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelsift

package logging

import (
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// Config selects level, format and destination of the global logger.
type Config struct {
	// Level is one of trace, debug, info, warn, error, fatal, panic or disabled.
	// Unknown values fall back to info.
	Level string

	// Format is json (default) or console. The CLI uses console.
	Format string

	// Caller adds file:line to every entry.
	Caller bool

	// Timestamp adds a "time" field in RFC 3339.
	Timestamp bool

	// Output defaults to os.Stderr so stdout stays free for CLI results.
	Output io.Writer
}

// DefaultConfig is the configuration in effect before Init is called.
func DefaultConfig() Config {
	return Config{
		Level:     "info",
		Format:    "json",
		Timestamp: true,
		Output:    os.Stderr,
	}
}

var (
	mu  sync.RWMutex
	log zerolog.Logger
)

//nolint:gochecknoinits // logging must work before main calls Init
func init() {
	log = build(DefaultConfig())
}

// Init replaces the global logger. It may be called again to reconfigure,
// as the server does once configuration has been loaded.
func Init(cfg Config) {
	l := build(cfg)
	mu.Lock()
	log = l
	mu.Unlock()
}

func build(cfg Config) zerolog.Logger {
	if cfg.Output == nil {
		cfg.Output = os.Stderr
	}

	zerolog.SetGlobalLevel(parseLevel(cfg.Level))
	zerolog.TimeFieldFormat = time.RFC3339
	zerolog.TimestampFieldName = "time"
	zerolog.MessageFieldName = "message"

	out := cfg.Output
	if strings.EqualFold(cfg.Format, "console") {
		out = zerolog.ConsoleWriter{Out: cfg.Output, TimeFormat: "15:04:05"}
	}

	zctx := zerolog.New(out).With()
	if cfg.Timestamp {
		zctx = zctx.Timestamp()
	}
	if cfg.Caller {
		zctx = zctx.Caller()
	}
	return zctx.Logger()
}

var levels = map[string]zerolog.Level{
	"trace":    zerolog.TraceLevel,
	"debug":    zerolog.DebugLevel,
	"info":     zerolog.InfoLevel,
	"warn":     zerolog.WarnLevel,
	"warning":  zerolog.WarnLevel,
	"error":    zerolog.ErrorLevel,
	"fatal":    zerolog.FatalLevel,
	"panic":    zerolog.PanicLevel,
	"disabled": zerolog.Disabled,
}

func parseLevel(level string) zerolog.Level {
	if l, ok := levels[strings.ToLower(level)]; ok {
		return l
	}
	return zerolog.InfoLevel
}

// ValidLevel reports whether level names a known level.
func ValidLevel(level string) bool {
	_, ok := levels[strings.ToLower(level)]
	return ok
}

// Logger returns a copy of the global logger.
func Logger() zerolog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return log
}

// Debug starts a debug entry on the global logger.
func Debug() *zerolog.Event {
	mu.RLock()
	defer mu.RUnlock()
	return log.Debug()
}

// Info starts an info entry.
//
//	logging.Info().Uint64("version", snap.Version).Msg("Dataset loaded")
func Info() *zerolog.Event {
	mu.RLock()
	defer mu.RUnlock()
	return log.Info()
}

// Warn starts a warning entry.
func Warn() *zerolog.Event {
	mu.RLock()
	defer mu.RUnlock()
	return log.Warn()
}

// Error starts an error entry.
func Error() *zerolog.Event {
	mu.RLock()
	defer mu.RUnlock()
	return log.Error()
}

// Fatal starts an entry that exits the process with status 1 once sent.
// Deferred functions do not run.
func Fatal() *zerolog.Event {
	mu.RLock()
	defer mu.RUnlock()
	return log.Fatal()
}

// Reelsift - Media Title Query Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelsift

package logging

import (
	"context"
	"log/slog"

	"github.com/rs/zerolog"
)

// SlogHandler implements slog.Handler on top of zerolog, so libraries that
// take a *slog.Logger (such as sutureslog) share the global log output.
type SlogHandler struct {
	logger zerolog.Logger
	attrs  []slog.Attr
	prefix string
}

// NewSlogHandler creates a handler writing to the given zerolog logger.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func NewSlogHandler(logger zerolog.Logger) *SlogHandler {
	return &SlogHandler{logger: logger}
}

// NewSlogLogger creates an slog.Logger backed by the global zerolog logger.
//
//	slogger := logging.NewSlogLogger()
//	hook := (&sutureslog.Handler{Logger: slogger}).MustHook()
func NewSlogLogger() *slog.Logger {
	return slog.New(NewSlogHandler(Logger()))
}

// Enabled reports whether the handler handles records at the given level.
func (h *SlogHandler) Enabled(_ context.Context, level slog.Level) bool {
	zl := slogToZerologLevel(level)
	return zl >= zerolog.GlobalLevel() && zl >= h.logger.GetLevel()
}

// Handle writes the record as one zerolog event.
//
//nolint:gocritic // slog.Record is passed by value per slog.Handler interface
func (h *SlogHandler) Handle(_ context.Context, record slog.Record) error {
	event := h.logger.WithLevel(slogToZerologLevel(record.Level))
	for _, attr := range h.attrs {
		event = addAttr(event, "", attr)
	}
	record.Attrs(func(attr slog.Attr) bool {
		event = addAttr(event, h.prefix, attr)
		return true
	})
	event.Msg(record.Message)
	return nil
}

// WithAttrs returns a handler that adds attrs to every record. Keys are
// qualified with the groups open at the time of the call.
func (h *SlogHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	merged := make([]slog.Attr, 0, len(h.attrs)+len(attrs))
	merged = append(merged, h.attrs...)
	for _, a := range attrs {
		a.Key = h.prefix + a.Key
		merged = append(merged, a)
	}
	return &SlogHandler{logger: h.logger, attrs: merged, prefix: h.prefix}
}

// WithGroup returns a handler that prefixes subsequent keys with name.
func (h *SlogHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	return &SlogHandler{logger: h.logger, attrs: h.attrs, prefix: h.prefix + name + "."}
}

func addAttr(event *zerolog.Event, prefix string, attr slog.Attr) *zerolog.Event {
	attr.Value = attr.Value.Resolve()
	key := prefix + attr.Key

	switch attr.Value.Kind() {
	case slog.KindString:
		return event.Str(key, attr.Value.String())
	case slog.KindInt64:
		return event.Int64(key, attr.Value.Int64())
	case slog.KindUint64:
		return event.Uint64(key, attr.Value.Uint64())
	case slog.KindFloat64:
		return event.Float64(key, attr.Value.Float64())
	case slog.KindBool:
		return event.Bool(key, attr.Value.Bool())
	case slog.KindDuration:
		return event.Dur(key, attr.Value.Duration())
	case slog.KindTime:
		return event.Time(key, attr.Value.Time())
	case slog.KindGroup:
		groupPrefix := key + "."
		if attr.Key == "" {
			groupPrefix = prefix
		}
		for _, ga := range attr.Value.Group() {
			event = addAttr(event, groupPrefix, ga)
		}
		return event
	default:
		if err, ok := attr.Value.Any().(error); ok {
			return event.AnErr(key, err)
		}
		return event.Interface(key, attr.Value.Any())
	}
}

func slogToZerologLevel(level slog.Level) zerolog.Level {
	switch {
	case level < slog.LevelDebug:
		return zerolog.TraceLevel
	case level < slog.LevelInfo:
		return zerolog.DebugLevel
	case level < slog.LevelWarn:
		return zerolog.InfoLevel
	case level < slog.LevelError:
		return zerolog.WarnLevel
	default:
		return zerolog.ErrorLevel
	}
}

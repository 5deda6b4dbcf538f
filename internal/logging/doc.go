// Reelsift - Media Title Query Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelsift

// Package logging provides centralized zerolog-based structured logging for Reelsift.
//
// # Quick Start
//
//	import "github.com/tomtom215/reelsift/internal/logging"
//
//	// Initialize at application startup
//	logging.Init(logging.Config{
//	    Level:  "info",
//	    Format: "json",
//	})
//
//	logging.Info().Int("movies", n).Msg("Dataset loaded")
//	logging.Error().Err(err).Msg("Reload failed")
//
//	// With context (request and correlation IDs)
//	logging.Ctx(ctx).Info().Str("mood", m).Msg("Query served")
//
// # Configuration
//
// Environment Variables:
//
//	LOG_LEVEL   - Minimum log level: trace, debug, info, warn, error (default: info)
//	LOG_FORMAT  - Output format: json, console (default: json)
//	LOG_CALLER  - Include caller file:line: true, false (default: false)
//
// # Suture Integration
//
// NewSlogLogger bridges the global logger to log/slog so the supervisor tree
// can report service events through sutureslog.
//
// Always terminate log chains with .Msg() or .Send():
//
//	logging.Info().Str("key", "value").Msg("message")  // Correct
//	logging.Info().Str("key", "value")                 // WRONG - log not emitted
package logging

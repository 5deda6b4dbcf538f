// Reelsift - Media Title Query Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelsift

package logging

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

type contextKey int

const (
	requestIDKey contextKey = iota
	correlationIDKey
	datasetVersionKey
)

// GenerateRequestID returns a random UUID for a request that arrived without
// an X-Request-ID header.
func GenerateRequestID() string {
	return uuid.NewString()
}

// ContextWithRequestID stores the HTTP request ID.
func ContextWithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// RequestIDFromContext returns the stored request ID or "".
func RequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}

// ContextWithNewCorrelationID stores a short random correlation ID. Unlike
// the request ID it is never taken from the client.
func ContextWithNewCorrelationID(ctx context.Context) context.Context {
	return context.WithValue(ctx, correlationIDKey, uuid.NewString()[:8])
}

// CorrelationIDFromContext returns the stored correlation ID or "".
func CorrelationIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(correlationIDKey).(string)
	return id
}

// ContextWithDatasetVersion records which snapshot answered the request.
func ContextWithDatasetVersion(ctx context.Context, version uint64) context.Context {
	return context.WithValue(ctx, datasetVersionKey, version)
}

// Ctx returns the global logger enriched with whatever request_id,
// correlation_id and dataset_version ctx carries.
//
//	logging.Ctx(r.Context()).Debug().Int("matches", n).Msg("Titles query")
func Ctx(ctx context.Context) *zerolog.Logger {
	zctx := Logger().With()
	if id := RequestIDFromContext(ctx); id != "" {
		zctx = zctx.Str("request_id", id)
	}
	if id := CorrelationIDFromContext(ctx); id != "" {
		zctx = zctx.Str("correlation_id", id)
	}
	if v, ok := ctx.Value(datasetVersionKey).(uint64); ok {
		zctx = zctx.Uint64("dataset_version", v)
	}
	l := zctx.Logger()
	return &l
}

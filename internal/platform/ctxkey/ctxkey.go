// Copyright (c) 2026 Manara. All rights reserved.

// Package ctxkey defines the typed context keys shared between middleware
// and handlers. The unexported key type makes collisions with other
// packages' context values impossible, since [context.Context] lookups match
// on both value and type.
package ctxkey

type key string

const (
	// KeyRequestID carries the X-Request-ID correlation value.
	KeyRequestID key = "request_id"

	// KeyUser carries the authenticated [sec.AuthClaims].
	KeyUser key = "user"

	// KeyLogger carries the request-scoped [*slog.Logger].
	KeyLogger key = "logger"
)

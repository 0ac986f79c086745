// Copyright (c) 2026 Manara. All rights reserved.

/*
Package constants provides centralized, immutable values for the entire platform.

It defines default timeouts, rate limits, and cross-cutting keys that are shared
between different layers of the system.

Categories:

  - Server Timing: Read/Write/Idle timeouts for the HTTP server.
  - Rate Limiting: Burst capacities and IP tracking TTLs.
  - Security: JWT issuer, cookie configuration, upload ceilings.

Using this package ensures magic strings and magic numbers are eliminated
from the business logic.
*/
package constants

import "time"

// # Metadata

const (
	AppName    = "manara-api"
	AppVersion = "0.1.0-dev"
)

// # Server Timing

const (
	// DefaultReadTimeout is the maximum duration for reading the entire request.
	DefaultReadTimeout = 5 * time.Second

	// DefaultWriteTimeout is the maximum duration before timing out writes of the response.
	DefaultWriteTimeout = 10 * time.Second

	// DefaultIdleTimeout is the maximum amount of time to wait for the next request.
	DefaultIdleTimeout = 120 * time.Second

	// DefaultReadHeaderTimeout is the amount of time allowed to read request headers.
	DefaultReadHeaderTimeout = 2 * time.Second

	// GlobalRequestTimeout is the deadline for the entire request lifecycle.
	GlobalRequestTimeout = 30 * time.Second

	// ShutdownTimeout is how long we wait for in-flight requests to complete during shutdown.
	ShutdownTimeout = 30 * time.Second
)

// # Rate Limiting

const (
	// DefaultRateLimitRPS is the requests per second allowed per IP.
	DefaultRateLimitRPS = 100.0

	// DefaultRateLimitBurst is the maximum burst allowed for the rate limiter.
	DefaultRateLimitBurst = 150

	// RateLimitCleanupInterval is how often old IP entries are removed from memory.
	RateLimitCleanupInterval = 1 * time.Minute

	// RateLimitClientTTL is how long a client must be idle before its entry is deleted.
	RateLimitClientTTL = 3 * time.Minute
)

// # Authentication

const (
	// AuthIssuer is the standard 'iss' claim in JWTs.
	AuthIssuer = "manara.org"

	// AuthTokenTTL is the validity window of an issued access token.
	AuthTokenTTL = 24 * time.Hour

	// AuthCookieName is the cookie carrying the access token. The same token
	// is also accepted via 'Authorization: Bearer'.
	AuthCookieName = "auth_token"
)

// # Uploads

const (
	// DefaultMaxUploadBytes caps in-memory buffering of a single uploaded file.
	// Uploads are stored inline as base64, so this also bounds row size.
	DefaultMaxUploadBytes = 8 << 20 // 8 MiB

	// UploadFormField is the multipart field name carrying the image file.
	UploadFormField = "image"
)

// # Presentation

const (
	// FeaturedNewsLimit is the size of the homepage featured-news slice.
	FeaturedNewsLimit = 3

	// FeaturedNewsCacheTTL is how long the featured slice may be served from cache.
	FeaturedNewsCacheTTL = 60 * time.Second
)

// # HTTP Headers

const (
	HeaderXRequestID    = "X-Request-ID"
	HeaderXRealIP       = "X-Real-IP"
	HeaderXForwardedFor = "X-Forwarded-For"
	HeaderOrigin        = "Origin"
)

// # JSON Field Identifiers

const (
	FieldError   = "error"
	FieldCode    = "code"
	FieldMessage = "message"
	FieldStatus  = "status"
)

// # Database Schemas

const (
	SchemaContent = "content"
	SchemaUsers   = "users"
)

// # Redis Prefixes (Cache Taxonomy)

const (
	RedisPrefixFeaturedNews  = "content:news:featured"
	RedisPrefixResetAttempts = "auth:reset_attempts:"
)

// # Password Reset

const (
	// ResetAttemptLimit is the number of reset attempts allowed per address per window.
	ResetAttemptLimit = 5

	// ResetAttemptWindow is the sliding window for reset attempt throttling.
	ResetAttemptWindow = 1 * time.Hour
)

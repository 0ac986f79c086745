// Copyright (c) 2026 Manara. All rights reserved.

package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/manaracms/manara/internal/platform/apperr"
	"github.com/manaracms/manara/internal/platform/constants"
	"github.com/manaracms/manara/internal/platform/ctxutil"
	"github.com/manaracms/manara/internal/platform/respond"
	"github.com/manaracms/manara/internal/platform/sec"
)

// TokenVerifier defines the interface needed to verify tokens in middleware.
//
// # Why an interface?
//
// Defining TokenVerifier here decouples the middleware from the sec package's
// concrete TokenService, allowing mocks to be injected during unit testing.
type TokenVerifier interface {
	VerifyToken(tokenStr string) (*sec.AuthClaims, error)
}

// Authenticate extracts and verifies the access token carried by the request.
//
// # Flow
//  1. Look for the token in the auth cookie, then the Authorization header.
//  2. If absent, the request proceeds as anonymous ([RequireAuth] gates
//     protected routes).
//  3. If present, verify signature and expiry via [TokenVerifier].
//  4. Inject [*sec.AuthClaims] into the request context for downstream use.
//
// The decoded claims are trusted verbatim for the token's lifetime; no
// session store or identity record is consulted per request.
func Authenticate(verifier TokenVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {

			tokenStr, ok := extractToken(request)
			if !ok {
				next.ServeHTTP(writer, request)
				return
			}

			claims, err := verifier.VerifyToken(tokenStr)
			if err != nil {
				// A structurally valid signature with malformed identity claims
				// gets a more specific message at the same status.
				if errors.Is(err, sec.ErrClaimShape) {
					respond.Error(writer, request, apperr.Unauthorized("Invalid authentication token format"))
					return
				}
				respond.Error(writer, request, apperr.Unauthorized("Unauthorized: Invalid token"))
				return
			}

			ctx := ctxutil.WithAuthUser(request.Context(), claims)
			next.ServeHTTP(writer, request.WithContext(ctx))
		})
	}
}

// RequireAuth blocks requests that are not authenticated.
//
// # Usage
//
// Must be registered in the router AFTER [Authenticate].
func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		claims := ctxutil.GetAuthUser(request.Context())
		if claims == nil {
			respond.Error(writer, request, apperr.Unauthorized("Unauthorized: No token provided"))
			return
		}
		next.ServeHTTP(writer, request)
	})
}

// extractToken finds the access token in the auth cookie or the
// 'Authorization: Bearer' header. The cookie takes precedence, matching the
// behavior the SPA depends on.
func extractToken(request *http.Request) (string, bool) {
	if cookie, err := request.Cookie(constants.AuthCookieName); err == nil && cookie.Value != "" {
		return cookie.Value, true
	}

	authHeader := request.Header.Get("Authorization")
	if authHeader == "" {
		return "", false
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") || parts[1] == "" {
		return "", false
	}

	return parts[1], true
}

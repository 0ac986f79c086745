// Copyright (c) 2026 Manara. All rights reserved.

package middleware_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/manaracms/manara/internal/platform/constants"
	"github.com/manaracms/manara/internal/platform/ctxutil"
	"github.com/manaracms/manara/internal/platform/middleware"
	"github.com/manaracms/manara/internal/platform/sec"
)

// stubVerifier maps token strings to canned outcomes.
type stubVerifier struct {
	claims map[string]*sec.AuthClaims
	errs   map[string]error
}

func (s *stubVerifier) VerifyToken(tokenStr string) (*sec.AuthClaims, error) {
	if err, ok := s.errs[tokenStr]; ok {
		return nil, err
	}
	if claims, ok := s.claims[tokenStr]; ok {
		return claims, nil
	}
	return nil, errors.New("unknown token")
}

func decodeMessage(t *testing.T, recorder *httptest.ResponseRecorder) string {
	t.Helper()
	var body struct {
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	return body.Message
}

/*
TestAuthenticate_NoToken verifies an anonymous request is blocked at the
RequireAuth gate with the canonical message.
*/
func TestAuthenticate_NoToken(t *testing.T) {
	verifier := &stubVerifier{}
	inner := http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		writer.WriteHeader(http.StatusOK)
	})
	handler := middleware.Authenticate(verifier)(middleware.RequireAuth(inner))

	request := httptest.NewRequest(http.MethodGet, "/api/news/mine", nil)
	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	assert.Equal(t, "Unauthorized: No token provided", decodeMessage(t, recorder))
}

/*
TestAuthenticate_BearerToken verifies a valid Authorization header passes the
gate and the claims reach the handler.
*/
func TestAuthenticate_BearerToken(t *testing.T) {
	verifier := &stubVerifier{claims: map[string]*sec.AuthClaims{
		"good-token": {UserID: 7, Email: "admin@manara.org"},
	}}

	var seen *sec.AuthClaims
	inner := http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		seen = ctxutil.GetAuthUser(request.Context())
	})
	handler := middleware.Authenticate(verifier)(middleware.RequireAuth(inner))

	request := httptest.NewRequest(http.MethodGet, "/api/auth/profile", nil)
	request.Header.Set("Authorization", "Bearer good-token")
	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusOK, recorder.Code)
	require.NotNil(t, seen)
	assert.Equal(t, int64(7), seen.UserID)
	assert.Equal(t, "admin@manara.org", seen.Email)
}

/*
TestAuthenticate_CookiePrecedence verifies the auth cookie wins over a
conflicting Authorization header.
*/
func TestAuthenticate_CookiePrecedence(t *testing.T) {
	verifier := &stubVerifier{claims: map[string]*sec.AuthClaims{
		"cookie-token": {UserID: 1, Email: "cookie@manara.org"},
		"header-token": {UserID: 2, Email: "header@manara.org"},
	}}

	var seen *sec.AuthClaims
	inner := http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		seen = ctxutil.GetAuthUser(request.Context())
	})
	handler := middleware.Authenticate(verifier)(inner)

	request := httptest.NewRequest(http.MethodGet, "/api/auth/profile", nil)
	request.AddCookie(&http.Cookie{Name: constants.AuthCookieName, Value: "cookie-token"})
	request.Header.Set("Authorization", "Bearer header-token")
	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, request)

	require.NotNil(t, seen)
	assert.Equal(t, "cookie@manara.org", seen.Email)
}

/*
TestAuthenticate_InvalidToken verifies a bad token is rejected outright even
on routes that allow anonymous access.
*/
func TestAuthenticate_InvalidToken(t *testing.T) {
	verifier := &stubVerifier{}

	inner := http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		writer.WriteHeader(http.StatusOK)
	})
	handler := middleware.Authenticate(verifier)(inner)

	request := httptest.NewRequest(http.MethodGet, "/api/news", nil)
	request.Header.Set("Authorization", "Bearer garbage")
	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	assert.Equal(t, "Unauthorized: Invalid token", decodeMessage(t, recorder))
}

/*
TestAuthenticate_ClaimShape verifies that a correctly signed token with a
foreign claim payload surfaces the format-specific message.
*/
func TestAuthenticate_ClaimShape(t *testing.T) {
	verifier := &stubVerifier{errs: map[string]error{
		"foreign-token": sec.ErrClaimShape,
	}}

	inner := http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		writer.WriteHeader(http.StatusOK)
	})
	handler := middleware.Authenticate(verifier)(inner)

	request := httptest.NewRequest(http.MethodGet, "/api/news", nil)
	request.AddCookie(&http.Cookie{Name: constants.AuthCookieName, Value: "foreign-token"})
	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	assert.Equal(t, "Invalid authentication token format", decodeMessage(t, recorder))
}

/*
TestExtractToken_MalformedHeader verifies malformed Authorization headers are
treated as anonymous rather than rejected.
*/
func TestExtractToken_MalformedHeader(t *testing.T) {
	verifier := &stubVerifier{}

	inner := http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		writer.WriteHeader(http.StatusOK)
	})
	handler := middleware.Authenticate(verifier)(inner)

	for _, header := range []string{"Basic abc", "Bearer", "Bearer "} {
		request := httptest.NewRequest(http.MethodGet, "/api/news", nil)
		request.Header.Set("Authorization", header)
		recorder := httptest.NewRecorder()
		handler.ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusOK, recorder.Code, "header %q", header)
	}
}

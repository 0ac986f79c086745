package news_test

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/manaracms/manara/internal/content/news"
	"github.com/manaracms/manara/internal/platform/middleware"
	"github.com/manaracms/manara/internal/platform/sec"
)

// newTestAPI wires the news handler behind the real auth middleware chain,
// returning the router and a valid bearer token for ownerClaims.
func newTestAPI(t *testing.T) (http.Handler, string) {
	t.Helper()

	tokenService, err := sec.NewTokenService("http-test-secret-0123456789012345", "manara.org")
	require.NoError(t, err)
	token, err := tokenService.GenerateAccessToken(ownerClaims.UserID, ownerClaims.Email, "jti-http", time.Hour)
	require.NoError(t, err)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	service := news.NewService(news.NewMemoryRepository(), nil, logger)
	handler := news.NewHandler(service, 1<<20)

	router := chi.NewRouter()
	router.Use(middleware.Authenticate(tokenService))
	router.Route("/api/news", handler.RegisterRoutes)

	return router, token
}

// multipartBody builds a form with the standard trilingual fields.
func multipartBody(t *testing.T, fields map[string]string) (*bytes.Buffer, string) {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	for name, value := range fields {
		require.NoError(t, writer.WriteField(name, value))
	}
	require.NoError(t, writer.Close())
	return body, writer.FormDataContentType()
}

func validFields() map[string]string {
	return map[string]string{
		"title":       `{"en":"Opening","ar":"افتتاح","fr":"Ouverture"}`,
		"paragraph":   `{"en":"Body","ar":"نص","fr":"Corps"}`,
		"youtubeLink": "https://www.youtube.com/watch?v=abc",
	}
}

func doRequest(t *testing.T, router http.Handler, method, path, token string, fields map[string]string) *httptest.ResponseRecorder {
	t.Helper()

	var request *http.Request
	if fields != nil {
		body, contentType := multipartBody(t, fields)
		request = httptest.NewRequest(method, path, body)
		request.Header.Set("Content-Type", contentType)
	} else {
		request = httptest.NewRequest(method, path, nil)
	}
	if token != "" {
		request.Header.Set("Authorization", "Bearer "+token)
	}

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, request)
	return recorder
}

/*
TestNewsAPI_PublicList verifies the bare list envelope has no message field.
*/
func TestNewsAPI_PublicList(t *testing.T) {
	router, _ := newTestAPI(t)

	recorder := doRequest(t, router, http.MethodGet, "/api/news", "", nil)
	require.Equal(t, http.StatusOK, recorder.Code)

	var body map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	assert.Contains(t, body, "news")
	assert.NotContains(t, body, "message")
}

/*
TestNewsAPI_AddRequiresAuth verifies the protected group rejects anonymous
writes with the canonical message.
*/
func TestNewsAPI_AddRequiresAuth(t *testing.T) {
	router, _ := newTestAPI(t)

	recorder := doRequest(t, router, http.MethodPost, "/api/news/add", "", validFields())
	require.Equal(t, http.StatusUnauthorized, recorder.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	assert.Equal(t, "Unauthorized: No token provided", body["message"])
}

/*
TestNewsAPI_AddAndGet verifies the full write-then-read cycle with envelope
shapes and ownership stamping.
*/
func TestNewsAPI_AddAndGet(t *testing.T) {
	router, token := newTestAPI(t)

	recorder := doRequest(t, router, http.MethodPost, "/api/news/add", token, validFields())
	require.Equal(t, http.StatusCreated, recorder.Code, recorder.Body.String())

	var created struct {
		Message string `json:"message"`
		News    struct {
			ID         string `json:"id"`
			OwnerEmail string `json:"ownerEmail"`
			Title      struct {
				En string `json:"en"`
			} `json:"title"`
		} `json:"news"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &created))
	assert.Equal(t, "News added successfully", created.Message)
	assert.Equal(t, "owner@manara.org", created.News.OwnerEmail)
	assert.Equal(t, "Opening", created.News.Title.En)
	require.NotEmpty(t, created.News.ID)

	// Single reads carry the resource key without a message.
	recorder = doRequest(t, router, http.MethodGet, "/api/news/"+created.News.ID, "", nil)
	require.Equal(t, http.StatusOK, recorder.Code)

	var fetched map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &fetched))
	assert.Contains(t, fetched, "news")
	assert.NotContains(t, fetched, "message")
}

/*
TestNewsAPI_FeaturedRoute verifies the literal /featured segment is not
swallowed by the /{id} wildcard.
*/
func TestNewsAPI_FeaturedRoute(t *testing.T) {
	router, _ := newTestAPI(t)

	recorder := doRequest(t, router, http.MethodGet, "/api/news/featured", "", nil)
	require.Equal(t, http.StatusOK, recorder.Code)

	var body map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	assert.Contains(t, body, "news")
}

/*
TestNewsAPI_BadInput covers the handler-level input failures: plain-text
title, bad boolean, missing record.
*/
func TestNewsAPI_BadInput(t *testing.T) {
	router, token := newTestAPI(t)

	t.Run("plain_text_title", func(t *testing.T) {
		fields := validFields()
		fields["title"] = "just a plain title"
		recorder := doRequest(t, router, http.MethodPost, "/api/news/add", token, fields)
		require.Equal(t, http.StatusBadRequest, recorder.Code)

		var body map[string]any
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
		assert.Equal(t, "Invalid format for title. Expected JSON.", body["message"])
	})

	t.Run("bad_boolean", func(t *testing.T) {
		fields := validFields()
		fields["isFeatured"] = "yes please"
		recorder := doRequest(t, router, http.MethodPost, "/api/news/add", token, fields)
		require.Equal(t, http.StatusBadRequest, recorder.Code)

		var body map[string]any
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
		assert.Equal(t, "isFeatured must be a boolean", body["message"])
	})

	t.Run("update_missing_record", func(t *testing.T) {
		recorder := doRequest(t, router, http.MethodPut, "/api/news/update/0190b543-0000-7000-8000-000000000000", token, validFields())
		require.Equal(t, http.StatusNotFound, recorder.Code)

		var body map[string]any
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
		assert.Equal(t, "NOT_FOUND", body["code"])
	})

	t.Run("update_malformed_id", func(t *testing.T) {
		recorder := doRequest(t, router, http.MethodPut, "/api/news/update/does-not-exist", token, validFields())
		require.Equal(t, http.StatusBadRequest, recorder.Code)

		var body map[string]any
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
		assert.Equal(t, "INVALID_ID", body["code"])
	})
}

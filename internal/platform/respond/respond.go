// Copyright (c) 2026 Manara. All rights reserved.

// Package respond provides HTTP response helpers used by all API handlers.
//
// # Architecture
//
// This package centralizes the presentation logic for HTTP responses.
// Every success response is a message plus a resource-named payload field
// (e.g. {"message": "News added successfully", "news": {...}}), and every
// error response is a message with a machine-readable code. The frontend
// SPA relies on this envelope staying stable across all resource kinds.
package respond

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/manaracms/manara/internal/platform/apperr"
	"github.com/manaracms/manara/internal/platform/ctxutil"
)

// ErrorEnvelope is the JSON envelope for error responses.
type ErrorEnvelope struct {
	Message string              `json:"message"`
	Code    string              `json:"code,omitempty"`
	Details []apperr.FieldError `json:"details,omitempty"`
}

// JSON writes a JSON response with the given status code.
func JSON(writer http.ResponseWriter, statusCode int, payload interface{}) {
	writer.Header().Set("Content-Type", "application/json; charset=utf-8")
	writer.WriteHeader(statusCode)
	_ = json.NewEncoder(writer).Encode(payload)
}

// OK writes a 200 OK response carrying a message and a named resource payload.
func OK(writer http.ResponseWriter, message, key string, data interface{}) {
	JSON(writer, http.StatusOK, envelope(message, key, data))
}

// Created writes a 201 Created response carrying a message and a named resource payload.
func Created(writer http.ResponseWriter, message, key string, data interface{}) {
	JSON(writer, http.StatusCreated, envelope(message, key, data))
}

// List writes a 200 OK response carrying only the named collection payload.
// Bare list reads have no message field.
func List(writer http.ResponseWriter, key string, data interface{}) {
	JSON(writer, http.StatusOK, map[string]interface{}{key: data})
}

// Message writes a 200 OK response carrying only a message.
func Message(writer http.ResponseWriter, message string) {
	JSON(writer, http.StatusOK, map[string]string{"message": message})
}

// Error converts any Go error into a standardized JSON API error response.
func Error(writer http.ResponseWriter, request *http.Request, err error) {
	var appError *apperr.AppError
	if !errors.As(err, &appError) {
		// Unexpected internal error: log full details but hide them from the client.
		logger := ctxutil.GetLogger(request.Context())
		logger.ErrorContext(request.Context(), "unhandled_error_swallowed",
			slog.String("error", err.Error()),
			slog.String("request_id", ctxutil.GetRequestID(request.Context())),
		)
		appError = apperr.Internal(err)
	}

	// Always log 5xx errors as they indicate server-side issues.
	if appError.HTTPStatus >= 500 {
		logger := ctxutil.GetLogger(request.Context())
		logger.ErrorContext(request.Context(), "api_server_error",
			slog.String("code", appError.Code),
			slog.String("request_id", ctxutil.GetRequestID(request.Context())),
			slog.Any("cause", appError.Cause),
		)
	}

	JSON(writer, appError.HTTPStatus, ErrorEnvelope{
		Message: appError.Message,
		Code:    appError.Code,
		Details: appError.Details,
	})
}

// envelope builds the {message, <key>: data} success payload.
func envelope(message, key string, data interface{}) map[string]interface{} {
	body := map[string]interface{}{key: data}
	if message != "" {
		body["message"] = message
	}
	return body
}

// Copyright (c) 2026 Manara. All rights reserved.

/*
Package request provides utilities for extracting data from HTTP requests.

It abstracts away the underlying router's parameter extraction, JSON decoding,
and multipart upload buffering, ensuring consistent error handling and type
safety across all resource handlers.
*/
package requestutil

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/manaracms/manara/internal/platform/apperr"
	"github.com/manaracms/manara/internal/platform/ctxutil"
	"github.com/manaracms/manara/internal/platform/sec"
	"github.com/manaracms/manara/internal/platform/validate"
)

const (
	// multipartMemoryLimit is the in-memory threshold passed to ParseMultipartForm.
	// Parts above it spill to temporary files before being read back.
	multipartMemoryLimit = 10 << 20

	// formOverheadBytes is headroom for non-file fields and multipart framing
	// when capping the request body around the upload ceiling.
	formOverheadBytes = 1 << 20
)

// DecodeJSON reads the request body and decodes it into the target structure.
//
// Returns [validate.ErrInvalidJSON] if decoding fails.
func DecodeJSON(request *http.Request, target interface{}) error {
	if err := json.NewDecoder(request.Body).Decode(target); err != nil {
		return validate.ErrInvalidJSON
	}
	return nil
}

// ID retrieves a named URL parameter from the request.
func ID(request *http.Request, name string) string {
	return chi.URLParam(request, name)
}

// Claims extracts the authenticated user claims from the request context.
//
// Returns nil if the request is not authenticated.
func Claims(request *http.Request) *sec.AuthClaims {
	return ctxutil.GetAuthUser(request.Context())
}

// RequiredClaims ensures the request is authenticated and returns the claims.
func RequiredClaims(request *http.Request) (*sec.AuthClaims, error) {
	claims := ctxutil.GetAuthUser(request.Context())
	if claims == nil {
		return nil, apperr.Unauthorized("Unauthorized: No token provided")
	}
	return claims, nil
}

// # Multipart Uploads

// ParseUploadForm parses a multipart form whose file parts are buffered in
// memory, with the whole body capped around maxUploadBytes.
//
// Uploads are later persisted inline as base64, so the cap bounds both
// process memory and record size. Exceeding it fails with CONTENT_TOO_LARGE.
func ParseUploadForm(request *http.Request, maxUploadBytes int64) error {
	request.Body = http.MaxBytesReader(nil, request.Body, maxUploadBytes+formOverheadBytes)

	if err := request.ParseMultipartForm(multipartMemoryLimit); err != nil {
		var maxBytesError *http.MaxBytesError
		if errors.As(err, &maxBytesError) {
			return apperr.ContentTooLarge(fmt.Sprintf("Upload exceeds the %d byte limit", maxUploadBytes))
		}
		return apperr.ValidationError("Invalid multipart form data")
	}

	return nil
}

// OptionalFormValue reports a form field as present-or-absent.
//
// Partial updates must distinguish "field not sent" (retain the stored value)
// from "field sent empty" (explicit clear), so the plain FormValue empty
// string is not enough. Returns nil when the field was not sent at all.
func OptionalFormValue(request *http.Request, name string) *string {
	if request.MultipartForm != nil {
		if values, ok := request.MultipartForm.Value[name]; ok && len(values) > 0 {
			return &values[0]
		}
		return nil
	}

	if values, ok := request.PostForm[name]; ok && len(values) > 0 {
		return &values[0]
	}
	return nil
}

// FormFileBase64 reads an uploaded file part and returns it base64-encoded.
//
// Returns (nil, nil) when no file was sent under the field name; absence is
// valid input for partial updates. A file larger than maxUploadBytes fails
// with CONTENT_TOO_LARGE even if the surrounding body cap was not hit.
func FormFileBase64(request *http.Request, field string, maxUploadBytes int64) (*string, error) {
	file, _, err := request.FormFile(field)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return nil, nil
		}
		return nil, apperr.ValidationError("Invalid file upload for field " + field)
	}
	defer func() { _ = file.Close() }()

	raw, err := io.ReadAll(io.LimitReader(file, maxUploadBytes+1))
	if err != nil {
		return nil, apperr.Internal(fmt.Errorf("requestutil: reading upload %q: %w", field, err))
	}
	if int64(len(raw)) > maxUploadBytes {
		return nil, apperr.ContentTooLarge(fmt.Sprintf("Upload exceeds the %d byte limit", maxUploadBytes))
	}

	encoded := base64.StdEncoding.EncodeToString(raw)
	return &encoded, nil
}

// Copyright (c) 2026 Manara. All rights reserved.

package auth

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/manaracms/manara/internal/platform/constants"
	"github.com/manaracms/manara/internal/platform/middleware"
	requestutil "github.com/manaracms/manara/internal/platform/request"
	"github.com/manaracms/manara/internal/platform/respond"
	"github.com/manaracms/manara/internal/platform/validate"
)

// Handler implements the identity HTTP endpoints.
//
// # Scope
//
// Everything related to the administrator lifecycle entry points:
// registration, login, logout, token validation, profile, password reset.
type Handler struct {
	authService *Service
}

// NewHandler constructs a new [Handler] with its service dependency.
func NewHandler(service *Service) *Handler {
	return &Handler{authService: service}
}

// UserRoutes returns the router mounted at /api/users.
func (handler *Handler) UserRoutes() chi.Router {
	router := chi.NewRouter()

	router.Post("/register", handler.register)

	return router
}

// AuthRoutes returns the router mounted at /api/auth.
//
// # Endpoints
//   - POST /login          : Authenticates and sets the auth cookie.
//   - POST /logout         : Expires the auth cookie.
//   - POST /reset-password : PIN-gated password replacement.
//   - GET  /validate-token : Echoes the authenticated identity. (protected)
//   - GET  /profile        : Returns the account profile.        (protected)
//   - PUT  /update         : Partial profile update.             (protected)
func (handler *Handler) AuthRoutes() chi.Router {
	router := chi.NewRouter()

	router.Post("/login", handler.login)
	router.Post("/logout", handler.logout)
	router.Post("/reset-password", handler.resetPassword)

	router.Group(func(protected chi.Router) {
		protected.Use(middleware.RequireAuth)

		protected.Get("/validate-token", handler.validateToken)
		protected.Get("/profile", handler.profile)
		protected.Put("/update", handler.updateProfile)
	})

	return router
}

// registerRequest represents the JSON payload expected for account creation.
type registerRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	City      string `json:"city"`
}

// register handles POST /api/users/register requests.
//
// # Returns
//   - Writes HTTP 201 Created on success with the profile, token, and cookie.
//   - Writes HTTP 400 Bad Request if validation rules fail.
//   - Writes HTTP 409 Conflict if the email is taken.
func (handler *Handler) register(writer http.ResponseWriter, request *http.Request) {
	// ── 1. Payload Extraction ─────────────────────────────────────────────

	var input registerRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	// ── 2. Boundary Validation ────────────────────────────────────────────

	validator := &validate.Validator{}
	validator.Required(FieldFirstName, input.FirstName).MaxLen(FieldFirstName, input.FirstName, 100)
	validator.Required(FieldLastName, input.LastName).MaxLen(FieldLastName, input.LastName, 100)
	validator.Required(FieldEmail, input.Email).Email(FieldEmail, input.Email)
	validator.MinLen(FieldPassword, input.Password, MinPasswordLength)
	validator.MaxLen(FieldCity, input.City, 100)
	if err := validator.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	// ── 3. Application Execution ──────────────────────────────────────────

	user, token, err := handler.authService.Register(request.Context(), RegisterInput{
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Email:     input.Email,
		Password:  input.Password,
		City:      input.City,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	// ── 4. Presentation Output ────────────────────────────────────────────

	setAuthCookie(writer, token)
	respond.JSON(writer, http.StatusCreated, map[string]any{
		"message": "Registration successful",
		"userId":  user.ID,
		"token":   token,
	})
}

// loginRequest represents the JSON payload expected for authentication.
type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// login handles POST /api/auth/login requests.
//
// # Returns
//   - Writes HTTP 200 OK on success with the userId, token, and cookie.
//   - Writes HTTP 401 Unauthorized for bad credentials.
func (handler *Handler) login(writer http.ResponseWriter, request *http.Request) {
	// ── 1. Payload Extraction ─────────────────────────────────────────────

	var input loginRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	// ── 2. Boundary Validation ────────────────────────────────────────────

	if input.Email == "" || input.Password == "" {
		respond.Error(writer, request, validate.RequiredError("email/password", "are required"))
		return
	}

	// ── 3. Application Execution ──────────────────────────────────────────

	user, token, err := handler.authService.Login(request.Context(), LoginInput{
		Email:    input.Email,
		Password: input.Password,
	})
	if err != nil {
		// Returns HTTP 401 without leaking which part of the credential failed.
		respond.Error(writer, request, err)
		return
	}

	// ── 4. Presentation Output ────────────────────────────────────────────

	setAuthCookie(writer, token)
	respond.JSON(writer, http.StatusOK, map[string]any{
		"message": "Login successful",
		"userId":  user.ID,
		"token":   token,
	})
}

// logout handles POST /api/auth/logout requests.
//
// Tokens are stateless, so logout is purely cookie expiry on the client; a
// captured bearer token stays valid until its 24h expiry.
func (handler *Handler) logout(writer http.ResponseWriter, request *http.Request) {
	clearAuthCookie(writer)
	respond.Message(writer, "Logout successful")
}

// validateToken handles GET /api/auth/validate-token requests.
// It echoes the verified identity claims so the SPA can restore its session.
func (handler *Handler) validateToken(writer http.ResponseWriter, request *http.Request) {
	claims, err := requestutil.RequiredClaims(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.JSON(writer, http.StatusOK, map[string]any{
		"userId": claims.UserID,
		"email":  claims.Email,
	})
}

// profile handles GET /api/auth/profile requests.
func (handler *Handler) profile(writer http.ResponseWriter, request *http.Request) {
	claims, err := requestutil.RequiredClaims(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	user, err := handler.authService.Profile(request.Context(), claims)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, "", "user", user)
}

// updateProfileRequest represents the JSON payload for a partial profile update.
type updateProfileRequest struct {
	FirstName *string `json:"firstName"`
	LastName  *string `json:"lastName"`
	City      *string `json:"city"`
}

// updateProfile handles PUT /api/auth/update requests.
func (handler *Handler) updateProfile(writer http.ResponseWriter, request *http.Request) {
	claims, err := requestutil.RequiredClaims(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input updateProfileRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	user, err := handler.authService.UpdateProfile(request.Context(), claims, UpdateProfileInput{
		FirstName: input.FirstName,
		LastName:  input.LastName,
		City:      input.City,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, "Profile updated successfully", "user", user)
}

// resetPasswordRequest represents the JSON payload for a password reset.
type resetPasswordRequest struct {
	Email           string `json:"email"`
	PIN             string `json:"pin"`
	NewPassword     string `json:"newPassword"`
	ConfirmPassword string `json:"confirmPassword"`
}

// resetPassword handles POST /api/auth/reset-password requests.
//
// # Returns
//   - Writes HTTP 200 OK when the password was replaced.
//   - Writes HTTP 400 Bad Request for a wrong PIN or weak password.
//   - Writes HTTP 429 Too Many Requests when the address is throttled.
func (handler *Handler) resetPassword(writer http.ResponseWriter, request *http.Request) {
	var input resetPasswordRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	validator := &validate.Validator{}
	validator.Required(FieldEmail, input.Email).Email(FieldEmail, input.Email)
	validator.Required(FieldPIN, input.PIN)
	if err := validator.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	err := handler.authService.ResetPassword(request.Context(), ResetPasswordInput{
		Email:           input.Email,
		PIN:             input.PIN,
		NewPassword:     input.NewPassword,
		ConfirmPassword: input.ConfirmPassword,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Message(writer, "Password reset successfully")
}

// setAuthCookie attaches the access token as an HttpOnly cookie. SameSite=None
// plus Secure is required because the SPA is served from a different origin.
func setAuthCookie(writer http.ResponseWriter, token string) {
	http.SetCookie(writer, &http.Cookie{
		Name:     constants.AuthCookieName,
		Value:    token,
		Path:     "/",
		Expires:  time.Now().Add(constants.AuthTokenTTL),
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteNoneMode,
	})
}

// clearAuthCookie overwrites the auth cookie with an already-expired one.
func clearAuthCookie(writer http.ResponseWriter) {
	http.SetCookie(writer, &http.Cookie{
		Name:     constants.AuthCookieName,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteNoneMode,
	})
}

// Copyright (c) 2026 Manara. All rights reserved.

// Package auth implements the administrator identity use cases for Manara.
//
// # Architecture
//
// The service orchestrates account persistence, password hashing, and token
// issuance through interfaces. It is technology-agnostic and does not know
// about HTTP or SQL.
package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/manaracms/manara/internal/platform/apperr"
	"github.com/manaracms/manara/internal/platform/constants"
	"github.com/manaracms/manara/internal/platform/sec"
	"github.com/manaracms/manara/internal/platform/validate"
	"github.com/manaracms/manara/pkg/pointer"
	"github.com/manaracms/manara/pkg/uuid"
)

// TokenProvider defines the contract for generating security tokens.
type TokenProvider interface {
	// GenerateAccessToken creates a signed JWT string for the given account.
	//
	// # Parameters
	//   - userID: The numeric ID of the account.
	//   - email: The account email embedded as the ownership claim.
	//   - tokenID: The unique 'jti' claim for this token.
	//   - timeToLive: The duration before the token expires.
	//
	// # Returns
	//   - A signed JWT string, or an error if signing fails.
	GenerateAccessToken(userID int64, email, tokenID string, timeToLive time.Duration) (string, error)
}

// Service implements administrator authentication use cases.
//
// # Review Process
//
// This service is critical for security. Any changes to hashing, registration,
// or password-reset logic must be reviewed carefully.
type Service struct {
	userRepository UserRepository
	attemptLimiter AttemptLimiter
	tokenProvider  TokenProvider
	resetPIN       string
}

// NewService constructs a new [Service] with necessary dependencies.
func NewService(
	userRepo UserRepository,
	limiter AttemptLimiter,
	tokenProv TokenProvider,
	resetPIN string,
) *Service {
	return &Service{
		userRepository: userRepo,
		attemptLimiter: limiter,
		tokenProvider:  tokenProv,
		resetPIN:       resetPIN,
	}
}

// RegisterInput holds the data required to enroll a new administrator.
type RegisterInput struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
	City      string
}

// Register validates, hashes, and persists a brand new account, then issues
// an access token so the client is signed in immediately.
//
// # Returns
//   - The newly created [*User] and its signed access token.
//   - Returns [apperr.Conflict] if the email is already registered.
func (service *Service) Register(context context.Context, input RegisterInput) (*User, string, error) {
	// ── 1. Uniqueness Check ───────────────────────────────────────────────

	// Verify email uniqueness. Return a client-safe Conflict error.
	_, err := service.userRepository.FindByEmail(context, input.Email)
	if err == nil {
		return nil, "", apperr.Conflict("Email is already registered")
	}

	// ── 2. Security ───────────────────────────────────────────────────────

	// Prevent storing plain-text passwords. Default cost is used for balance
	// between security and CPU utilization during registration spikes.
	hashedPassword, err := sec.HashPassword(input.Password)
	if err != nil {
		return nil, "", fmt.Errorf("auth_service_hash_failed: %w", err)
	}

	// ── 3. Entity Construction & Persistence ──────────────────────────────

	user := &User{
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		Email:        input.Email,
		PasswordHash: hashedPassword,
		City:         input.City,
	}

	if err := service.userRepository.Create(context, user); err != nil {
		return nil, "", err
	}

	// ── 4. Token Issuance ─────────────────────────────────────────────────

	token, err := service.issueToken(user)
	if err != nil {
		return nil, "", err
	}

	return user, token, nil
}

// LoginInput defines credentials for an authentication attempt.
type LoginInput struct {
	Email    string
	Password string
}

// Login validates credentials and issues an access token.
//
// # Returns
//   - The authenticated [*User] and a signed access token.
//   - Returns [apperr.Unauthorized] if credentials do not match. The message
//     is identical for unknown email and wrong password to prevent account
//     enumeration.
func (service *Service) Login(context context.Context, input LoginInput) (*User, string, error) {
	// ── 1. Fetch Account ──────────────────────────────────────────────────

	user, err := service.userRepository.FindByEmail(context, input.Email)
	if err != nil {
		return nil, "", apperr.Unauthorized("Invalid Credentials")
	}

	// ── 2. Security Verification ──────────────────────────────────────────

	// Bcrypt comparison is constant-time, preventing timing attacks.
	if !sec.CheckPasswordHash(input.Password, user.PasswordHash) {
		return nil, "", apperr.Unauthorized("Invalid Credentials")
	}

	// ── 3. Token Issuance ─────────────────────────────────────────────────

	token, err := service.issueToken(user)
	if err != nil {
		return nil, "", err
	}

	return user, token, nil
}

// Profile returns the account behind the authenticated claims.
//
// The lookup is by the email claim, matching the ownership key used across
// the content domain.
func (service *Service) Profile(context context.Context, claims *sec.AuthClaims) (*User, error) {
	user, err := service.userRepository.FindByEmail(context, claims.Email)
	if err != nil {
		return nil, apperr.NotFound("Account")
	}
	return user, nil
}

// UpdateProfileInput carries the mutable profile fields. Nil fields retain
// their stored values.
type UpdateProfileInput struct {
	FirstName *string
	LastName  *string
	City      *string
}

// UpdateProfile applies a partial update to the account's profile fields.
// The email is immutable: changing it would silently re-key ownership of
// every content record the account created.
func (service *Service) UpdateProfile(context context.Context, claims *sec.AuthClaims, input UpdateProfileInput) (*User, error) {
	user, err := service.userRepository.FindByEmail(context, claims.Email)
	if err != nil {
		return nil, apperr.NotFound("Account")
	}

	user.FirstName = pointer.Fallback(input.FirstName, user.FirstName)
	user.LastName = pointer.Fallback(input.LastName, user.LastName)
	user.City = pointer.Fallback(input.City, user.City)

	validator := &validate.Validator{}
	validator.Required(FieldFirstName, user.FirstName).MaxLen(FieldFirstName, user.FirstName, 100)
	validator.Required(FieldLastName, user.LastName).MaxLen(FieldLastName, user.LastName, 100)
	validator.MaxLen(FieldCity, user.City, 100)
	if err := validator.Err(); err != nil {
		return nil, err
	}

	if err := service.userRepository.Update(context, user); err != nil {
		return nil, err
	}

	return user, nil
}

// ResetPasswordInput carries a password-reset request.
type ResetPasswordInput struct {
	Email           string
	PIN             string
	NewPassword     string
	ConfirmPassword string
}

// ResetPassword replaces the account password after verifying the shared PIN.
//
// # Throttling
//
// Every attempt, valid or not, counts against the per-address Redis window.
// Exceeding the limit fails with RATE_LIMITED before the PIN is even checked,
// so the throttle cannot be used to probe PIN validity.
func (service *Service) ResetPassword(context context.Context, input ResetPasswordInput) error {
	// ── 1. Throttle ───────────────────────────────────────────────────────

	attempts, err := service.attemptLimiter.RegisterResetAttempt(context, input.Email)
	if err != nil {
		return fmt.Errorf("auth_service_reset_throttle_failed: %w", err)
	}
	if attempts > constants.ResetAttemptLimit {
		return apperr.RateLimited("Too many reset attempts, please try again later")
	}

	// ── 2. PIN & Password Checks ──────────────────────────────────────────

	if input.PIN != service.resetPIN {
		return validate.RequiredError(FieldPIN, "Invalid PIN")
	}

	validator := &validate.Validator{}
	validator.MinLen(FieldPassword, input.NewPassword, MinPasswordLength)
	validator.Custom(FieldPassword, input.NewPassword != input.ConfirmPassword, "Passwords do not match")
	if err := validator.Err(); err != nil {
		return err
	}

	// ── 3. Account Lookup & Persistence ───────────────────────────────────

	// The same generic message covers unknown addresses; the PIN gate above
	// already passed, so this is a usability message rather than an
	// enumeration defense.
	user, err := service.userRepository.FindByEmail(context, input.Email)
	if err != nil {
		return apperr.NotFound("Account")
	}

	hashedPassword, err := sec.HashPassword(input.NewPassword)
	if err != nil {
		return fmt.Errorf("auth_service_reset_hash_failed: %w", err)
	}

	return service.userRepository.UpdatePassword(context, user.ID, hashedPassword)
}

// issueToken signs a fresh access token for the account.
func (service *Service) issueToken(user *User) (string, error) {
	token, err := service.tokenProvider.GenerateAccessToken(user.ID, user.Email, uuid.New(), constants.AuthTokenTTL)
	if err != nil {
		return "", fmt.Errorf("auth_service_token_generation_failed: %w", err)
	}
	return token, nil
}

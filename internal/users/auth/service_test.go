// Copyright (c) 2026 Manara. All rights reserved.

package auth_test

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/manaracms/manara/internal/platform/apperr"
	"github.com/manaracms/manara/internal/platform/constants"
	"github.com/manaracms/manara/internal/platform/sec"
	"github.com/manaracms/manara/internal/users/auth"
)

const testPIN = "246810"

func newTestService(t *testing.T) *auth.Service {
	t.Helper()

	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	limiter := auth.NewRedisAttemptLimiter(client)

	tokenService, err := sec.NewTokenService("test-secret-0123456789-0123456789", "manara.org")
	require.NoError(t, err)

	return auth.NewService(auth.NewMemoryUserRepository(), limiter, tokenService, testPIN)
}

func registerTestUser(t *testing.T, service *auth.Service) *auth.User {
	t.Helper()

	user, token, err := service.Register(context.Background(), auth.RegisterInput{
		FirstName: "Amira",
		LastName:  "Haddad",
		Email:     "amira@manara.org",
		Password:  "s3cretpw",
		City:      "Tunis",
	})
	require.NoError(t, err)
	require.NotEmpty(t, token)
	return user
}

/*
TestRegister verifies account creation, immediate token issuance, and the
duplicate email conflict.
*/
func TestRegister(t *testing.T) {
	service := newTestService(t)

	user := registerTestUser(t, service)
	assert.Equal(t, int64(1), user.ID)
	assert.Equal(t, "amira@manara.org", user.Email)
	assert.NotEqual(t, "s3cretpw", user.PasswordHash)

	_, _, err := service.Register(context.Background(), auth.RegisterInput{
		FirstName: "Someone",
		LastName:  "Else",
		Email:     "amira@manara.org",
		Password:  "another1",
	})
	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, "CONFLICT", ae.Code)
	assert.Equal(t, "Email is already registered", ae.Message)
}

/*
TestLogin verifies credential checking. Unknown email and wrong password
produce the identical message so accounts cannot be enumerated.
*/
func TestLogin(t *testing.T) {
	service := newTestService(t)
	registerTestUser(t, service)
	ctx := context.Background()

	user, token, err := service.Login(ctx, auth.LoginInput{
		Email:    "amira@manara.org",
		Password: "s3cretpw",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, "amira@manara.org", user.Email)

	_, _, wrongPassword := service.Login(ctx, auth.LoginInput{
		Email:    "amira@manara.org",
		Password: "wrong",
	})
	_, _, unknownEmail := service.Login(ctx, auth.LoginInput{
		Email:    "nobody@manara.org",
		Password: "s3cretpw",
	})

	for _, err := range []error{wrongPassword, unknownEmail} {
		ae := apperr.As(err)
		require.NotNil(t, ae)
		assert.Equal(t, "UNAUTHORIZED", ae.Code)
		assert.Equal(t, "Invalid Credentials", ae.Message)
	}
}

/*
TestUpdateProfile verifies the partial merge and that the email stays fixed.
*/
func TestUpdateProfile(t *testing.T) {
	service := newTestService(t)
	registered := registerTestUser(t, service)
	claims := &sec.AuthClaims{UserID: registered.ID, Email: registered.Email}

	city := "Sfax"
	updated, err := service.UpdateProfile(context.Background(), claims, auth.UpdateProfileInput{
		City: &city,
	})
	require.NoError(t, err)

	assert.Equal(t, "Sfax", updated.City)
	assert.Equal(t, "Amira", updated.FirstName)
	assert.Equal(t, "amira@manara.org", updated.Email)
}

/*
TestResetPassword verifies the PIN gate, password rules, and the final
credential swap.
*/
func TestResetPassword(t *testing.T) {
	service := newTestService(t)
	registerTestUser(t, service)
	ctx := context.Background()

	t.Run("wrong_pin", func(t *testing.T) {
		err := service.ResetPassword(ctx, auth.ResetPasswordInput{
			Email:           "amira@manara.org",
			PIN:             "000000",
			NewPassword:     "newpass1",
			ConfirmPassword: "newpass1",
		})
		ae := apperr.As(err)
		require.NotNil(t, ae)
		require.NotEmpty(t, ae.Details)
		assert.Equal(t, "Invalid PIN", ae.Details[0].Message)
	})

	t.Run("password_mismatch", func(t *testing.T) {
		err := service.ResetPassword(ctx, auth.ResetPasswordInput{
			Email:           "amira@manara.org",
			PIN:             testPIN,
			NewPassword:     "newpass1",
			ConfirmPassword: "different",
		})
		ae := apperr.As(err)
		require.NotNil(t, ae)
		assert.Equal(t, "VALIDATION_ERROR", ae.Code)
	})

	t.Run("short_password", func(t *testing.T) {
		err := service.ResetPassword(ctx, auth.ResetPasswordInput{
			Email:           "amira@manara.org",
			PIN:             testPIN,
			NewPassword:     "abc",
			ConfirmPassword: "abc",
		})
		assert.Equal(t, "VALIDATION_ERROR", apperr.As(err).Code)
	})

	t.Run("unknown_email", func(t *testing.T) {
		err := service.ResetPassword(ctx, auth.ResetPasswordInput{
			Email:           "nobody@manara.org",
			PIN:             testPIN,
			NewPassword:     "newpass1",
			ConfirmPassword: "newpass1",
		})
		assert.Equal(t, "NOT_FOUND", apperr.As(err).Code)
	})

	t.Run("success_and_login_with_new_password", func(t *testing.T) {
		err := service.ResetPassword(ctx, auth.ResetPasswordInput{
			Email:           "amira@manara.org",
			PIN:             testPIN,
			NewPassword:     "newpass1",
			ConfirmPassword: "newpass1",
		})
		require.NoError(t, err)

		_, _, err = service.Login(ctx, auth.LoginInput{Email: "amira@manara.org", Password: "s3cretpw"})
		assert.Error(t, err)

		_, _, err = service.Login(ctx, auth.LoginInput{Email: "amira@manara.org", Password: "newpass1"})
		assert.NoError(t, err)
	})
}

/*
TestResetPassword_Throttle verifies the per-address attempt window: every
attempt counts, valid or not, and the limit is enforced before the PIN check.
*/
func TestResetPassword_Throttle(t *testing.T) {
	service := newTestService(t)
	registerTestUser(t, service)
	ctx := context.Background()

	input := auth.ResetPasswordInput{
		Email:           "amira@manara.org",
		PIN:             "000000", // wrong on purpose; attempts still count
		NewPassword:     "newpass1",
		ConfirmPassword: "newpass1",
	}

	for i := 0; i < constants.ResetAttemptLimit; i++ {
		err := service.ResetPassword(ctx, input)
		assert.Equal(t, "VALIDATION_ERROR", apperr.As(err).Code)
	}

	// Attempt N+1 is throttled even with the correct PIN.
	input.PIN = testPIN
	err := service.ResetPassword(ctx, input)
	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, "RATE_LIMITED", ae.Code)
	assert.Equal(t, "Too many reset attempts, please try again later", ae.Message)

	// The throttle is per address, case-insensitively.
	input.Email = "AMIRA@manara.org"
	err = service.ResetPassword(ctx, input)
	assert.Equal(t, "RATE_LIMITED", apperr.As(err).Code)
}

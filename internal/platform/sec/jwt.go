// Copyright (c) 2026 Manara. All rights reserved.

// Package sec provides cryptographic primitives and token management.
//
// # Architecture
//
// This package isolates security-sensitive code (hashing, JWT signing) from
// the domain logic. It acts as an infrastructure service injected into the
// application layer via small interfaces.
package sec

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// AuthClaims represents the payload embedded inside a JWT access token.
//
// # Why custom claims?
//
// By embedding the numeric user ID and email directly inside the JWT, the
// authentication middleware can reconstruct the active identity WITHOUT
// querying the database on every request. The flip side is that the email
// claim can go stale if the account's email changes after issuance; the
// claims are trusted verbatim for the token's lifetime.
type AuthClaims struct {
	jwt.RegisteredClaims

	// UserID is the immutable numeric account identifier.
	UserID int64 `json:"userId"`
	// Email is the account email at issuance time. It is the ownership key
	// for all content mutations.
	Email string `json:"email"`
}

// ErrClaimShape is returned when a token verifies cryptographically but its
// claims do not carry the expected identity shape.
var ErrClaimShape = errors.New("sec: token claims have unexpected shape")

// TokenService handles generation and verification of JWT tokens using HS256
// with a server-held secret.
type TokenService struct {
	secret []byte
	issuer string
}

// NewTokenService creates a new TokenService.
func NewTokenService(secret, issuer string) (*TokenService, error) {
	if secret == "" {
		return nil, fmt.Errorf("sec: JWT secret must not be empty")
	}
	return &TokenService{secret: []byte(secret), issuer: issuer}, nil
}

// GenerateAccessToken creates a new signed JWT for a user.
func (service *TokenService) GenerateAccessToken(userID int64, email, tokenID string, timeToLive time.Duration) (string, error) {
	currentTime := time.Now()
	claims := AuthClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   fmt.Sprintf("%d", userID),
			Issuer:    service.issuer,
			ID:        tokenID,
			IssuedAt:  jwt.NewNumericDate(currentTime),
			ExpiresAt: jwt.NewNumericDate(currentTime.Add(timeToLive)),
		},
		UserID: userID,
		Email:  email,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signedToken, err := token.SignedString(service.secret)
	if err != nil {
		return "", fmt.Errorf("sec: failed to sign token: %w", err)
	}

	return signedToken, nil
}

// VerifyToken checks the signature and validity of a JWT string.
//
// A cryptographically valid token whose identity claims are malformed
// (non-positive user ID or empty email) fails with [ErrClaimShape] so the
// caller can surface a more specific message at the same 401 status.
func (service *TokenService) VerifyToken(tokenString string) (*AuthClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &AuthClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("sec: unexpected signing method: %v", token.Header["alg"])
		}
		return service.secret, nil
	})

	if err != nil {
		return nil, fmt.Errorf("sec: invalid token: %w", err)
	}

	claims, ok := token.Claims.(*AuthClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("sec: invalid token claims")
	}

	if claims.UserID <= 0 || claims.Email == "" {
		return nil, ErrClaimShape
	}

	return claims, nil
}

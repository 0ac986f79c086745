// Copyright (c) 2026 Manara. All rights reserved.

package auth

import "time"

// User represents a registered administrator account.
//
// # Lifecycle
//
// Accounts are created at registration, mutated via profile update and
// password reset, and never physically deleted.
type User struct {
	ID           int64     `json:"id"`
	FirstName    string    `json:"firstName"`
	LastName     string    `json:"lastName"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	City         string    `json:"city"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"-"`
}

// Global field names for validation
const (
	FieldFirstName = "firstName"
	FieldLastName  = "lastName"
	FieldEmail     = "email"
	FieldPassword  = "password"
	FieldCity      = "city"
	FieldPIN       = "pin"
)

// MinPasswordLength is the minimum accepted password length.
const MinPasswordLength = 6

// Copyright (c) 2026 Manara. All rights reserved.

package auth

import "context"

// UserRepository defines persistence operations for administrator accounts.
type UserRepository interface {
	Create(context context.Context, user *User) error
	FindByEmail(context context.Context, email string) (*User, error)
	FindByID(context context.Context, id int64) (*User, error)
	// Update persists the mutable profile fields (first name, last name, city).
	Update(context context.Context, user *User) error
	UpdatePassword(context context.Context, id int64, passwordHash string) error
}

// AttemptLimiter throttles password-reset attempts per email address.
type AttemptLimiter interface {
	// RegisterResetAttempt records one attempt for the address and returns the
	// total number of attempts within the current window.
	RegisterResetAttempt(context context.Context, email string) (int64, error)
}

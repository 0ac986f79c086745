// Copyright (c) 2026 Manara. All rights reserved.

package auth

import (
	"context"
	"sync"
	"time"

	"github.com/manaracms/manara/internal/platform/apperr"
	"github.com/manaracms/manara/internal/platform/dberr"
)

// MemoryUserRepository implements [UserRepository] in process memory.
// It backs tests and storeless runs.
type MemoryUserRepository struct {
	mu     sync.RWMutex
	byID   map[int64]*User
	nextID int64
}

func NewMemoryUserRepository() *MemoryUserRepository {
	return &MemoryUserRepository{byID: make(map[int64]*User), nextID: 1}
}

func (repository *MemoryUserRepository) Create(_ context.Context, user *User) error {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	for _, stored := range repository.byID {
		if stored.Email == user.Email {
			return apperr.Conflict("Resource already exists")
		}
	}

	user.ID = repository.nextID
	repository.nextID++
	user.CreatedAt = time.Now().UTC()
	user.UpdatedAt = user.CreatedAt

	copied := *user
	repository.byID[user.ID] = &copied
	return nil
}

func (repository *MemoryUserRepository) FindByEmail(_ context.Context, email string) (*User, error) {
	repository.mu.RLock()
	defer repository.mu.RUnlock()

	for _, stored := range repository.byID {
		if stored.Email == email {
			copied := *stored
			return &copied, nil
		}
	}
	return nil, dberr.ErrNotFound
}

func (repository *MemoryUserRepository) FindByID(_ context.Context, id int64) (*User, error) {
	repository.mu.RLock()
	defer repository.mu.RUnlock()

	stored, ok := repository.byID[id]
	if !ok {
		return nil, dberr.ErrNotFound
	}
	copied := *stored
	return &copied, nil
}

func (repository *MemoryUserRepository) Update(_ context.Context, user *User) error {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	stored, ok := repository.byID[user.ID]
	if !ok {
		return dberr.ErrNotFound
	}

	stored.FirstName = user.FirstName
	stored.LastName = user.LastName
	stored.City = user.City
	stored.UpdatedAt = time.Now().UTC()
	user.UpdatedAt = stored.UpdatedAt
	return nil
}

func (repository *MemoryUserRepository) UpdatePassword(_ context.Context, id int64, passwordHash string) error {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	stored, ok := repository.byID[id]
	if !ok {
		return dberr.ErrNotFound
	}

	stored.PasswordHash = passwordHash
	stored.UpdatedAt = time.Now().UTC()
	return nil
}

package repositories

import (
	"context"

	"github.com/SscSPs/freelanceos/internal/core/domain"
)

// UserReader defines read operations for the identity mirror
type UserReader interface {
	// FindUserByID retrieves a specific user by their ID.
	FindUserByID(ctx context.Context, userID string) (*domain.User, error)

	// FindUserByEmail retrieves a user by email; ErrNotFound when absent.
	FindUserByEmail(ctx context.Context, email string) (*domain.User, error)
}

// UserRepositoryFacade combines all user-related repository interfaces
type UserRepositoryFacade interface {
	UserReader
}

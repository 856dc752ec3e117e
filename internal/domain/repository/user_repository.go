// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"github.com/Danielluzius/coderr-backend/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// ErrProfileNotFound is returned when no profile exists for the requested user.
var ErrProfileNotFound = errors.New("profile not found")

// UserRepository defines the standard operations for user and profile persistence.
// The application layer will depend on this interface, not the concrete implementation.
type UserRepository interface {
	// FindByID retrieves a single user with their profile by user ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByUsername retrieves a single user with their profile by username.
	FindByUsername(ctx context.Context, username string) (*entity.User, error)

	// Create persists a new user together with their profile.
	Create(ctx context.Context, user *entity.User) error

	// Update modifies an existing user and their profile.
	Update(ctx context.Context, user *entity.User) error

	// ListProfilesByRole returns all users carrying a profile of the given role.
	ListProfilesByRole(ctx context.Context, role entity.Role) ([]*entity.User, error)

	// HasBusinessProfile reports whether the given user ID belongs to a
	// business-role profile.
	HasBusinessProfile(ctx context.Context, userID uuid.UUID) (bool, error)
}

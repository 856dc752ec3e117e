// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"github.com/Danielluzius/coderr-backend/internal/domain/entity"

	"github.com/google/uuid"
)

// ProfileUsecase defines the profile read and update operations.
type ProfileUsecase interface {
	// GetProfile returns the user with their profile, 404 when absent.
	GetProfile(ctx context.Context, userID uuid.UUID) (*entity.User, error)

	// UpdateProfile patches profile metadata (and the mutable user fields).
	// Only the owning user may update; the role type is immutable.
	UpdateProfile(ctx context.Context, actor Actor, userID uuid.UUID, input *UpdateProfileInput) (*entity.User, error)

	// ListProfiles returns all profiles carrying the given role.
	ListProfiles(ctx context.Context, role entity.Role) ([]*entity.User, error)
}

// UpdateProfileInput carries the patchable profile fields. Nil means "leave
// unchanged".
type UpdateProfileInput struct {
	FirstName    *string `json:"first_name,omitempty"`
	LastName     *string `json:"last_name,omitempty"`
	Email        *string `json:"email,omitempty" validate:"omitempty,email"`
	File         *string `json:"file,omitempty"`
	Location     *string `json:"location,omitempty"`
	Tel          *string `json:"tel,omitempty"`
	Description  *string `json:"description,omitempty"`
	WorkingHours *string `json:"working_hours,omitempty"`
}

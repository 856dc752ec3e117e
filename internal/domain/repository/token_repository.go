package repository

import (
	"context"
	"errors"

	"github.com/Danielluzius/coderr-backend/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrTokenNotFound is returned when no credential matches the presented key.
var ErrTokenNotFound = errors.New("auth token not found")

// TokenRepository is the explicit credential store of the platform, keyed by
// user identity with create-if-absent semantics.
type TokenRepository interface {
	// GetOrCreate returns the user's existing token, or persists the given
	// freshly generated key when the user has none yet.
	GetOrCreate(ctx context.Context, userID uuid.UUID, freshKey string) (*entity.AuthToken, error)

	// FindByKey resolves a presented token key to its record.
	FindByKey(ctx context.Context, key string) (*entity.AuthToken, error)
}

package repository

import (
	"context"

	"github.com/Danielluzius/coderr-backend/internal/domain/entity"
)

// StatsRepository computes the aggregate platform rollups.
type StatsRepository interface {
	// PlatformStats reads the live counts and average rating in one pass over
	// the current persisted state.
	PlatformStats(ctx context.Context) (*entity.PlatformStats, error)
}

// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"github.com/Danielluzius/coderr-backend/internal/domain/entity"
)

// StatsUsecase serves the public platform rollups.
type StatsUsecase interface {
	// GetBaseInfo computes the live counts and average rating.
	GetBaseInfo(ctx context.Context) (*entity.PlatformStats, error)
}

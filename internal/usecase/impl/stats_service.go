package impl

import (
	"context"
	"log/slog"

	"github.com/Danielluzius/coderr-backend/internal/domain/entity"
	"github.com/Danielluzius/coderr-backend/internal/domain/repository"
	"github.com/Danielluzius/coderr-backend/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// statsService implements the StatsUsecase interface.
type statsService struct {
	statsRepo repository.StatsRepository
	logger    *slog.Logger
}

// StatsServiceParams holds dependencies for statsService, injected by Fx.
type StatsServiceParams struct {
	fx.In

	StatsRepo repository.StatsRepository
	Logger    *slog.Logger
}

// NewStatsService is the constructor for statsService.
func NewStatsService(params StatsServiceParams) usecase.StatsUsecase {
	return &statsService{
		statsRepo: params.StatsRepo,
		logger:    params.Logger,
	}
}

// GetBaseInfo reads the live platform rollups. Always computed from the
// current state, never cached.
func (srv *statsService) GetBaseInfo(ctx context.Context) (*entity.PlatformStats, error) {
	stats, err := srv.statsRepo.PlatformStats(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read platform stats")
	}

	return stats, nil
}

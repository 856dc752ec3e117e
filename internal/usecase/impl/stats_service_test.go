package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/Danielluzius/coderr-backend/internal/domain/entity"
	mockRepo "github.com/Danielluzius/coderr-backend/internal/mocks/repository"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatsService_GetBaseInfo_Success(t *testing.T) {
	statsRepo := mockRepo.NewMockStatsRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	service := NewStatsService(StatsServiceParams{StatsRepo: statsRepo, Logger: logger})

	ctx := context.Background()
	expected := &entity.PlatformStats{
		ReviewCount:          12,
		AverageRating:        4.3,
		BusinessProfileCount: 5,
		OfferCount:           20,
	}

	statsRepo.EXPECT().PlatformStats(ctx).Return(expected, nil)

	stats, err := service.GetBaseInfo(ctx)

	require.NoError(t, err)
	assert.Equal(t, expected, stats)
}

func TestStatsService_GetBaseInfo_RepositoryError(t *testing.T) {
	statsRepo := mockRepo.NewMockStatsRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	service := NewStatsService(StatsServiceParams{StatsRepo: statsRepo, Logger: logger})

	ctx := context.Background()
	statsRepo.EXPECT().PlatformStats(ctx).Return(nil, errors.New("connection refused"))

	stats, err := service.GetBaseInfo(ctx)

	assert.Nil(t, stats)
	assert.Error(t, err)
}

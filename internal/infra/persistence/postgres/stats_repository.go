package postgres

import (
	"context"
	"math"

	"github.com/Danielluzius/coderr-backend/internal/domain/entity"
	"github.com/Danielluzius/coderr-backend/internal/domain/repository"
	"github.com/Danielluzius/coderr-backend/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// statsRepository computes the platform rollups with live aggregate queries.
type statsRepository struct {
	db *gorm.DB
}

// NewStatsRepository is the constructor for statsRepository.
func NewStatsRepository(db *gorm.DB) repository.StatsRepository {
	return &statsRepository{db: db}
}

// PlatformStats reads the counts and the average rating over the current
// persisted state. The average is rounded to one decimal and reported as 0
// when no reviews exist.
func (repo *statsRepository) PlatformStats(ctx context.Context) (*entity.PlatformStats, error) {
	stats := &entity.PlatformStats{}
	db := repo.db.WithContext(ctx)

	if err := db.Model(&model.ReviewModel{}).Count(&stats.ReviewCount).Error; err != nil {
		return nil, errors.Wrap(err, "failed to count reviews")
	}

	if stats.ReviewCount > 0 {
		var avg float64
		err := db.Model(&model.ReviewModel{}).
			Select("AVG(rating)").
			Scan(&avg).Error
		if err != nil {
			return nil, errors.Wrap(err, "failed to average ratings")
		}
		stats.AverageRating = math.Round(avg*10) / 10
	}

	err := db.Model(&model.ProfileModel{}).
		Where("type = ?", entity.RoleBusiness.String()).
		Count(&stats.BusinessProfileCount).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to count business profiles")
	}

	if err := db.Model(&model.OfferModel{}).Count(&stats.OfferCount).Error; err != nil {
		return nil, errors.Wrap(err, "failed to count offers")
	}

	return stats, nil
}

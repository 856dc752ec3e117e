package postgres

import (
	"context"

	"github.com/Danielluzius/coderr-backend/internal/domain/entity"
	"github.com/Danielluzius/coderr-backend/internal/domain/repository"
	"github.com/Danielluzius/coderr-backend/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// tokenRepository implements the domain.TokenRepository interface using GORM.
type tokenRepository struct {
	db *gorm.DB
}

// NewTokenRepository is the constructor for tokenRepository.
func NewTokenRepository(db *gorm.DB) repository.TokenRepository {
	return &tokenRepository{db: db}
}

// GetOrCreate returns the existing token row for the user or inserts the
// fresh key when none exists. A concurrent insert losing the unique race on
// user_id falls back to re-reading the winner's row.
func (repo *tokenRepository) GetOrCreate(ctx context.Context, userID uuid.UUID, freshKey string) (*entity.AuthToken, error) {
	var tokenM model.AuthTokenModel
	err := repo.db.WithContext(ctx).
		First(&tokenM, "user_id = ?", userID).Error
	if err == nil {
		return toAuthTokenDomain(&tokenM), nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errors.Wrap(err, "failed to look up auth token")
	}

	tokenM = model.AuthTokenModel{
		UserID: userID,
		Key:    freshKey,
	}
	if err := repo.db.WithContext(ctx).Create(&tokenM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			var existing model.AuthTokenModel
			if err := repo.db.WithContext(ctx).First(&existing, "user_id = ?", userID).Error; err != nil {
				return nil, errors.Wrap(err, "failed to re-read auth token after insert race")
			}

			return toAuthTokenDomain(&existing), nil
		}

		return nil, errors.Wrap(err, "failed to create auth token")
	}

	return toAuthTokenDomain(&tokenM), nil
}

// FindByKey resolves a presented token key to its record.
func (repo *tokenRepository) FindByKey(ctx context.Context, key string) (*entity.AuthToken, error) {
	var tokenM model.AuthTokenModel
	err := repo.db.WithContext(ctx).
		First(&tokenM, "key = ?", key).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrTokenNotFound
		}

		return nil, errors.Wrap(err, "failed to find auth token by key")
	}

	return toAuthTokenDomain(&tokenM), nil
}

// --- Mapper Functions ---

func toAuthTokenDomain(data *model.AuthTokenModel) *entity.AuthToken {
	if data == nil {
		return nil
	}

	return &entity.AuthToken{
		ID:        data.ID,
		UserID:    data.UserID,
		Key:       data.Key,
		CreatedAt: data.CreatedAt,
	}
}

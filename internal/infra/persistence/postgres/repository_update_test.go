package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/Danielluzius/coderr-backend/internal/domain/entity"
	"github.com/Danielluzius/coderr-backend/internal/infra/persistence/model"
)

// newTestDB opens an in-memory database and migrates the full schema.
// The uuid column defaults only exist on Postgres, so tests assign IDs
// themselves.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&model.UserModel{},
		&model.ProfileModel{},
		&model.OfferModel{},
		&model.OfferDetailModel{},
	))

	return db
}

func seedOffer(t *testing.T, db *gorm.DB) *entity.Offer {
	t.Helper()

	offer := &entity.Offer{
		ID:          uuid.New(),
		UserID:      uuid.New(),
		Title:       "Logo Design",
		Description: "Three logo drafts",
	}
	for _, tier := range entity.RequiredTiers() {
		offer.Details = append(offer.Details, entity.OfferDetail{
			ID:                 uuid.New(),
			OfferID:            offer.ID,
			Title:              "Logo " + tier.String(),
			Revisions:          2,
			DeliveryTimeInDays: 7,
			Price:              decimal.NewFromInt(100),
			Features:           []string{"Logo"},
			OfferType:          tier,
		})
	}

	require.NoError(t, NewOfferRepository(db).Create(context.Background(), offer))

	return offer
}

func TestOfferRepositoryUpdate_PreservesCreatedAt(t *testing.T) {
	db := newTestDB(t)
	repo := NewOfferRepository(db)
	ctx := context.Background()
	seeded := seedOffer(t, db)

	before, err := repo.FindByID(ctx, seeded.ID)
	require.NoError(t, err)
	require.False(t, before.CreatedAt.IsZero())

	before.Title = "Logo & Branding"
	require.NoError(t, repo.Update(ctx, before))

	after, err := repo.FindByID(ctx, seeded.ID)
	require.NoError(t, err)
	assert.Equal(t, "Logo & Branding", after.Title)
	assert.False(t, after.CreatedAt.IsZero())
	assert.WithinDuration(t, before.CreatedAt, after.CreatedAt, time.Second)
}

func TestUserRepositoryUpdate_PreservesCreatedAt(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	user := &entity.User{
		ID:           uuid.New(),
		Username:     "max_mustermann",
		Email:        "max@example.org",
		PasswordHash: "hashed",
		Profile: &entity.Profile{
			Type:     entity.RoleCustomer,
			Location: "Berlin",
		},
	}
	user.Profile.UserID = user.ID
	require.NoError(t, repo.Create(ctx, user))

	before, err := repo.FindByID(ctx, user.ID)
	require.NoError(t, err)
	require.False(t, before.CreatedAt.IsZero())
	require.NotNil(t, before.Profile)
	require.False(t, before.Profile.CreatedAt.IsZero())

	before.FirstName = "Max"
	before.Profile.Location = "Hamburg"
	require.NoError(t, repo.Update(ctx, before))

	after, err := repo.FindByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "Max", after.FirstName)
	assert.Equal(t, "Hamburg", after.Profile.Location)
	assert.False(t, after.CreatedAt.IsZero())
	assert.WithinDuration(t, before.CreatedAt, after.CreatedAt, time.Second)
	assert.False(t, after.Profile.CreatedAt.IsZero())
	assert.WithinDuration(t, before.Profile.CreatedAt, after.Profile.CreatedAt, time.Second)
}

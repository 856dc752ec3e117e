package response

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Danielluzius/coderr-backend/internal/domain/entity"
)

func sampleOffer() *entity.Offer {
	detailID := uuid.New()

	return &entity.Offer{
		ID:     uuid.New(),
		UserID: uuid.New(),
		User: &entity.User{
			Username:  "max_mustermann",
			FirstName: "Max",
			LastName:  "Mustermann",
		},
		Title:     "Logo Design",
		CreatedAt: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
		UpdatedAt: time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC),
		Details: []entity.OfferDetail{
			{ID: detailID, OfferType: entity.TierBasic, Price: decimal.NewFromInt(100), DeliveryTimeInDays: 7},
			{ID: uuid.New(), OfferType: entity.TierStandard, Price: decimal.NewFromInt(200), DeliveryTimeInDays: 5},
			{ID: uuid.New(), OfferType: entity.TierPremium, Price: decimal.NewFromInt(500), DeliveryTimeInDays: 3},
		},
	}
}

func TestNewOfferResponse_ComputedFields(t *testing.T) {
	offer := sampleOffer()

	resp := NewOfferResponse(offer)

	require.NotNil(t, resp.MinPrice)
	assert.True(t, resp.MinPrice.Equal(decimal.NewFromInt(100)))
	require.NotNil(t, resp.MinDeliveryTime)
	assert.Equal(t, 3, *resp.MinDeliveryTime)

	require.Len(t, resp.Details, 3)
	assert.Equal(t, offer.Details[0].ID, resp.Details[0].ID)
	assert.Equal(t, "/api/offerdetails/"+offer.Details[0].ID.String()+"/", resp.Details[0].URL)
}

func TestNewOfferList_EmbedsOwnerBlock(t *testing.T) {
	items := NewOfferList([]*entity.Offer{sampleOffer()})

	require.Len(t, items, 1)
	require.NotNil(t, items[0].UserDetails)
	assert.Equal(t, "max_mustermann", items[0].UserDetails.Username)
	assert.Equal(t, "Max", items[0].UserDetails.FirstName)
}

func TestNewOfferDetailResponse_EmptyFeatures(t *testing.T) {
	detail := &entity.OfferDetail{
		ID:        uuid.New(),
		OfferType: entity.TierBasic,
		Price:     decimal.NewFromInt(50),
	}

	resp := NewOfferDetailResponse(detail)

	// nil features serialize as an empty list, not null
	assert.NotNil(t, resp.Features)
	assert.Empty(t, resp.Features)
}

func TestNewProfileDetail_WithoutProfile(t *testing.T) {
	user := &entity.User{ID: uuid.New(), Username: "orphan", Email: "o@example.org"}

	detail := NewProfileDetail(user)

	assert.Equal(t, user.ID, detail.User)
	assert.Equal(t, "orphan", detail.Username)
	assert.Empty(t, detail.Type)
}

func TestNewBaseInfo(t *testing.T) {
	info := NewBaseInfo(&entity.PlatformStats{
		ReviewCount:          3,
		AverageRating:        4.7,
		BusinessProfileCount: 2,
		OfferCount:           5,
	})

	assert.Equal(t, int64(3), info.ReviewCount)
	assert.InDelta(t, 4.7, info.AverageRating, 0.001)
	assert.Equal(t, int64(2), info.BusinessProfileCount)
	assert.Equal(t, int64(5), info.OfferCount)
}

package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/Danielluzius/coderr-backend/internal/domain/entity"
	domainerrors "github.com/Danielluzius/coderr-backend/internal/domain/errors"
	"github.com/Danielluzius/coderr-backend/internal/domain/repository"
	mockRepo "github.com/Danielluzius/coderr-backend/internal/mocks/repository"
	"github.com/Danielluzius/coderr-backend/internal/usecase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// offerServiceFixtures holds all test dependencies for offer service tests.
type offerServiceFixtures struct {
	service   usecase.OfferUsecase
	txManager *mockRepo.MockTransactionManager
	offerRepo *mockRepo.MockOfferRepository
}

func createTestOfferService(t *testing.T) offerServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	offerRepo := mockRepo.NewMockOfferRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewOfferService(OfferServiceParams{
		TxManager: txManager,
		OfferRepo: offerRepo,
		Logger:    logger,
	})

	return offerServiceFixtures{
		service:   service,
		txManager: txManager,
		offerRepo: offerRepo,
	}
}

func businessActor() usecase.Actor {
	return usecase.Actor{UserID: uuid.New(), Role: entity.RoleBusiness}
}

func validCreateOfferInput() *usecase.CreateOfferInput {
	return &usecase.CreateOfferInput{
		Title:       "Website Design",
		Description: "Professional website design",
		Details: []usecase.OfferDetailInput{
			{
				Title:              "Basic Design",
				Revisions:          2,
				DeliveryTimeInDays: 5,
				Price:              decimal.NewFromInt(100),
				Features:           []string{"Logo Design"},
				OfferType:          "basic",
			},
			{
				Title:              "Standard Design",
				Revisions:          5,
				DeliveryTimeInDays: 7,
				Price:              decimal.NewFromInt(200),
				Features:           []string{"Logo Design", "Flyer"},
				OfferType:          "standard",
			},
			{
				Title:              "Premium Design",
				Revisions:          entity.UnlimitedRevisions,
				DeliveryTimeInDays: 10,
				Price:              decimal.NewFromInt(500),
				Features:           []string{"Logo Design", "Flyer", "Visitenkarten"},
				OfferType:          "premium",
			},
		},
	}
}

func TestOfferService_CreateOffer_Success(t *testing.T) {
	fx := createTestOfferService(t)

	ctx := context.Background()
	actor := businessActor()
	input := validCreateOfferInput()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockOfferRepo := mockRepo.NewMockOfferRepository(t)

			mockFactory.EXPECT().OfferRepo().Return(mockOfferRepo)
			mockOfferRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.Offer")).
				Run(func(ctx context.Context, offer *entity.Offer) {
					offer.ID = uuid.New()
				}).
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	offer, err := fx.service.CreateOffer(ctx, actor, input)

	require.NoError(t, err)
	assert.Equal(t, actor.UserID, offer.UserID)
	assert.Len(t, offer.Details, 3)
	assert.NotNil(t, offer.DetailByTier(entity.TierBasic))
	assert.NotNil(t, offer.DetailByTier(entity.TierStandard))
	assert.NotNil(t, offer.DetailByTier(entity.TierPremium))
}

func TestOfferService_CreateOffer_ForbiddenForCustomer(t *testing.T) {
	fx := createTestOfferService(t)

	actor := usecase.Actor{UserID: uuid.New(), Role: entity.RoleCustomer}

	offer, err := fx.service.CreateOffer(context.Background(), actor, validCreateOfferInput())

	assert.Nil(t, offer)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestOfferService_CreateOffer_IncompleteTierSet(t *testing.T) {
	fx := createTestOfferService(t)

	input := validCreateOfferInput()
	input.Details = input.Details[:2]

	_, err := fx.service.CreateOffer(context.Background(), businessActor(), input)

	var fieldErrs *domainerrors.FieldErrors
	require.ErrorAs(t, err, &fieldErrs)
	assert.Contains(t, fieldErrs.Fields(), "details")
}

func TestOfferService_CreateOffer_DuplicateTier(t *testing.T) {
	fx := createTestOfferService(t)

	input := validCreateOfferInput()
	input.Details[2].OfferType = "basic"

	_, err := fx.service.CreateOffer(context.Background(), businessActor(), input)

	var fieldErrs *domainerrors.FieldErrors
	require.ErrorAs(t, err, &fieldErrs)
	assert.Contains(t, fieldErrs.Fields(), "details")
}

func TestOfferService_UpdateOffer_Success(t *testing.T) {
	fx := createTestOfferService(t)

	ctx := context.Background()
	actor := businessActor()
	offerID := uuid.New()
	newPrice := decimal.NewFromInt(150)
	newTitle := "Basic Design Plus"

	existingOffer := &entity.Offer{
		ID:     offerID,
		UserID: actor.UserID,
		Title:  "Website Design",
		Details: []entity.OfferDetail{
			{OfferType: entity.TierBasic, Price: decimal.NewFromInt(100)},
			{OfferType: entity.TierStandard, Price: decimal.NewFromInt(200)},
			{OfferType: entity.TierPremium, Price: decimal.NewFromInt(500)},
		},
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockOfferRepo := mockRepo.NewMockOfferRepository(t)

			mockFactory.EXPECT().OfferRepo().Return(mockOfferRepo)
			mockOfferRepo.EXPECT().FindByID(ctx, offerID).Return(existingOffer, nil)
			mockOfferRepo.EXPECT().Update(ctx, mock.AnythingOfType("*entity.Offer")).Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	offer, err := fx.service.UpdateOffer(ctx, actor, offerID, &usecase.UpdateOfferInput{
		Details: []usecase.OfferDetailPatch{
			{OfferType: "basic", Title: &newTitle, Price: &newPrice},
		},
	})

	require.NoError(t, err)
	basic := offer.DetailByTier(entity.TierBasic)
	require.NotNil(t, basic)
	assert.Equal(t, "Basic Design Plus", basic.Title)
	assert.True(t, newPrice.Equal(basic.Price))
	// Untouched tiers keep their values.
	assert.True(t, decimal.NewFromInt(500).Equal(offer.DetailByTier(entity.TierPremium).Price))
}

func TestOfferService_UpdateOffer_UnknownTierTag(t *testing.T) {
	fx := createTestOfferService(t)

	ctx := context.Background()
	actor := businessActor()
	offerID := uuid.New()

	existingOffer := &entity.Offer{
		ID:     offerID,
		UserID: actor.UserID,
		Details: []entity.OfferDetail{
			{OfferType: entity.TierBasic},
			{OfferType: entity.TierStandard},
			{OfferType: entity.TierPremium},
		},
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockOfferRepo := mockRepo.NewMockOfferRepository(t)

			mockFactory.EXPECT().OfferRepo().Return(mockOfferRepo)
			mockOfferRepo.EXPECT().FindByID(ctx, offerID).Return(existingOffer, nil)

			return fn(mockFactory)
		})

	_, err := fx.service.UpdateOffer(ctx, actor, offerID, &usecase.UpdateOfferInput{
		Details: []usecase.OfferDetailPatch{{OfferType: "platinum"}},
	})

	var fieldErrs *domainerrors.FieldErrors
	require.ErrorAs(t, err, &fieldErrs)
	assert.Contains(t, fieldErrs.Fields(), "details")
}

func TestOfferService_UpdateOffer_ForbiddenForOtherUser(t *testing.T) {
	fx := createTestOfferService(t)

	ctx := context.Background()
	offerID := uuid.New()

	existingOffer := &entity.Offer{ID: offerID, UserID: uuid.New()}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockOfferRepo := mockRepo.NewMockOfferRepository(t)

			mockFactory.EXPECT().OfferRepo().Return(mockOfferRepo)
			mockOfferRepo.EXPECT().FindByID(ctx, offerID).Return(existingOffer, nil)

			return fn(mockFactory)
		})

	_, err := fx.service.UpdateOffer(ctx, businessActor(), offerID, &usecase.UpdateOfferInput{})

	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestOfferService_DeleteOffer_Success(t *testing.T) {
	fx := createTestOfferService(t)

	ctx := context.Background()
	actor := businessActor()
	offerID := uuid.New()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockOfferRepo := mockRepo.NewMockOfferRepository(t)

			mockFactory.EXPECT().OfferRepo().Return(mockOfferRepo)
			mockOfferRepo.EXPECT().FindByID(ctx, offerID).Return(&entity.Offer{ID: offerID, UserID: actor.UserID}, nil)
			mockOfferRepo.EXPECT().Delete(ctx, offerID).Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	err := fx.service.DeleteOffer(ctx, actor, offerID)

	require.NoError(t, err)
}

func TestOfferService_GetOffer_NotFound(t *testing.T) {
	fx := createTestOfferService(t)

	ctx := context.Background()
	offerID := uuid.New()

	fx.offerRepo.EXPECT().FindByID(ctx, offerID).Return(nil, repository.ErrOfferNotFound)

	offer, err := fx.service.GetOffer(ctx, offerID)

	assert.Nil(t, offer)
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestOfferService_ListOffers_DefaultPagination(t *testing.T) {
	fx := createTestOfferService(t)

	ctx := context.Background()

	fx.offerRepo.EXPECT().
		List(ctx, mock.AnythingOfType("repository.OfferFilter"), repository.PageRequest{Page: 1, Size: 6}).
		Return(&repository.OfferPage{Offers: []*entity.Offer{}, Total: 0}, nil)

	output, err := fx.service.ListOffers(ctx, &usecase.ListOffersInput{})

	require.NoError(t, err)
	assert.Equal(t, 1, output.Page)
	assert.Equal(t, 6, output.PageSize)
	assert.Equal(t, int64(0), output.Count)
}

func TestOfferService_ListOffers_ClampsPageSize(t *testing.T) {
	fx := createTestOfferService(t)

	ctx := context.Background()

	fx.offerRepo.EXPECT().
		List(ctx, mock.AnythingOfType("repository.OfferFilter"), repository.PageRequest{Page: 3, Size: 100}).
		Return(&repository.OfferPage{Offers: []*entity.Offer{}, Total: 250}, nil)

	output, err := fx.service.ListOffers(ctx, &usecase.ListOffersInput{Page: 3, PageSize: 10000})

	require.NoError(t, err)
	assert.Equal(t, 100, output.PageSize)
	assert.Equal(t, int64(250), output.Count)
}

func TestOfferService_ListOffers_PageBeyondLastIsNotFound(t *testing.T) {
	fx := createTestOfferService(t)

	ctx := context.Background()

	// Six offers fill exactly one page of six; page 2 starts past the end.
	fx.offerRepo.EXPECT().
		List(ctx, mock.AnythingOfType("repository.OfferFilter"), repository.PageRequest{Page: 2, Size: 6}).
		Return(&repository.OfferPage{Offers: []*entity.Offer{}, Total: 6}, nil)

	_, err := fx.service.ListOffers(ctx, &usecase.ListOffersInput{Page: 2})

	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestOfferService_ListOffers_EmptyFirstPageIsServed(t *testing.T) {
	fx := createTestOfferService(t)

	ctx := context.Background()

	fx.offerRepo.EXPECT().
		List(ctx, mock.AnythingOfType("repository.OfferFilter"), repository.PageRequest{Page: 1, Size: 6}).
		Return(&repository.OfferPage{Offers: []*entity.Offer{}, Total: 0}, nil)

	output, err := fx.service.ListOffers(ctx, &usecase.ListOffersInput{})

	require.NoError(t, err)
	assert.Empty(t, output.Results)
}

func TestOfferService_ListOffers_OrderingDirection(t *testing.T) {
	fx := createTestOfferService(t)

	ctx := context.Background()

	fx.offerRepo.EXPECT().
		List(ctx, repository.OfferFilter{OrderDescending: false}, repository.PageRequest{Page: 1, Size: 6}).
		Return(&repository.OfferPage{}, nil)

	_, err := fx.service.ListOffers(ctx, &usecase.ListOffersInput{Ordering: "updated_at"})

	require.NoError(t, err)
}

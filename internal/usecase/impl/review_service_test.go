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
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// reviewServiceFixtures holds all test dependencies for review service tests.
type reviewServiceFixtures struct {
	service    usecase.ReviewUsecase
	txManager  *mockRepo.MockTransactionManager
	reviewRepo *mockRepo.MockReviewRepository
	userRepo   *mockRepo.MockUserRepository
}

func createTestReviewService(t *testing.T) reviewServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	reviewRepo := mockRepo.NewMockReviewRepository(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewReviewService(ReviewServiceParams{
		TxManager:  txManager,
		ReviewRepo: reviewRepo,
		UserRepo:   userRepo,
		Logger:     logger,
	})

	return reviewServiceFixtures{
		service:    service,
		txManager:  txManager,
		reviewRepo: reviewRepo,
		userRepo:   userRepo,
	}
}

func TestReviewService_CreateReview_Success(t *testing.T) {
	fx := createTestReviewService(t)

	ctx := context.Background()
	reviewer := usecase.Actor{UserID: uuid.New(), Role: entity.RoleCustomer}
	businessUserID := uuid.New()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)
			mockReviewRepo := mockRepo.NewMockReviewRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockFactory.EXPECT().ReviewRepo().Return(mockReviewRepo)
			mockUserRepo.EXPECT().HasBusinessProfile(ctx, businessUserID).Return(true, nil)
			mockReviewRepo.EXPECT().ExistsForPair(ctx, reviewer.UserID, businessUserID).Return(false, nil)
			mockReviewRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.Review")).
				Run(func(ctx context.Context, review *entity.Review) {
					review.ID = uuid.New()
				}).
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	review, err := fx.service.CreateReview(ctx, reviewer, &usecase.CreateReviewInput{
		BusinessUserID: businessUserID,
		Rating:         4,
		Description:    "Very professional",
	})

	require.NoError(t, err)
	assert.Equal(t, reviewer.UserID, review.ReviewerID)
	assert.Equal(t, businessUserID, review.BusinessUserID)
	assert.Equal(t, 4, review.Rating)
}

func TestReviewService_CreateReview_ForbiddenForBusiness(t *testing.T) {
	fx := createTestReviewService(t)

	actor := usecase.Actor{UserID: uuid.New(), Role: entity.RoleBusiness}

	review, err := fx.service.CreateReview(context.Background(), actor, &usecase.CreateReviewInput{
		BusinessUserID: uuid.New(),
		Rating:         5,
	})

	assert.Nil(t, review)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestReviewService_CreateReview_InvalidRating(t *testing.T) {
	fx := createTestReviewService(t)

	reviewer := usecase.Actor{UserID: uuid.New(), Role: entity.RoleCustomer}

	_, err := fx.service.CreateReview(context.Background(), reviewer, &usecase.CreateReviewInput{
		BusinessUserID: uuid.New(),
		Rating:         6,
	})

	var fieldErrs *domainerrors.FieldErrors
	require.ErrorAs(t, err, &fieldErrs)
	assert.Contains(t, fieldErrs.Fields(), "rating")
}

func TestReviewService_CreateReview_AlreadyReviewed(t *testing.T) {
	fx := createTestReviewService(t)

	ctx := context.Background()
	reviewer := usecase.Actor{UserID: uuid.New(), Role: entity.RoleCustomer}
	businessUserID := uuid.New()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)
			mockReviewRepo := mockRepo.NewMockReviewRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockFactory.EXPECT().ReviewRepo().Return(mockReviewRepo)
			mockUserRepo.EXPECT().HasBusinessProfile(ctx, businessUserID).Return(true, nil)
			mockReviewRepo.EXPECT().ExistsForPair(ctx, reviewer.UserID, businessUserID).Return(true, nil)

			return fn(mockFactory)
		})

	_, err := fx.service.CreateReview(ctx, reviewer, &usecase.CreateReviewInput{
		BusinessUserID: businessUserID,
		Rating:         3,
	})

	var fieldErrs *domainerrors.FieldErrors
	require.ErrorAs(t, err, &fieldErrs)
	assert.Contains(t, fieldErrs.Fields(), "business_user")
}

func TestReviewService_UpdateReview_Success(t *testing.T) {
	fx := createTestReviewService(t)

	ctx := context.Background()
	reviewer := usecase.Actor{UserID: uuid.New(), Role: entity.RoleCustomer}
	reviewID := uuid.New()
	newRating := 2
	newDescription := "Revised opinion"

	existingReview := &entity.Review{
		ID:          reviewID,
		ReviewerID:  reviewer.UserID,
		Rating:      5,
		Description: "First impression",
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockReviewRepo := mockRepo.NewMockReviewRepository(t)

			mockFactory.EXPECT().ReviewRepo().Return(mockReviewRepo)
			mockReviewRepo.EXPECT().FindByID(ctx, reviewID).Return(existingReview, nil)
			mockReviewRepo.EXPECT().Update(ctx, mock.AnythingOfType("*entity.Review")).Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	review, err := fx.service.UpdateReview(ctx, reviewer, reviewID, &usecase.UpdateReviewInput{
		Rating:      &newRating,
		Description: &newDescription,
	})

	require.NoError(t, err)
	assert.Equal(t, 2, review.Rating)
	assert.Equal(t, "Revised opinion", review.Description)
}

func TestReviewService_UpdateReview_ForbiddenForOtherUser(t *testing.T) {
	fx := createTestReviewService(t)

	ctx := context.Background()
	reviewID := uuid.New()

	existingReview := &entity.Review{ID: reviewID, ReviewerID: uuid.New()}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockReviewRepo := mockRepo.NewMockReviewRepository(t)

			mockFactory.EXPECT().ReviewRepo().Return(mockReviewRepo)
			mockReviewRepo.EXPECT().FindByID(ctx, reviewID).Return(existingReview, nil)

			return fn(mockFactory)
		})

	actor := usecase.Actor{UserID: uuid.New(), Role: entity.RoleCustomer}
	_, err := fx.service.UpdateReview(ctx, actor, reviewID, &usecase.UpdateReviewInput{})

	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestReviewService_DeleteReview_Success(t *testing.T) {
	fx := createTestReviewService(t)

	ctx := context.Background()
	reviewer := usecase.Actor{UserID: uuid.New(), Role: entity.RoleCustomer}
	reviewID := uuid.New()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockReviewRepo := mockRepo.NewMockReviewRepository(t)

			mockFactory.EXPECT().ReviewRepo().Return(mockReviewRepo)
			mockReviewRepo.EXPECT().FindByID(ctx, reviewID).Return(&entity.Review{ID: reviewID, ReviewerID: reviewer.UserID}, nil)
			mockReviewRepo.EXPECT().Delete(ctx, reviewID).Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	err := fx.service.DeleteReview(ctx, reviewer, reviewID)

	require.NoError(t, err)
}

func TestReviewService_ListReviews_FilterPassthrough(t *testing.T) {
	fx := createTestReviewService(t)

	ctx := context.Background()
	businessUserID := uuid.New()
	expected := []*entity.Review{{ID: uuid.New()}}

	fx.reviewRepo.EXPECT().
		List(ctx, repository.ReviewFilter{
			BusinessUserID:  &businessUserID,
			OrderBy:         repository.ReviewOrderByRating,
			OrderDescending: true,
		}).
		Return(expected, nil)

	reviews, err := fx.service.ListReviews(ctx, &usecase.ListReviewsInput{
		BusinessUserID: &businessUserID,
		Ordering:       "-rating",
	})

	require.NoError(t, err)
	assert.Equal(t, expected, reviews)
}

func TestParseReviewOrdering(t *testing.T) {
	tests := []struct {
		ordering       string
		wantColumn     repository.ReviewOrdering
		wantDescending bool
	}{
		{"", repository.ReviewOrderByUpdatedAt, true},
		{"-updated_at", repository.ReviewOrderByUpdatedAt, true},
		{"updated_at", repository.ReviewOrderByUpdatedAt, false},
		{"-rating", repository.ReviewOrderByRating, true},
		{"rating", repository.ReviewOrderByRating, false},
		{"created_at", repository.ReviewOrderByUpdatedAt, true},
	}

	for _, tt := range tests {
		column, descending := parseReviewOrdering(tt.ordering)
		assert.Equal(t, tt.wantColumn, column, "ordering %q", tt.ordering)
		assert.Equal(t, tt.wantDescending, descending, "ordering %q", tt.ordering)
	}
}

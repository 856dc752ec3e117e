package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "github.com/Danielluzius/coderr-backend/internal/delivery/context"
	"github.com/Danielluzius/coderr-backend/internal/domain/entity"
	domainerrors "github.com/Danielluzius/coderr-backend/internal/domain/errors"
	"github.com/Danielluzius/coderr-backend/internal/domain/repository"
	"github.com/Danielluzius/coderr-backend/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// reviewService implements the ReviewUsecase interface.
type reviewService struct {
	txManager  repository.TransactionManager
	reviewRepo repository.ReviewRepository
	userRepo   repository.UserRepository
	logger     *slog.Logger
}

// ReviewServiceParams holds dependencies for reviewService, injected by Fx.
type ReviewServiceParams struct {
	fx.In

	TxManager  repository.TransactionManager
	ReviewRepo repository.ReviewRepository
	UserRepo   repository.UserRepository
	Logger     *slog.Logger
}

// NewReviewService is the constructor for reviewService.
func NewReviewService(params ReviewServiceParams) usecase.ReviewUsecase {
	return &reviewService{
		txManager:  params.TxManager,
		reviewRepo: params.ReviewRepo,
		userRepo:   params.UserRepo,
		logger:     params.Logger,
	}
}

func (srv *reviewService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateReview records a customer's rating of a business user. The duplicate
// check and the insert run in one transaction so two concurrent attempts
// cannot both pass; the unique pair constraint backs the check up.
func (srv *reviewService) CreateReview(ctx context.Context, actor usecase.Actor, input *usecase.CreateReviewInput) (*entity.Review, error) {
	srv.log(ctx).Info("Creating review",
		slog.Any("reviewerID", actor.UserID), slog.Any("businessUserID", input.BusinessUserID))

	if !actor.IsCustomer() {
		return nil, errors.Wrap(domainerrors.ErrForbidden, "only customers may write reviews")
	}
	if !entity.IsValidRating(input.Rating) {
		return nil, domainerrors.NewFieldErrors().
			Add("rating", "Rating must be between 1 and 5.")
	}

	var review *entity.Review
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		isBusiness, err := repoFactory.UserRepo().HasBusinessProfile(ctx, input.BusinessUserID)
		if err != nil {
			return errors.Wrap(err, "failed to check business profile")
		}
		if !isBusiness {
			return domainerrors.NewFieldErrors().
				Add("business_user", "No business user with this id.")
		}

		reviewRepo := repoFactory.ReviewRepo()

		exists, err := reviewRepo.ExistsForPair(ctx, actor.UserID, input.BusinessUserID)
		if err != nil {
			return errors.Wrap(err, "failed to check for an existing review")
		}
		if exists {
			return domainerrors.NewFieldErrors().
				Add("business_user", "You have already reviewed this business user.")
		}

		review = &entity.Review{
			BusinessUserID: input.BusinessUserID,
			ReviewerID:     actor.UserID,
			Rating:         input.Rating,
			Description:    input.Description,
		}
		if err := reviewRepo.Create(ctx, review); err != nil {
			return errors.Wrap(err, "failed to create review")
		}

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute review creation transaction")
	}

	srv.log(ctx).Debug("Review created", slog.Any("reviewID", review.ID))

	return review, nil
}

// UpdateReview patches rating or description. Only the author may edit.
func (srv *reviewService) UpdateReview(ctx context.Context, actor usecase.Actor, reviewID uuid.UUID, input *usecase.UpdateReviewInput) (*entity.Review, error) {
	srv.log(ctx).Info("Updating review", slog.Any("reviewID", reviewID), slog.Any("userID", actor.UserID))

	if input.Rating != nil && !entity.IsValidRating(*input.Rating) {
		return nil, domainerrors.NewFieldErrors().
			Add("rating", "Rating must be between 1 and 5.")
	}

	var updated *entity.Review
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		reviewRepo := repoFactory.ReviewRepo()

		review, err := reviewRepo.FindByID(ctx, reviewID)
		if err != nil {
			if errors.Is(err, repository.ErrReviewNotFound) {
				return errors.Wrap(domainerrors.ErrNotFound, "review not found")
			}

			return errors.Wrap(err, "failed to find review")
		}

		if review.ReviewerID != actor.UserID {
			return errors.Wrap(domainerrors.ErrForbidden, "review belongs to another user")
		}

		if input.Rating != nil {
			review.Rating = *input.Rating
		}
		if input.Description != nil {
			review.Description = *input.Description
		}

		if err := reviewRepo.Update(ctx, review); err != nil {
			return errors.Wrap(err, "failed to update review")
		}
		updated = review

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute review update transaction")
	}

	return updated, nil
}

// DeleteReview removes a review. Only the author may delete.
func (srv *reviewService) DeleteReview(ctx context.Context, actor usecase.Actor, reviewID uuid.UUID) error {
	srv.log(ctx).Info("Deleting review", slog.Any("reviewID", reviewID), slog.Any("userID", actor.UserID))

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		reviewRepo := repoFactory.ReviewRepo()

		review, err := reviewRepo.FindByID(ctx, reviewID)
		if err != nil {
			if errors.Is(err, repository.ErrReviewNotFound) {
				return errors.Wrap(domainerrors.ErrNotFound, "review not found")
			}

			return errors.Wrap(err, "failed to find review")
		}

		if review.ReviewerID != actor.UserID {
			return errors.Wrap(domainerrors.ErrForbidden, "review belongs to another user")
		}

		if err := reviewRepo.Delete(ctx, reviewID); err != nil {
			return errors.Wrap(err, "failed to delete review")
		}

		return nil
	})
	if err != nil {
		return errors.Wrap(err, "failed to execute review deletion transaction")
	}

	return nil
}

// ListReviews returns all reviews matching the filters, newest first unless
// an explicit ordering is requested.
func (srv *reviewService) ListReviews(ctx context.Context, input *usecase.ListReviewsInput) ([]*entity.Review, error) {
	orderBy, descending := parseReviewOrdering(input.Ordering)

	reviews, err := srv.reviewRepo.List(ctx, repository.ReviewFilter{
		BusinessUserID:  input.BusinessUserID,
		ReviewerID:      input.ReviewerID,
		OrderBy:         orderBy,
		OrderDescending: descending,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list reviews")
	}

	return reviews, nil
}

func parseReviewOrdering(ordering string) (repository.ReviewOrdering, bool) {
	descending := true
	if column, ok := strings.CutPrefix(ordering, "-"); ok {
		ordering = column
	} else if ordering != "" {
		descending = false
	}

	switch repository.ReviewOrdering(ordering) {
	case repository.ReviewOrderByRating:
		return repository.ReviewOrderByRating, descending
	case repository.ReviewOrderByUpdatedAt:
		return repository.ReviewOrderByUpdatedAt, descending
	default:
		return repository.ReviewOrderByUpdatedAt, true
	}
}

// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"
	"strings"

	"github.com/Danielluzius/coderr-backend/config"
	deliverycontext "github.com/Danielluzius/coderr-backend/internal/delivery/context"
	"github.com/Danielluzius/coderr-backend/internal/domain/entity"
	domainerrors "github.com/Danielluzius/coderr-backend/internal/domain/errors"
	"github.com/Danielluzius/coderr-backend/internal/domain/repository"
	"github.com/Danielluzius/coderr-backend/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	fallbackPageSize = 6
	fallbackMaxPage  = 100
)

// offerService implements the OfferUsecase interface.
type offerService struct {
	txManager       repository.TransactionManager
	offerRepo       repository.OfferRepository
	defaultPageSize int
	maxPageSize     int
	logger          *slog.Logger
}

// OfferServiceParams holds dependencies for offerService, injected by Fx.
type OfferServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	OfferRepo repository.OfferRepository
	Config    *config.Config
	Logger    *slog.Logger
}

// NewOfferService is the constructor for offerService.
func NewOfferService(params OfferServiceParams) usecase.OfferUsecase {
	defaultPageSize := fallbackPageSize
	maxPageSize := fallbackMaxPage
	if params.Config != nil && params.Config.Pagination != nil {
		if params.Config.Pagination.DefaultPageSize > 0 {
			defaultPageSize = params.Config.Pagination.DefaultPageSize
		}
		if params.Config.Pagination.MaxPageSize > 0 {
			maxPageSize = params.Config.Pagination.MaxPageSize
		}
	}

	return &offerService{
		txManager:       params.TxManager,
		offerRepo:       params.OfferRepo,
		defaultPageSize: defaultPageSize,
		maxPageSize:     maxPageSize,
		logger:          params.Logger,
	}
}

func (srv *offerService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateOffer publishes a new offer with its three tiers as one atomic unit.
func (srv *offerService) CreateOffer(ctx context.Context, actor usecase.Actor, input *usecase.CreateOfferInput) (*entity.Offer, error) {
	srv.log(ctx).Info("Creating offer", slog.Any("userID", actor.UserID))

	if !actor.IsBusiness() {
		return nil, errors.Wrap(domainerrors.ErrForbidden, "only business users may create offers")
	}
	if err := validateOfferDetails(input.Details); err != nil {
		srv.log(ctx).Warn("Offer validation failed", slog.Any("userID", actor.UserID), slog.Any("error", err))

		return nil, err
	}

	offer := &entity.Offer{
		UserID:      actor.UserID,
		Title:       input.Title,
		Image:       input.Image,
		Description: input.Description,
		Details:     make([]entity.OfferDetail, 0, len(input.Details)),
	}
	for _, detail := range input.Details {
		offer.Details = append(offer.Details, entity.OfferDetail{
			Title:              detail.Title,
			Revisions:          detail.Revisions,
			DeliveryTimeInDays: detail.DeliveryTimeInDays,
			Price:              detail.Price,
			Features:           detail.Features,
			OfferType:          entity.TierType(detail.OfferType),
		})
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.OfferRepo().Create(ctx, offer); err != nil {
			return errors.Wrap(err, "failed to create offer")
		}

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute offer creation transaction")
	}

	srv.log(ctx).Debug("Offer created", slog.Any("offerID", offer.ID))

	return offer, nil
}

// GetOffer retrieves one offer with its details.
func (srv *offerService) GetOffer(ctx context.Context, id uuid.UUID) (*entity.Offer, error) {
	offer, err := srv.offerRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrOfferNotFound) {
			return nil, errors.Wrap(domainerrors.ErrNotFound, "offer not found")
		}

		return nil, errors.Wrap(err, "failed to find offer")
	}

	return offer, nil
}

// GetOfferDetail retrieves one pricing tier.
func (srv *offerService) GetOfferDetail(ctx context.Context, id uuid.UUID) (*entity.OfferDetail, error) {
	detail, err := srv.offerRepo.FindDetailByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrOfferDetailNotFound) {
			return nil, errors.Wrap(domainerrors.ErrNotFound, "offer detail not found")
		}

		return nil, errors.Wrap(err, "failed to find offer detail")
	}

	return detail, nil
}

// UpdateOffer patches an offer's top-level fields and a subset of its tiers.
// Each detail patch addresses an existing tier by its tag; a tag the offer
// does not carry is rejected instead of silently matching nothing.
func (srv *offerService) UpdateOffer(ctx context.Context, actor usecase.Actor, id uuid.UUID, input *usecase.UpdateOfferInput) (*entity.Offer, error) {
	srv.log(ctx).Info("Updating offer", slog.Any("offerID", id), slog.Any("userID", actor.UserID))

	var updated *entity.Offer
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		offerRepo := repoFactory.OfferRepo()

		offer, err := offerRepo.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrOfferNotFound) {
				return errors.Wrap(domainerrors.ErrNotFound, "offer not found")
			}

			return errors.Wrap(err, "failed to find offer")
		}

		if offer.UserID != actor.UserID {
			return errors.Wrap(domainerrors.ErrForbidden, "offer belongs to another user")
		}

		if err := applyOfferPatch(offer, input); err != nil {
			return err
		}

		if err := offerRepo.Update(ctx, offer); err != nil {
			return errors.Wrap(err, "failed to update offer")
		}
		updated = offer

		return nil
	})

	if err != nil {
		return nil, errors.Wrap(err, "failed to execute offer update transaction")
	}

	return updated, nil
}

// DeleteOffer removes an offer; its details go with it by cascade. Existing
// orders are untouched since they hold copied tier data.
func (srv *offerService) DeleteOffer(ctx context.Context, actor usecase.Actor, id uuid.UUID) error {
	srv.log(ctx).Info("Deleting offer", slog.Any("offerID", id), slog.Any("userID", actor.UserID))

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		offerRepo := repoFactory.OfferRepo()

		offer, err := offerRepo.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrOfferNotFound) {
				return errors.Wrap(domainerrors.ErrNotFound, "offer not found")
			}

			return errors.Wrap(err, "failed to find offer")
		}

		if offer.UserID != actor.UserID {
			return errors.Wrap(domainerrors.ErrForbidden, "offer belongs to another user")
		}

		if err := offerRepo.Delete(ctx, id); err != nil {
			return errors.Wrap(err, "failed to delete offer")
		}

		return nil
	})

	if err != nil {
		return errors.Wrap(err, "failed to execute offer deletion transaction")
	}

	return nil
}

// ListOffers returns a filtered page of offers ordered by updated_at.
func (srv *offerService) ListOffers(ctx context.Context, input *usecase.ListOffersInput) (*usecase.OfferListOutput, error) {
	page := input.Page
	if page < 1 {
		page = 1
	}
	size := input.PageSize
	if size < 1 {
		size = srv.defaultPageSize
	}
	if size > srv.maxPageSize {
		size = srv.maxPageSize
	}

	filter := repository.OfferFilter{
		CreatorID:       input.CreatorID,
		MinPrice:        input.MinPrice,
		MaxDeliveryTime: input.MaxDeliveryTime,
		Search:          strings.TrimSpace(input.Search),
		OrderDescending: input.Ordering != "updated_at",
	}

	result, err := srv.offerRepo.List(ctx, filter, repository.PageRequest{Page: page, Size: size})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list offers")
	}

	// Page 1 is always servable, even when empty. Anything past the last
	// page is not a resource.
	if page > 1 && int64(repository.PageRequest{Page: page, Size: size}.Offset()) >= result.Total {
		return nil, errors.Wrap(domainerrors.ErrNotFound, "invalid page")
	}

	return &usecase.OfferListOutput{
		Count:    result.Total,
		Page:     page,
		PageSize: size,
		Results:  result.Offers,
	}, nil
}

// validateOfferDetails enforces the hard tier invariant: exactly three
// details whose tags are exactly {basic, standard, premium}.
func validateOfferDetails(details []usecase.OfferDetailInput) error {
	tiers := make([]entity.TierType, 0, len(details))
	for _, detail := range details {
		tiers = append(tiers, entity.TierType(detail.OfferType))
	}

	if !entity.IsCompleteTierSet(tiers) {
		return domainerrors.NewFieldErrors().
			Add("details", "Exactly 3 details are required (basic, standard, premium).")
	}

	return nil
}

func applyOfferPatch(offer *entity.Offer, input *usecase.UpdateOfferInput) error {
	if input.Title != nil {
		offer.Title = *input.Title
	}
	if input.Image != nil {
		offer.Image = *input.Image
	}
	if input.Description != nil {
		offer.Description = *input.Description
	}

	for _, patch := range input.Details {
		tier := entity.TierType(patch.OfferType)
		detail := offer.DetailByTier(tier)
		if detail == nil {
			return domainerrors.NewFieldErrors().
				Add("details", "Offer has no detail with offer_type '"+patch.OfferType+"'.")
		}

		if patch.Title != nil {
			detail.Title = *patch.Title
		}
		if patch.Revisions != nil {
			detail.Revisions = *patch.Revisions
		}
		if patch.DeliveryTimeInDays != nil {
			detail.DeliveryTimeInDays = *patch.DeliveryTimeInDays
		}
		if patch.Price != nil {
			detail.Price = *patch.Price
		}
		if patch.Features != nil {
			detail.Features = *patch.Features
		}
	}

	return nil
}

package postgres

import (
	"context"

	"github.com/Danielluzius/coderr-backend/internal/domain/entity"
	domainerrors "github.com/Danielluzius/coderr-backend/internal/domain/errors"
	"github.com/Danielluzius/coderr-backend/internal/domain/repository"
	"github.com/Danielluzius/coderr-backend/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// offerRepository implements the domain.OfferRepository interface using GORM.
type offerRepository struct {
	db *gorm.DB
}

// NewOfferRepository is the constructor for offerRepository.
func NewOfferRepository(db *gorm.DB) repository.OfferRepository {
	return &offerRepository{db: db}
}

// Create persists an offer together with its details in one insert chain.
func (repo *offerRepository) Create(ctx context.Context, offer *entity.Offer) error {
	offerM := fromOfferDomain(offer)

	if err := repo.db.WithContext(ctx).Create(offerM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrNotFound.WrapMessage("offer owner does not exist")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create offer")
	}

	syncOfferEntity(offer, offerM)

	return nil
}

// FindByID retrieves an offer with its details and owning user.
func (repo *offerRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Offer, error) {
	var offerM model.OfferModel
	err := repo.db.WithContext(ctx).
		Preload("Details").
		Preload("User.Profile").
		First(&offerM, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOfferNotFound
		}

		return nil, errors.Wrap(err, "failed to find offer by id")
	}

	return toOfferDomain(&offerM), nil
}

// FindDetailByID retrieves a single offer detail.
func (repo *offerRepository) FindDetailByID(ctx context.Context, id uuid.UUID) (*entity.OfferDetail, error) {
	var detailM model.OfferDetailModel
	err := repo.db.WithContext(ctx).
		First(&detailM, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOfferDetailNotFound
		}

		return nil, errors.Wrap(err, "failed to find offer detail by id")
	}

	detail := toOfferDetailDomain(&detailM)

	return &detail, nil
}

// Update persists changes to an offer and its details. The details carry
// their existing IDs, so FullSaveAssociations updates rows in place.
func (repo *offerRepository) Update(ctx context.Context, offer *entity.Offer) error {
	offerM := fromOfferDomain(offer)
	offerM.CreatedAt = offer.CreatedAt

	err := repo.db.WithContext(ctx).
		Session(&gorm.Session{FullSaveAssociations: true}).
		Save(offerM).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update offer")
	}

	syncOfferEntity(offer, offerM)

	return nil
}

// Delete removes an offer. The details follow via the cascading foreign key.
func (repo *offerRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Delete(&model.OfferModel{}, "id = ?", id)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete offer")
	}
	if result.RowsAffected == 0 {
		return repository.ErrOfferNotFound
	}

	return nil
}

// List returns one page of offers matching the filter plus the total count.
// The tier bounds match offers having ANY detail satisfying them, expressed
// as EXISTS subqueries so an offer is never duplicated by the join.
func (repo *offerRepository) List(
	ctx context.Context, filter repository.OfferFilter, page repository.PageRequest,
) (*repository.OfferPage, error) {
	query := repo.db.WithContext(ctx).Model(&model.OfferModel{})

	if filter.CreatorID != nil {
		query = query.Where("offers.user_id = ?", *filter.CreatorID)
	}
	if filter.MinPrice != nil {
		query = query.Where(
			"EXISTS (SELECT 1 FROM offer_details d WHERE d.offer_id = offers.id AND d.price >= ?)",
			*filter.MinPrice,
		)
	}
	if filter.MaxDeliveryTime != nil {
		query = query.Where(
			"EXISTS (SELECT 1 FROM offer_details d WHERE d.offer_id = offers.id AND d.delivery_time_in_days <= ?)",
			*filter.MaxDeliveryTime,
		)
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where("offers.title ILIKE ? OR offers.description ILIKE ?", pattern, pattern)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, errors.Wrap(err, "failed to count offers")
	}

	direction := "ASC"
	if filter.OrderDescending {
		direction = "DESC"
	}

	var offerModels []model.OfferModel
	err := query.
		Order("offers.updated_at " + direction).
		Offset(page.Offset()).
		Limit(page.Size).
		Preload("Details").
		Preload("User.Profile").
		Find(&offerModels).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list offers")
	}

	offers := make([]*entity.Offer, 0, len(offerModels))
	for i := range offerModels {
		offers = append(offers, toOfferDomain(&offerModels[i]))
	}

	return &repository.OfferPage{Offers: offers, Total: total}, nil
}

// --- Mapper Functions ---

func toOfferDomain(data *model.OfferModel) *entity.Offer {
	if data == nil {
		return nil
	}

	details := make([]entity.OfferDetail, 0, len(data.Details))
	for i := range data.Details {
		details = append(details, toOfferDetailDomain(&data.Details[i]))
	}

	return &entity.Offer{
		ID:          data.ID,
		UserID:      data.UserID,
		User:        toUserDomain(data.User),
		Title:       data.Title,
		Image:       data.Image,
		Description: data.Description,
		Details:     details,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

func toOfferDetailDomain(data *model.OfferDetailModel) entity.OfferDetail {
	return entity.OfferDetail{
		ID:                 data.ID,
		OfferID:            data.OfferID,
		Title:              data.Title,
		Revisions:          data.Revisions,
		DeliveryTimeInDays: data.DeliveryTimeInDays,
		Price:              data.Price,
		Features:           data.Features,
		OfferType:          entity.TierType(data.OfferType),
	}
}

func fromOfferDomain(data *entity.Offer) *model.OfferModel {
	if data == nil {
		return nil
	}

	details := make([]model.OfferDetailModel, 0, len(data.Details))
	for i := range data.Details {
		d := &data.Details[i]
		details = append(details, model.OfferDetailModel{
			ID:                 d.ID,
			OfferID:            d.OfferID,
			Title:              d.Title,
			Revisions:          d.Revisions,
			DeliveryTimeInDays: d.DeliveryTimeInDays,
			Price:              d.Price,
			Features:           d.Features,
			OfferType:          d.OfferType.String(),
		})
	}

	return &model.OfferModel{
		ID:          data.ID,
		UserID:      data.UserID,
		Title:       data.Title,
		Image:       data.Image,
		Description: data.Description,
		Details:     details,
	}
}

// syncOfferEntity copies generated IDs and timestamps back onto the entity
// after an insert or save.
func syncOfferEntity(offer *entity.Offer, offerM *model.OfferModel) {
	offer.ID = offerM.ID
	offer.CreatedAt = offerM.CreatedAt
	offer.UpdatedAt = offerM.UpdatedAt
	for i := range offerM.Details {
		if i < len(offer.Details) {
			offer.Details[i].ID = offerM.Details[i].ID
			offer.Details[i].OfferID = offerM.Details[i].OfferID
		}
	}
}

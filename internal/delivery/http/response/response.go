// Package response holds the wire shapes the handlers project entities into.
package response

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Danielluzius/coderr-backend/internal/domain/entity"
)

// timeFormat is the timestamp layout used across all responses.
const timeFormat = time.RFC3339

// UserDetails is the reduced owner block embedded in offer responses.
type UserDetails struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Username  string `json:"username"`
}

// NewUserDetails projects the owner block from a loaded user, or nil when the
// user was not preloaded.
func NewUserDetails(user *entity.User) *UserDetails {
	if user == nil {
		return nil
	}

	return &UserDetails{
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Username:  user.Username,
	}
}

// ProfileDetail is the full profile shape served by the profile endpoint.
type ProfileDetail struct {
	User         uuid.UUID `json:"user"`
	Username     string    `json:"username"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	File         string    `json:"file"`
	Location     string    `json:"location"`
	Tel          string    `json:"tel"`
	Description  string    `json:"description"`
	WorkingHours string    `json:"working_hours"`
	Type         string    `json:"type"`
	Email        string    `json:"email"`
	CreatedAt    string    `json:"created_at"`
}

// NewProfileDetail projects a user with profile into the full profile shape.
func NewProfileDetail(user *entity.User) *ProfileDetail {
	detail := &ProfileDetail{
		User:      user.ID,
		Username:  user.Username,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Email:     user.Email,
	}
	if user.Profile != nil {
		detail.File = user.Profile.File
		detail.Location = user.Profile.Location
		detail.Tel = user.Profile.Tel
		detail.Description = user.Profile.Description
		detail.WorkingHours = user.Profile.WorkingHours
		detail.Type = user.Profile.Type.String()
		detail.CreatedAt = user.Profile.CreatedAt.Format(timeFormat)
	}

	return detail
}

// BusinessProfileItem is one entry of the business profile list.
type BusinessProfileItem struct {
	User         uuid.UUID `json:"user"`
	Username     string    `json:"username"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	File         string    `json:"file"`
	Location     string    `json:"location"`
	Tel          string    `json:"tel"`
	Description  string    `json:"description"`
	WorkingHours string    `json:"working_hours"`
	Type         string    `json:"type"`
}

// NewBusinessProfileList projects the business profile list.
func NewBusinessProfileList(users []*entity.User) []*BusinessProfileItem {
	items := make([]*BusinessProfileItem, 0, len(users))
	for _, user := range users {
		item := &BusinessProfileItem{
			User:      user.ID,
			Username:  user.Username,
			FirstName: user.FirstName,
			LastName:  user.LastName,
		}
		if user.Profile != nil {
			item.File = user.Profile.File
			item.Location = user.Profile.Location
			item.Tel = user.Profile.Tel
			item.Description = user.Profile.Description
			item.WorkingHours = user.Profile.WorkingHours
			item.Type = user.Profile.Type.String()
		}
		items = append(items, item)
	}

	return items
}

// CustomerProfileItem is one entry of the reduced customer profile list.
type CustomerProfileItem struct {
	User      uuid.UUID `json:"user"`
	Username  string    `json:"username"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	File      string    `json:"file"`
	Type      string    `json:"type"`
}

// NewCustomerProfileList projects the customer profile list.
func NewCustomerProfileList(users []*entity.User) []*CustomerProfileItem {
	items := make([]*CustomerProfileItem, 0, len(users))
	for _, user := range users {
		item := &CustomerProfileItem{
			User:      user.ID,
			Username:  user.Username,
			FirstName: user.FirstName,
			LastName:  user.LastName,
		}
		if user.Profile != nil {
			item.File = user.Profile.File
			item.Type = user.Profile.Type.String()
		}
		items = append(items, item)
	}

	return items
}

// OfferDetailRef is the stub reference to one tier inside an offer response.
type OfferDetailRef struct {
	ID  uuid.UUID `json:"id"`
	URL string    `json:"url"`
}

// OfferResponse is the offer shape of the single-offer endpoint.
type OfferResponse struct {
	ID              uuid.UUID        `json:"id"`
	User            uuid.UUID        `json:"user"`
	Title           string           `json:"title"`
	Image           string           `json:"image"`
	Description     string           `json:"description"`
	CreatedAt       string           `json:"created_at"`
	UpdatedAt       string           `json:"updated_at"`
	Details         []OfferDetailRef `json:"details"`
	MinPrice        *decimal.Decimal `json:"min_price"`
	MinDeliveryTime *int             `json:"min_delivery_time"`
}

// OfferListItem extends the offer shape with the embedded owner block.
type OfferListItem struct {
	OfferResponse
	UserDetails *UserDetails `json:"user_details"`
}

// NewOfferResponse projects a single offer.
func NewOfferResponse(offer *entity.Offer) *OfferResponse {
	refs := make([]OfferDetailRef, 0, len(offer.Details))
	for i := range offer.Details {
		id := offer.Details[i].ID
		refs = append(refs, OfferDetailRef{
			ID:  id,
			URL: fmt.Sprintf("/api/offerdetails/%s/", id),
		})
	}

	return &OfferResponse{
		ID:              offer.ID,
		User:            offer.UserID,
		Title:           offer.Title,
		Image:           offer.Image,
		Description:     offer.Description,
		CreatedAt:       offer.CreatedAt.Format(timeFormat),
		UpdatedAt:       offer.UpdatedAt.Format(timeFormat),
		Details:         refs,
		MinPrice:        offer.MinPrice(),
		MinDeliveryTime: offer.MinDeliveryTime(),
	}
}

// NewOfferList projects one page of offers with their owner blocks.
func NewOfferList(offers []*entity.Offer) []*OfferListItem {
	items := make([]*OfferListItem, 0, len(offers))
	for _, offer := range offers {
		items = append(items, &OfferListItem{
			OfferResponse: *NewOfferResponse(offer),
			UserDetails:   NewUserDetails(offer.User),
		})
	}

	return items
}

// OfferPage is the paginated envelope of the offer list endpoint.
type OfferPage struct {
	Count    int64            `json:"count"`
	Page     int              `json:"page"`
	PageSize int              `json:"page_size"`
	Results  []*OfferListItem `json:"results"`
}

// OfferDetailResponse is the full tier shape of the offerdetails endpoint.
type OfferDetailResponse struct {
	ID                 uuid.UUID       `json:"id"`
	Title              string          `json:"title"`
	Revisions          int             `json:"revisions"`
	DeliveryTimeInDays int             `json:"delivery_time_in_days"`
	Price              decimal.Decimal `json:"price"`
	Features           []string        `json:"features"`
	OfferType          string          `json:"offer_type"`
}

// NewOfferDetailResponse projects one tier.
func NewOfferDetailResponse(detail *entity.OfferDetail) *OfferDetailResponse {
	features := detail.Features
	if features == nil {
		features = []string{}
	}

	return &OfferDetailResponse{
		ID:                 detail.ID,
		Title:              detail.Title,
		Revisions:          detail.Revisions,
		DeliveryTimeInDays: detail.DeliveryTimeInDays,
		Price:              detail.Price,
		Features:           features,
		OfferType:          detail.OfferType.String(),
	}
}

// OrderResponse is the order shape of the order endpoints.
type OrderResponse struct {
	ID                 uuid.UUID       `json:"id"`
	CustomerUser       uuid.UUID       `json:"customer_user"`
	BusinessUser       uuid.UUID       `json:"business_user"`
	Title              string          `json:"title"`
	Revisions          int             `json:"revisions"`
	DeliveryTimeInDays int             `json:"delivery_time_in_days"`
	Price              decimal.Decimal `json:"price"`
	Features           []string        `json:"features"`
	OfferType          string          `json:"offer_type"`
	Status             string          `json:"status"`
	CreatedAt          string          `json:"created_at"`
	UpdatedAt          string          `json:"updated_at"`
}

// NewOrderResponse projects one order.
func NewOrderResponse(order *entity.Order) *OrderResponse {
	features := order.Features
	if features == nil {
		features = []string{}
	}

	return &OrderResponse{
		ID:                 order.ID,
		CustomerUser:       order.CustomerUserID,
		BusinessUser:       order.BusinessUserID,
		Title:              order.Title,
		Revisions:          order.Revisions,
		DeliveryTimeInDays: order.DeliveryTimeInDays,
		Price:              order.Price,
		Features:           features,
		OfferType:          order.OfferType.String(),
		Status:             order.Status.String(),
		CreatedAt:          order.CreatedAt.Format(timeFormat),
		UpdatedAt:          order.UpdatedAt.Format(timeFormat),
	}
}

// NewOrderList projects an order list.
func NewOrderList(orders []*entity.Order) []*OrderResponse {
	items := make([]*OrderResponse, 0, len(orders))
	for _, order := range orders {
		items = append(items, NewOrderResponse(order))
	}

	return items
}

// OrderCount is the in-progress order count shape.
type OrderCount struct {
	OrderCount int64 `json:"order_count"`
}

// CompletedOrderCount is the completed order count shape.
type CompletedOrderCount struct {
	CompletedOrderCount int64 `json:"completed_order_count"`
}

// ReviewResponse is the review shape of the review endpoints.
type ReviewResponse struct {
	ID           uuid.UUID `json:"id"`
	BusinessUser uuid.UUID `json:"business_user"`
	Reviewer     uuid.UUID `json:"reviewer"`
	Rating       int       `json:"rating"`
	Description  string    `json:"description"`
	CreatedAt    string    `json:"created_at"`
	UpdatedAt    string    `json:"updated_at"`
}

// NewReviewResponse projects one review.
func NewReviewResponse(review *entity.Review) *ReviewResponse {
	return &ReviewResponse{
		ID:           review.ID,
		BusinessUser: review.BusinessUserID,
		Reviewer:     review.ReviewerID,
		Rating:       review.Rating,
		Description:  review.Description,
		CreatedAt:    review.CreatedAt.Format(timeFormat),
		UpdatedAt:    review.UpdatedAt.Format(timeFormat),
	}
}

// NewReviewList projects a review list.
func NewReviewList(reviews []*entity.Review) []*ReviewResponse {
	items := make([]*ReviewResponse, 0, len(reviews))
	for _, review := range reviews {
		items = append(items, NewReviewResponse(review))
	}

	return items
}

// BaseInfo is the public platform rollup shape.
type BaseInfo struct {
	ReviewCount          int64   `json:"review_count"`
	AverageRating        float64 `json:"average_rating"`
	BusinessProfileCount int64   `json:"business_profile_count"`
	OfferCount           int64   `json:"offer_count"`
}

// NewBaseInfo projects the platform stats.
func NewBaseInfo(stats *entity.PlatformStats) *BaseInfo {
	return &BaseInfo{
		ReviewCount:          stats.ReviewCount,
		AverageRating:        stats.AverageRating,
		BusinessProfileCount: stats.BusinessProfileCount,
		OfferCount:           stats.OfferCount,
	}
}

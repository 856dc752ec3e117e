package handler

import (
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/Danielluzius/coderr-backend/internal/delivery/http/middleware"
	"github.com/Danielluzius/coderr-backend/internal/delivery/http/response"
	domainerrors "github.com/Danielluzius/coderr-backend/internal/domain/errors"
	"github.com/Danielluzius/coderr-backend/internal/usecase"
)

// ReviewHandler holds dependencies for review ledger handlers.
type ReviewHandler struct {
	uc     usecase.ReviewUsecase
	logger *slog.Logger
}

// NewReviewHandler is the constructor for ReviewHandler, injected by Fx.
func NewReviewHandler(uc usecase.ReviewUsecase, logger *slog.Logger) *ReviewHandler {
	return &ReviewHandler{uc: uc, logger: logger}
}

// CreateReview records a rating for a business user.
func (h *ReviewHandler) CreateReview(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return domainerrors.ErrUnauthenticated
	}

	var input usecase.CreateReviewInput
	if err := c.Bind(&input); err != nil {
		return domainerrors.ErrValidationFailed.WrapMessage("invalid review input")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	review, err := h.uc.CreateReview(c.Request().Context(), actor, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusCreated, response.NewReviewResponse(review))
}

// UpdateReview patches a review's rating or description.
func (h *ReviewHandler) UpdateReview(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return domainerrors.ErrUnauthenticated
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return domainerrors.ErrNotFound
	}

	var input usecase.UpdateReviewInput
	if err := c.Bind(&input); err != nil {
		return domainerrors.ErrValidationFailed.WrapMessage("invalid review input")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	review, err := h.uc.UpdateReview(c.Request().Context(), actor, id, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, response.NewReviewResponse(review))
}

// DeleteReview removes a review.
func (h *ReviewHandler) DeleteReview(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return domainerrors.ErrUnauthenticated
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return domainerrors.ErrNotFound
	}

	if err := h.uc.DeleteReview(c.Request().Context(), actor, id); err != nil {
		return errors.WithStack(err)
	}

	return c.NoContent(http.StatusNoContent)
}

// ListReviews serves all reviews matching the query filters.
func (h *ReviewHandler) ListReviews(c echo.Context) error {
	input := &usecase.ListReviewsInput{
		Ordering: c.QueryParam("ordering"),
	}
	fieldErrs := domainerrors.NewFieldErrors()

	if raw := c.QueryParam("business_user_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			fieldErrs.Add("business_user_id", "Enter a valid uuid.")
		} else {
			input.BusinessUserID = &id
		}
	}
	if raw := c.QueryParam("reviewer_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			fieldErrs.Add("reviewer_id", "Enter a valid uuid.")
		} else {
			input.ReviewerID = &id
		}
	}
	if fieldErrs.HasErrors() {
		return fieldErrs
	}

	reviews, err := h.uc.ListReviews(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, response.NewReviewList(reviews))
}

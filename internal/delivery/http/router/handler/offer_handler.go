package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"

	"github.com/Danielluzius/coderr-backend/internal/delivery/http/middleware"
	"github.com/Danielluzius/coderr-backend/internal/delivery/http/response"
	domainerrors "github.com/Danielluzius/coderr-backend/internal/domain/errors"
	"github.com/Danielluzius/coderr-backend/internal/usecase"
)

// OfferHandler holds dependencies for offer catalog handlers.
type OfferHandler struct {
	uc     usecase.OfferUsecase
	logger *slog.Logger
}

// NewOfferHandler is the constructor for OfferHandler, injected by Fx.
func NewOfferHandler(uc usecase.OfferUsecase, logger *slog.Logger) *OfferHandler {
	return &OfferHandler{uc: uc, logger: logger}
}

// CreateOffer publishes a new offer with its three tiers.
func (h *OfferHandler) CreateOffer(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return domainerrors.ErrUnauthenticated
	}

	var input usecase.CreateOfferInput
	if err := c.Bind(&input); err != nil {
		return domainerrors.ErrValidationFailed.WrapMessage("invalid offer input")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	offer, err := h.uc.CreateOffer(c.Request().Context(), actor, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusCreated, response.NewOfferResponse(offer))
}

// ListOffers serves the filtered, paginated offer catalog.
func (h *OfferHandler) ListOffers(c echo.Context) error {
	input, err := parseListOffersQuery(c)
	if err != nil {
		return err
	}

	page, err := h.uc.ListOffers(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, response.OfferPage{
		Count:    page.Count,
		Page:     page.Page,
		PageSize: page.PageSize,
		Results:  response.NewOfferList(page.Results),
	})
}

// GetOffer serves one offer with its tier references.
func (h *OfferHandler) GetOffer(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return domainerrors.ErrNotFound
	}

	offer, err := h.uc.GetOffer(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, response.NewOfferResponse(offer))
}

// GetOfferDetail serves one pricing tier in full.
func (h *OfferHandler) GetOfferDetail(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return domainerrors.ErrNotFound
	}

	detail, err := h.uc.GetOfferDetail(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, response.NewOfferDetailResponse(detail))
}

// UpdateOffer patches an offer and/or a subset of its tiers.
func (h *OfferHandler) UpdateOffer(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return domainerrors.ErrUnauthenticated
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return domainerrors.ErrNotFound
	}

	var input usecase.UpdateOfferInput
	if err := c.Bind(&input); err != nil {
		return domainerrors.ErrValidationFailed.WrapMessage("invalid offer input")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	offer, err := h.uc.UpdateOffer(c.Request().Context(), actor, id, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, response.NewOfferResponse(offer))
}

// DeleteOffer removes an offer and its tiers.
func (h *OfferHandler) DeleteOffer(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return domainerrors.ErrUnauthenticated
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return domainerrors.ErrNotFound
	}

	if err := h.uc.DeleteOffer(c.Request().Context(), actor, id); err != nil {
		return errors.WithStack(err)
	}

	return c.NoContent(http.StatusNoContent)
}

// parseListOffersQuery reads the list filters from the query string. Bad
// filter values are reported per field instead of being silently dropped.
func parseListOffersQuery(c echo.Context) (*usecase.ListOffersInput, error) {
	input := &usecase.ListOffersInput{
		Search:   c.QueryParam("search"),
		Ordering: c.QueryParam("ordering"),
	}
	fieldErrs := domainerrors.NewFieldErrors()

	if raw := c.QueryParam("creator_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			fieldErrs.Add("creator_id", "Enter a valid uuid.")
		} else {
			input.CreatorID = &id
		}
	}
	if raw := c.QueryParam("min_price"); raw != "" {
		price, err := decimal.NewFromString(raw)
		if err != nil {
			fieldErrs.Add("min_price", "Enter a valid number.")
		} else {
			input.MinPrice = &price
		}
	}
	if raw := c.QueryParam("max_delivery_time"); raw != "" {
		days, err := strconv.Atoi(raw)
		if err != nil {
			fieldErrs.Add("max_delivery_time", "Enter a valid integer.")
		} else {
			input.MaxDeliveryTime = &days
		}
	}
	if raw := c.QueryParam("page"); raw != "" {
		page, err := strconv.Atoi(raw)
		if err != nil {
			fieldErrs.Add("page", "Enter a valid integer.")
		} else {
			input.Page = page
		}
	}
	if raw := c.QueryParam("page_size"); raw != "" {
		size, err := strconv.Atoi(raw)
		if err != nil {
			fieldErrs.Add("page_size", "Enter a valid integer.")
		} else {
			input.PageSize = size
		}
	}

	if fieldErrs.HasErrors() {
		return nil, fieldErrs
	}

	return input, nil
}

package handler

import (
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/Danielluzius/coderr-backend/internal/delivery/http/middleware"
	"github.com/Danielluzius/coderr-backend/internal/delivery/http/response"
	"github.com/Danielluzius/coderr-backend/internal/domain/entity"
	domainerrors "github.com/Danielluzius/coderr-backend/internal/domain/errors"
	"github.com/Danielluzius/coderr-backend/internal/usecase"
)

// ProfileHandler holds dependencies for profile handlers.
type ProfileHandler struct {
	uc     usecase.ProfileUsecase
	logger *slog.Logger
}

// NewProfileHandler is the constructor for ProfileHandler, injected by Fx.
func NewProfileHandler(uc usecase.ProfileUsecase, logger *slog.Logger) *ProfileHandler {
	return &ProfileHandler{uc: uc, logger: logger}
}

// GetProfile serves one user's full profile.
func (h *ProfileHandler) GetProfile(c echo.Context) error {
	userID, err := uuid.Parse(c.Param("user_id"))
	if err != nil {
		return domainerrors.ErrNotFound
	}

	user, err := h.uc.GetProfile(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, response.NewProfileDetail(user))
}

// UpdateProfile patches the caller's own profile.
func (h *ProfileHandler) UpdateProfile(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return domainerrors.ErrUnauthenticated
	}

	userID, err := uuid.Parse(c.Param("user_id"))
	if err != nil {
		return domainerrors.ErrNotFound
	}

	var input usecase.UpdateProfileInput
	if err := c.Bind(&input); err != nil {
		return domainerrors.ErrValidationFailed.WrapMessage("invalid profile input")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	user, err := h.uc.UpdateProfile(c.Request().Context(), actor, userID, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, response.NewProfileDetail(user))
}

// ListBusinessProfiles serves all business-role profiles.
func (h *ProfileHandler) ListBusinessProfiles(c echo.Context) error {
	users, err := h.uc.ListProfiles(c.Request().Context(), entity.RoleBusiness)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, response.NewBusinessProfileList(users))
}

// ListCustomerProfiles serves all customer-role profiles in the reduced shape.
func (h *ProfileHandler) ListCustomerProfiles(c echo.Context) error {
	users, err := h.uc.ListProfiles(c.Request().Context(), entity.RoleCustomer)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, response.NewCustomerProfileList(users))
}

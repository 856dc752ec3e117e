package handler

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/Danielluzius/coderr-backend/internal/delivery/http/response"
	"github.com/Danielluzius/coderr-backend/internal/usecase"
)

// StatsHandler serves the public platform rollups.
type StatsHandler struct {
	uc     usecase.StatsUsecase
	logger *slog.Logger
}

// NewStatsHandler is the constructor for StatsHandler, injected by Fx.
func NewStatsHandler(uc usecase.StatsUsecase, logger *slog.Logger) *StatsHandler {
	return &StatsHandler{uc: uc, logger: logger}
}

// GetBaseInfo computes and serves the live platform stats.
func (h *StatsHandler) GetBaseInfo(c echo.Context) error {
	stats, err := h.uc.GetBaseInfo(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, response.NewBaseInfo(stats))
}

// HealthCheck reports process liveness.
func HealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

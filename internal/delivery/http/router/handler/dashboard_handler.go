package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"petmart/internal/delivery/http/response"
	"petmart/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// DashboardHandler holds dependencies for dashboard handlers.
type DashboardHandler struct {
	uc     usecase.DashboardUsecase
	logger *slog.Logger
}

// NewDashboardHandler is the constructor for DashboardHandler, injected by Fx.
func NewDashboardHandler(uc usecase.DashboardUsecase, logger *slog.Logger) *DashboardHandler {
	return &DashboardHandler{
		uc:     uc,
		logger: logger,
	}
}

// Stats handles the headline counters.
func (h *DashboardHandler) Stats(c echo.Context) error {
	stats, err := h.uc.Stats(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, stats, "")
}

// MonthlySales handles the six-month revenue series.
func (h *DashboardHandler) MonthlySales(c echo.Context) error {
	points, err := h.uc.MonthlySales(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, points, "")
}

// CategoryBreakdown handles the per-category product counts.
func (h *DashboardHandler) CategoryBreakdown(c echo.Context) error {
	entries, err := h.uc.CategoryBreakdown(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, entries, "")
}

// RecentOrders handles the recent-orders widget.
func (h *DashboardHandler) RecentOrders(c echo.Context) error {
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	entries, err := h.uc.RecentOrders(c.Request().Context(), limit)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, entries, "")
}

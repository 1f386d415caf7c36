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

// BannerHandler holds dependencies for banner handlers.
type BannerHandler struct {
	uc     usecase.BannerUsecase
	logger *slog.Logger
}

// NewBannerHandler is the constructor for BannerHandler, injected by Fx.
func NewBannerHandler(uc usecase.BannerUsecase, logger *slog.Logger) *BannerHandler {
	return &BannerHandler{
		uc:     uc,
		logger: logger,
	}
}

// ListActive handles the public listing of visible banners.
func (h *BannerHandler) ListActive(c echo.Context) error {
	banners, err := h.uc.List(c.Request().Context(), true)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, banners, "")
}

// List handles the admin listing of all banners.
func (h *BannerHandler) List(c echo.Context) error {
	banners, err := h.uc.List(c.Request().Context(), false)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, banners, "")
}

// Create handles creating a banner.
func (h *BannerHandler) Create(c echo.Context) error {
	var input usecase.CreateBannerInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid banner input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	banner, err := h.uc.Create(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, banner, "Banner created")
}

// Update handles a partial banner update.
func (h *BannerHandler) Update(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return response.BadRequest(c, "INVALID_BANNER_ID", "Invalid banner ID")
	}

	var input usecase.UpdateBannerInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid banner input")
	}

	banner, err := h.uc.Update(c.Request().Context(), uint(id), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, banner, "Banner updated")
}

// Delete handles removing a banner.
func (h *BannerHandler) Delete(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return response.BadRequest(c, "INVALID_BANNER_ID", "Invalid banner ID")
	}

	if err := h.uc.Delete(c.Request().Context(), uint(id)); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Banner deleted")
}

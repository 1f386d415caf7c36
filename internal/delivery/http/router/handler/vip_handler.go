package handler

import (
	"log/slog"
	"net/http"

	"petmart/internal/delivery/http/response"
	"petmart/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// VIPHandler holds dependencies for VIP level handlers.
type VIPHandler struct {
	uc     usecase.VIPUsecase
	logger *slog.Logger
}

// NewVIPHandler is the constructor for VIPHandler, injected by Fx.
func NewVIPHandler(uc usecase.VIPUsecase, logger *slog.Logger) *VIPHandler {
	return &VIPHandler{
		uc:     uc,
		logger: logger,
	}
}

// List handles the VIP level listing with rollup figures.
func (h *VIPHandler) List(c echo.Context) error {
	rollups, err := h.uc.List(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, rollups, "")
}

// Create handles creating a VIP level.
func (h *VIPHandler) Create(c echo.Context) error {
	var input usecase.CreateVIPLevelInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid VIP level input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	level, err := h.uc.Create(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, level, "VIP level created")
}

// Update handles a partial VIP level update.
func (h *VIPHandler) Update(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_VIP_LEVEL_ID", "Invalid VIP level ID")
	}

	var input usecase.UpdateVIPLevelInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid VIP level input")
	}

	level, err := h.uc.Update(c.Request().Context(), id, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, level, "VIP level updated")
}

// Delete handles removing a VIP level without members.
func (h *VIPHandler) Delete(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_VIP_LEVEL_ID", "Invalid VIP level ID")
	}

	if err := h.uc.Delete(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "VIP level deleted")
}

package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"petmart/internal/delivery/http/response"
	"petmart/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

const defaultShipmentPageSize = 10

// ShipmentHandler holds dependencies for shipment-related handlers.
type ShipmentHandler struct {
	uc     usecase.ShipmentUsecase
	logger *slog.Logger
}

// NewShipmentHandler is the constructor for ShipmentHandler, injected by Fx.
func NewShipmentHandler(uc usecase.ShipmentUsecase, logger *slog.Logger) *ShipmentHandler {
	return &ShipmentHandler{
		uc:     uc,
		logger: logger,
	}
}

// Create handles recording a shipment for an order.
func (h *ShipmentHandler) Create(c echo.Context) error {
	var input usecase.CreateShipmentInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid shipment input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	shipment, err := h.uc.Create(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, shipment, "Shipment created")
}

// Get handles reading a single shipment.
func (h *ShipmentHandler) Get(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return response.BadRequest(c, "INVALID_SHIPMENT_ID", "Invalid shipment ID")
	}

	shipment, err := h.uc.Get(c.Request().Context(), uint(id))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, shipment, "")
}

// GetByOrder handles reading the shipment recorded for an order.
func (h *ShipmentHandler) GetByOrder(c echo.Context) error {
	orderID, err := uuid.Parse(c.Param("orderID"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ORDER_ID", "Invalid order ID")
	}

	shipment, err := h.uc.GetByOrder(c.Request().Context(), orderID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, shipment, "")
}

// Update handles a partial shipment update.
func (h *ShipmentHandler) Update(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return response.BadRequest(c, "INVALID_SHIPMENT_ID", "Invalid shipment ID")
	}

	var input usecase.UpdateShipmentInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid shipment input")
	}

	shipment, err := h.uc.Update(c.Request().Context(), uint(id), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, shipment, "Shipment updated")
}

// Delete handles removing a shipment record.
func (h *ShipmentHandler) Delete(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return response.BadRequest(c, "INVALID_SHIPMENT_ID", "Invalid shipment ID")
	}

	if err := h.uc.Delete(c.Request().Context(), uint(id)); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Shipment deleted")
}

// List handles the paged shipment listing with orders resolved across
// stores.
func (h *ShipmentHandler) List(c echo.Context) error {
	offset, limit := parsePagination(c, defaultShipmentPageSize)

	page, err := h.uc.ListWithOrders(c.Request().Context(), offset, limit)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, page, "")
}

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

// OrderHandler holds dependencies for order-related handlers.
type OrderHandler struct {
	uc     usecase.OrderUsecase
	logger *slog.Logger
}

// NewOrderHandler is the constructor for OrderHandler, injected by Fx.
func NewOrderHandler(uc usecase.OrderUsecase, logger *slog.Logger) *OrderHandler {
	return &OrderHandler{
		uc:     uc,
		logger: logger,
	}
}

// Checkout handles converting the user's cart into an order.
func (h *OrderHandler) Checkout(c echo.Context) error {
	userID, err := uuid.Parse(c.Param("userID"))
	if err != nil {
		return response.BadRequest(c, "INVALID_USER_ID", "Invalid user ID")
	}

	var input usecase.CheckoutInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid checkout input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	order, err := h.uc.Checkout(c.Request().Context(), userID, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, order, "Order created")
}

// ListByUser handles the user's order history.
func (h *OrderHandler) ListByUser(c echo.Context) error {
	userID, err := uuid.Parse(c.Param("userID"))
	if err != nil {
		return response.BadRequest(c, "INVALID_USER_ID", "Invalid user ID")
	}

	orders, err := h.uc.ListByUser(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, orders, "")
}

// Get handles reading a single order with its lines.
func (h *OrderHandler) Get(c echo.Context) error {
	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ORDER_ID", "Invalid order ID")
	}

	order, err := h.uc.Get(c.Request().Context(), orderID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, order, "")
}

// Pay handles marking a pending order as paid.
func (h *OrderHandler) Pay(c echo.Context) error {
	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ORDER_ID", "Invalid order ID")
	}

	var input struct {
		PaymentMethod string `json:"payment_method"`
	}
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid payment input")
	}

	order, err := h.uc.Pay(c.Request().Context(), orderID, input.PaymentMethod)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, order, "Order paid")
}

// SetStatus handles the admin status overwrite.
func (h *OrderHandler) SetStatus(c echo.Context) error {
	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ORDER_ID", "Invalid order ID")
	}

	var input struct {
		Status string `json:"status"`
	}
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid status input")
	}

	order, err := h.uc.SetStatus(c.Request().Context(), orderID, input.Status)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, order, "Order status updated")
}

// AdminList handles the paged admin order listing.
func (h *OrderHandler) AdminList(c echo.Context) error {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	pageSize, _ := strconv.Atoi(c.QueryParam("page_size"))

	input := usecase.AdminOrderListInput{
		Status:      c.QueryParam("status"),
		OrderNumber: c.QueryParam("order_number"),
		SortBy:      c.QueryParam("sort_by"),
		Page:        page,
		PageSize:    pageSize,
	}

	result, err := h.uc.AdminList(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, result, "")
}

// Delete handles removing an order and its lines.
func (h *OrderHandler) Delete(c echo.Context) error {
	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ORDER_ID", "Invalid order ID")
	}

	if err := h.uc.Delete(c.Request().Context(), orderID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Order deleted")
}

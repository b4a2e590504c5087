package handler

import (
	"log/slog"
	"net/http"

	"storefront/internal/delivery/http/middleware"
	"storefront/internal/delivery/http/response"
	"storefront/internal/usecase"

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
	return &OrderHandler{uc: uc, logger: logger}
}

// Submit compiles the owner's cart into an order.
func (h *OrderHandler) Submit(c echo.Context) error {
	var input *usecase.SubmitOrderInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid checkout input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.SubmitOrder(c.Request().Context(), middleware.OwnerKey(c), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, output, "Order placed")
}

// List returns the owner's orders, newest first.
func (h *OrderHandler) List(c echo.Context) error {
	orders, err := h.uc.ListOrders(c.Request().Context(), middleware.OwnerKey(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, orders, "")
}

// Get returns one of the owner's orders.
func (h *OrderHandler) Get(c echo.Context) error {
	order, err := h.uc.GetOrder(c.Request().Context(), middleware.OwnerKey(c), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, order, "")
}

// ListAll returns every order for the admin panel.
func (h *OrderHandler) ListAll(c echo.Context) error {
	orders, err := h.uc.ListAllOrders(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, orders, "")
}

// UpdateStatus sets an order's status from the admin panel.
func (h *OrderHandler) UpdateStatus(c echo.Context) error {
	var input *usecase.UpdateOrderStatusInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid status input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	order, err := h.uc.UpdateOrderStatus(c.Request().Context(), c.Param("id"), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, order, "Order status updated")
}

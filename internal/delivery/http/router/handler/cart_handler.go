// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"

	"storefront/internal/delivery/http/middleware"
	"storefront/internal/delivery/http/response"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CartHandler holds dependencies for cart-related handlers.
type CartHandler struct {
	uc     usecase.CartUsecase
	logger *slog.Logger
}

// NewCartHandler is the constructor for CartHandler, injected by Fx.
func NewCartHandler(uc usecase.CartUsecase, logger *slog.Logger) *CartHandler {
	return &CartHandler{uc: uc, logger: logger}
}

// GetCart returns the owner's cart with derived totals.
func (h *CartHandler) GetCart(c echo.Context) error {
	view, err := h.uc.GetCart(c.Request().Context(), middleware.OwnerKey(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, view, "")
}

// AddItem adds a product to the cart.
func (h *CartHandler) AddItem(c echo.Context) error {
	var input *usecase.AddItemInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid cart item input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	view, err := h.uc.AddItem(c.Request().Context(), middleware.OwnerKey(c), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, view, "Item added to cart")
}

// SetQuantity replaces a line's quantity; below 1 removes the line.
func (h *CartHandler) SetQuantity(c echo.Context) error {
	var input *usecase.SetQuantityInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid quantity input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	view, err := h.uc.SetQuantity(c.Request().Context(), middleware.OwnerKey(c), c.Param("productID"), input.Quantity)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, view, "Quantity updated")
}

// RemoveItem removes a product's line from the cart.
func (h *CartHandler) RemoveItem(c echo.Context) error {
	view, err := h.uc.RemoveItem(c.Request().Context(), middleware.OwnerKey(c), c.Param("productID"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, view, "Item removed from cart")
}

// Totals returns the monetary summary without mutating the cart.
func (h *CartHandler) Totals(c echo.Context) error {
	totals, err := h.uc.Totals(c.Request().Context(), middleware.OwnerKey(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, totals, "")
}

// Merge folds the guest cart named by the guest key header into the
// authenticated user's cart. Only available once logged in.
func (h *CartHandler) Merge(c echo.Context) error {
	if !middleware.IsAuthenticated(c) {
		return domainerrors.ErrUnauthorized.WithDetails("cart merge requires a verified ID token")
	}

	guestKey := middleware.GuestKey(c)
	if guestKey == "" {
		return domainerrors.ErrValidationFailed.WithDetails("guest key header is required for merge")
	}

	view, err := h.uc.MergeCarts(c.Request().Context(), guestKey, middleware.OwnerKey(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, view, "Carts merged")
}

package handler

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront/internal/delivery/http/validator"
	domainerrors "storefront/internal/domain/errors"
)

func newTestCartContext(t *testing.T, method, body string) echo.Context {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, "/cart/items/p1", reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}

	e := echo.New()
	e.Validator = validator.New()
	c := e.NewContext(req, httptest.NewRecorder())
	c.SetParamNames("productID")
	c.SetParamValues("p1")

	return c
}

func TestCartHandler_SetQuantity_EmptyBodyRejected(t *testing.T) {
	h := NewCartHandler(nil, slog.New(slog.NewTextHandler(io.Discard, nil)))
	c := newTestCartContext(t, http.MethodPatch, "")

	err := h.SetQuantity(c)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestCartHandler_AddItem_EmptyBodyRejected(t *testing.T) {
	h := NewCartHandler(nil, slog.New(slog.NewTextHandler(io.Discard, nil)))
	c := newTestCartContext(t, http.MethodPost, "")

	err := h.AddItem(c)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

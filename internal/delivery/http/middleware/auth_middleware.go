// Package middleware contains the HTTP middlewares for identity resolution
// and error rendering.
package middleware

import (
	"log/slog"
	"slices"
	"strings"

	"github.com/labstack/echo/v4"

	"storefront/internal/domain/constants"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"
)

// Context keys set by the middlewares below.
const (
	ContextOwnerKey      = "ownerKey"      // Owner of the cart/orders being acted on.
	ContextAuthenticated = "authenticated" // True when the owner key is a verified user id.
	ContextGuestKey      = "guestKey"      // Raw guest key header, when present.
	ContextAdminUser     = "adminUser"     // Admin subject, set by RequireAdmin.
)

// AuthMiddleware resolves who owns the cart and orders on each request, and
// guards the administrative surface.
type AuthMiddleware struct {
	tokenSvc service.TokenService
	verifier service.IdentityVerifier
	logger   *slog.Logger
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService, verifier service.IdentityVerifier, logger *slog.Logger) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc, verifier: verifier, logger: logger}
}

// Identify resolves the owner key for customer-facing routes. A verified
// bearer token wins; otherwise the client-generated guest key header stands
// in for it. Requests carrying neither cannot own a cart and are rejected.
func (m *AuthMiddleware) Identify(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		guestKey := strings.TrimSpace(c.Request().Header.Get(constants.HeaderGuestKey))
		if guestKey != "" {
			c.Set(ContextGuestKey, guestKey)
		}

		if tokenString, ok := bearerToken(c); ok {
			uid, err := m.verifier.VerifyIDToken(c.Request().Context(), tokenString)
			if err != nil {
				return domainerrors.ErrUnauthorized.WithDetails("invalid or expired ID token")
			}

			c.Set(ContextOwnerKey, uid)
			c.Set(ContextAuthenticated, true)

			return next(c)
		}

		if guestKey == "" {
			return domainerrors.ErrUnauthorized.WithDetails(
				"provide a bearer ID token or a " + constants.HeaderGuestKey + " header")
		}

		c.Set(ContextOwnerKey, guestKey)
		c.Set(ContextAuthenticated, false)

		return next(c)
	}
}

// RequireAdmin guards the admin panel routes with the locally issued JWT.
func (m *AuthMiddleware) RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		tokenString, ok := bearerToken(c)
		if !ok {
			return domainerrors.ErrUnauthorized.WithDetails("missing bearer token")
		}

		claims, err := m.tokenSvc.ValidateToken(tokenString)
		if err != nil {
			m.logger.Debug("admin token rejected", slog.Any("error", err))

			return domainerrors.ErrUnauthorized.WithDetails("invalid or expired token")
		}

		if !slices.Contains(claims.Roles, constants.RoleAdmin) {
			return domainerrors.ErrForbidden.WithDetails("admin role required")
		}

		c.Set(ContextAdminUser, claims.Subject)

		return next(c)
	}
}

// OwnerKey reads the owner key Identify stored on the context.
func OwnerKey(c echo.Context) string {
	if key, ok := c.Get(ContextOwnerKey).(string); ok {
		return key
	}

	return ""
}

// IsAuthenticated reports whether the owner key is a verified user id.
func IsAuthenticated(c echo.Context) bool {
	authenticated, ok := c.Get(ContextAuthenticated).(bool)

	return ok && authenticated
}

// GuestKey reads the raw guest key header, if the request carried one.
func GuestKey(c echo.Context) string {
	if key, ok := c.Get(ContextGuestKey).(string); ok {
		return key
	}

	return ""
}

func bearerToken(c echo.Context) (string, bool) {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader == "" {
		return "", false
	}

	tokenString := strings.TrimPrefix(authHeader, "Bearer ")
	if tokenString == authHeader || tokenString == "" {
		return "", false
	}

	return tokenString, true
}

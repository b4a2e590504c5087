package usecase

import (
	"context"
)

// AdminLoginInput is the admin panel login form.
type AdminLoginInput struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// AdminLoginOutput carries the issued access token.
type AdminLoginOutput struct {
	AccessToken string `json:"access_token"`
}

// AuthUsecase covers the thin authentication surface the storefront owns
// itself: the admin panel login. Customer identity is delegated entirely to
// the hosted auth backend and verified in middleware.
type AuthUsecase interface {
	// AdminLogin checks the configured admin credentials and issues a JWT.
	AdminLogin(ctx context.Context, input *AdminLoginInput) (*AdminLoginOutput, error)
}

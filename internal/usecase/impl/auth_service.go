package impl

import (
	"context"
	"crypto/subtle"

	"storefront/config"
	"storefront/internal/domain/constants"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type authService struct {
	cfg    *config.Config
	hasher service.PasswordHasher
	tokens service.TokenService
}

// AuthServiceParams holds dependencies for AuthService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	Config *config.Config
	Hasher service.PasswordHasher
	Tokens service.TokenService
}

// NewAuthService creates the admin authentication service.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		cfg:    params.Config,
		hasher: params.Hasher,
		tokens: params.Tokens,
	}
}

// AdminLogin checks the configured credentials and issues an access token
// carrying the admin role.
func (s *authService) AdminLogin(ctx context.Context, input *usecase.AdminLoginInput) (*usecase.AdminLoginOutput, error) {
	admin := s.cfg.Admin
	if admin == nil || admin.Username == "" || admin.PasswordHash == "" {
		return nil, domainerrors.ErrInternalError.WrapMessage("admin credentials are not configured")
	}

	usernameMatch := subtle.ConstantTimeCompare([]byte(input.Username), []byte(admin.Username)) == 1
	passwordMatch := s.hasher.Check(input.Password, admin.PasswordHash)
	if !usernameMatch || !passwordMatch {
		return nil, domainerrors.ErrInvalidCredentials
	}

	token, err := s.tokens.GenerateAccessToken(admin.Username, []string{constants.RoleAdmin})
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate admin token")
	}

	return &usecase.AdminLoginOutput{AccessToken: token}, nil
}

package service

import (
	"context"

	"github.com/golang-jwt/jwt/v5"
)

// Claims defines the custom claims for the JWT tokens issued to the admin
// panel.
type Claims struct {
	Subject string
	Roles   []string
	jwt.RegisteredClaims
}

// TokenService defines the interface for generating and validating JWTs.
// This abstracts the details of token creation from the use cases.
type TokenService interface {
	// GenerateAccessToken creates a signed access token for the subject.
	GenerateAccessToken(subject string, roles []string) (string, error)

	// ValidateToken checks the validity of a token string and returns its
	// claims.
	ValidateToken(tokenString string) (*Claims, error)
}

// IdentityVerifier verifies customer identity tokens minted by the hosted
// auth backend, returning the stable user id the token belongs to.
type IdentityVerifier interface {
	VerifyIDToken(ctx context.Context, idToken string) (string, error)
}

package auth

import (
	"context"
	"log/slog"

	firebase "firebase.google.com/go/v4"
	firebaseauth "firebase.google.com/go/v4/auth"
	"github.com/pkg/errors"

	"storefront/internal/domain/lifecycle"
	"storefront/internal/domain/service"
)

// firebaseVerifier verifies customer ID tokens against the hosted auth
// backend.
type firebaseVerifier struct {
	client *firebaseauth.Client
	logger *slog.Logger
}

// NewFirebaseVerifier is the constructor for firebaseVerifier.
func NewFirebaseVerifier(app *firebase.App, logger *slog.Logger) (service.IdentityVerifier, error) {
	ctx, cancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
	defer cancel()

	client, err := app.Auth(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create firebase auth client")
	}

	return &firebaseVerifier{
		client: client,
		logger: logger,
	}, nil
}

// VerifyIDToken checks the token signature and expiry and returns the stable
// user id it was minted for.
func (v *firebaseVerifier) VerifyIDToken(ctx context.Context, idToken string) (string, error) {
	token, err := v.client.VerifyIDToken(ctx, idToken)
	if err != nil {
		v.logger.Debug("ID token verification failed", slog.Any("error", err))

		return "", errors.Wrap(err, "invalid ID token")
	}

	return token.UID, nil
}

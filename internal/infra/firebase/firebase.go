// Package firebase initialises the shared Firebase application handle used by
// the hosted auth verifier and the Firestore persistence layer.
package firebase

import (
	"context"

	firebase "firebase.google.com/go/v4"
	"google.golang.org/api/option"

	"storefront/config"
	"storefront/internal/domain/lifecycle"
	"storefront/internal/errors"
)

// NewApp creates the Firebase application from configuration.
func NewApp(cfg *config.Config) (*firebase.App, error) {
	if cfg.Firebase == nil {
		return nil, errors.New("firebase config must be provided")
	}

	ctx, cancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
	defer cancel()

	var opts []option.ClientOption
	if cfg.Firebase.CredentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.Firebase.CredentialsPath))
	}

	app, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: cfg.Firebase.ProjectID}, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialise firebase app")
	}

	return app, nil
}

// Package firestore contains the concrete implementation of the persistence
// layer backed by Cloud Firestore documents.
package firestore

import (
	"context"
	"log/slog"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
	"go.uber.org/fx"

	"storefront/internal/domain/lifecycle"
	"storefront/internal/errors"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	App    *firebase.App
	Logger *slog.Logger
}

// New creates the Firestore client and ties its shutdown to the fx lifecycle.
func New(params Params) (*firestore.Client, error) {
	ctx, cancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
	defer cancel()

	client, err := params.App.Firestore(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create Firestore client")
	}

	params.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			params.Logger.Info("closing Firestore client")

			return client.Close()
		},
	})

	return client, nil
}

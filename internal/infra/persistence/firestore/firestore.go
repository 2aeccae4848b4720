// Package firestore implements the persistence interfaces on top of the
// managed Firestore document store.
package firestore

import (
	"context"
	"log/slog"

	"storefront/config"

	cloudfirestore "cloud.google.com/go/firestore"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/api/option"
)

// Params holds dependencies for the Firestore client, injected by Fx.
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// New creates the Firestore client for the configured project and registers
// its shutdown hook.
func New(params Params) (*cloudfirestore.Client, error) {
	var opts []option.ClientOption
	if params.Config.Firebase.CredentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(params.Config.Firebase.CredentialsPath))
	}

	client, err := cloudfirestore.NewClient(params.Ctx, params.Config.Firebase.ProjectID, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "create firestore client")
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			params.Logger.Info("Closing Firestore client")

			return errors.WithStack(client.Close())
		},
	})

	return client, nil
}

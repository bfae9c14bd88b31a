// Command fragments-stub serves a development fragment store and identity provider.
package main

import (
	"context"
	"log/slog"
	"os"

	"fragments/config"
	"fragments/internal/bootstrap"
	"fragments/internal/delivery"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	cfg, err := config.New()
	if err != nil {
		slog.Error("Failed to load config", slog.Any("error", err))
		os.Exit(1)
	}
	if cfg.Stub.SigningKey == "" {
		slog.Error("stub.signingKey must be set (FRAGMENTS_STUB_SIGNINGKEY)")
		os.Exit(1)
	}

	fx.New(
		bootstrap.Infra(cfg),
		fx.Provide(context.Background),
		bootstrap.Stub(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}

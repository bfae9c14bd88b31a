// Package bootstrap composes the fx graphs shared by the binaries and the integration tests.
package bootstrap

import (
	"io"
	"log/slog"
	"os"

	"fragments/config"
	"fragments/internal/delivery/callback"
	deliveryhttp "fragments/internal/delivery/http"
	"fragments/internal/delivery/http/middleware"
	"fragments/internal/delivery/http/router/handler"
	"fragments/internal/domain/service"
	"fragments/internal/infra/auth"
	"fragments/internal/infra/auth/oauth"
	"fragments/internal/infra/browser"
	"fragments/internal/infra/fragment"
	logs "fragments/internal/infra/log"
	"fragments/internal/infra/metrics"
	"fragments/internal/infra/persistence/file"
	"fragments/internal/infra/persistence/memory"
	"fragments/internal/infra/qrcode"
	"fragments/internal/usecase"
	"fragments/internal/usecase/impl"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/fx"
)

// Infra provides the configuration and the logger.
func Infra(cfg *config.Config) fx.Option {
	return fx.Options(
		fx.Supply(cfg),
		fx.Provide(logs.New),
	)
}

// Stub provides the development fragment store and identity provider.
func Stub() fx.Option {
	return fx.Options(
		fx.Provide(
			memory.NewFragmentRepository,
			auth.NewJWTService,
			impl.NewFragmentService,
			impl.NewAuthorizationService,
		),
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
			middleware.NewLoggerMiddleware,
			middleware.NewRequestIDMiddleware,
		),
		fx.Provide(
			handler.NewFragmentHandler,
			handler.NewOAuthHandler,
			deliveryhttp.NewEcho,
			fx.Annotate(
				deliveryhttp.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

// ClientOptions tunes the client graph for the running command.
type ClientOptions struct {
	// Prompt receives the sign-in URL. Defaults to stderr.
	Prompt io.Writer
	// NoBrowser only prints the sign-in URL, with a QR code for signing in from another device.
	NoBrowser bool
}

// Client provides the session provider, the fragment client and the sync controller.
func Client(opts ClientOptions) fx.Option {
	prompt := opts.Prompt
	if prompt == nil {
		prompt = os.Stderr
	}

	return fx.Options(
		fx.Provide(
			file.NewSessionRepository,
			auth.NewTokenInspector,
			func(logger *slog.Logger) service.URLOpener {
				return browser.NewOpener(prompt, logger, opts.NoBrowser).WithQRCode(qrcode.NewRenderer("L"))
			},
			fx.Annotate(
				oauth.NewProvider,
				fx.As(new(service.SessionProvider), new(service.SignInCompleter), new(service.Authorizer)),
			),
		),
		fx.Provide(
			newMetrics,
			fx.Annotate(
				fragment.NewClient,
				fx.As(new(service.FragmentClient)),
			),
			impl.NewSyncController,
			callback.NewListener,
		),
	)
}

// newMetrics registers the client collector on a private registry.
func newMetrics() (*prometheus.Registry, metrics.Recorder) {
	registry := prometheus.NewRegistry()

	return registry, metrics.NewCollector(registry)
}

// ClientApp is everything a client command needs.
type ClientApp struct {
	fx.In

	Config     *config.Config
	Logger     *slog.Logger
	Controller usecase.SyncUsecase
	Provider   service.SessionProvider
	Client     service.FragmentClient
	Listener   *callback.Listener
	Registry   *prometheus.Registry
}

// NewClientApp builds the client graph without starting anything.
func NewClientApp(cfg *config.Config, opts ClientOptions, extra ...fx.Option) (*ClientApp, error) {
	var out ClientApp

	options := []fx.Option{
		fx.NopLogger,
		Infra(cfg),
		Client(opts),
		fx.Invoke(func(app ClientApp) { out = app }),
	}
	options = append(options, extra...)

	if err := fx.New(options...).Err(); err != nil {
		return nil, errors.Wrap(err, "build client")
	}

	return &out, nil
}

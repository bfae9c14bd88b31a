package bootstrap

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"time"

	"fragments/internal/infra/metrics"
	uiapp "fragments/internal/ui/app"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const metricsReadHeaderTimeout = 5 * time.Second

// LogOutput redirects the logger, e.g. away from the terminal the UI draws on.
func LogOutput(w io.Writer) fx.Option {
	return fx.Provide(
		fx.Annotate(
			func() io.Writer { return w },
			fx.ResultTags(`name:"logOutput"`),
		),
	)
}

// RunTUI serves the sign-in callback, and /metrics when configured, while the UI runs.
// prompt, when set, is the writer app was built with; it shows the sign-in URL inside the UI.
func RunTUI(ctx context.Context, app *ClientApp, prompt *uiapp.Prompt) error {
	if err := app.Listener.Start(); err != nil {
		return err
	}
	defer func() {
		if err := app.Listener.Shutdown(context.Background()); err != nil {
			app.Logger.Warn("Failed to stop sign-in callback listener", slog.Any("error", err))
		}
	}()

	if addr := app.Config.Metrics.Addr; addr != "" {
		srv := &http.Server{
			Addr:              addr,
			Handler:           metrics.Handler(app.Registry),
			ReadHeaderTimeout: metricsReadHeaderTimeout,
		}
		go func() {
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				app.Logger.Error("Metrics endpoint stopped", slog.Any("error", err))
			}
		}()
		defer srv.Shutdown(context.Background()) //nolint:errcheck
	}

	model := uiapp.NewModel(ctx, app.Controller, app.Listener)
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	if prompt != nil {
		prompt.Attach(program.Send)
	}

	_, err := program.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}

	return errors.Wrap(err, "run terminal ui")
}

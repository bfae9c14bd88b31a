// Package callback receives the identity provider's redirect that completes a sign-in.
package callback

import (
	"context"
	"html/template"
	"log/slog"
	"net"
	"net/http"
	"time"

	"fragments/config"
	"fragments/internal/domain/entity"
	"fragments/internal/domain/service"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const shutdownTimeout = 5 * time.Second

var resultPage = template.Must(template.New("result").Parse(`<!doctype html>
<html><head><title>fragments</title></head>
<body><h1>{{.Title}}</h1><p>{{.Message}}</p></body></html>
`))

// Result is the outcome of one redirect.
type Result struct {
	Session *entity.Session
	Err     error
}

// Params holds dependencies for Listener, injected by Fx
type Params struct {
	fx.In

	Config    *config.Config
	Completer service.SignInCompleter
	Logger    *slog.Logger
}

// Listener serves the redirect URI on the loopback interface.
type Listener struct {
	addr      string
	completer service.SignInCompleter
	logger    *slog.Logger
	server    *echo.Echo
	results   chan Result
}

// NewListener creates a listener for the configured callback address.
func NewListener(params Params) *Listener {
	l := &Listener{
		addr:      params.Config.Auth.CallbackAddr,
		completer: params.Completer,
		logger:    params.Logger,
		results:   make(chan Result, 1),
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.GET("/callback", l.handleCallback)
	l.server = e

	return l
}

// Start binds the address and serves in the background. Binding errors are returned immediately.
func (l *Listener) Start() error {
	ln, err := net.Listen("tcp", l.addr)
	if err != nil {
		return errors.Wrapf(err, "listen for sign-in callback on %s", l.addr)
	}
	l.server.Listener = ln
	l.addr = ln.Addr().String()

	go func() {
		if err := l.server.Start(""); err != nil && !errors.Is(err, http.ErrServerClosed) {
			l.logger.Error("Sign-in callback listener stopped", slog.Any("error", err))
		}
	}()

	l.logger.Debug("Listening for sign-in callback", slog.String("addr", l.addr))

	return nil
}

// Addr is the bound address, useful when configured with port 0.
func (l *Listener) Addr() string {
	return l.addr
}

// Results delivers one value per redirect received.
func (l *Listener) Results() <-chan Result {
	return l.results
}

// Wait blocks until a redirect completes a sign-in or ctx ends.
func (l *Listener) Wait(ctx context.Context) (*entity.Session, error) {
	select {
	case <-ctx.Done():
		return nil, errors.Wrap(ctx.Err(), "waiting for sign-in")
	case res := <-l.results:
		return res.Session, res.Err
	}
}

// Shutdown stops the server.
func (l *Listener) Shutdown(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, shutdownTimeout)
	defer cancel()

	return errors.WithStack(l.server.Shutdown(shutdownCtx))
}

func (l *Listener) handleCallback(c echo.Context) error {
	query := c.Request().URL.Query()

	if providerErr := query.Get("error"); providerErr != "" {
		err := errors.Errorf("identity provider refused sign-in: %s %s", providerErr, query.Get("error_description"))
		l.deliver(Result{Err: err})

		return l.render(c, http.StatusBadRequest, "Sign-in failed", err.Error())
	}

	session, err := l.completer.CompleteSignIn(c.Request().Context(), query.Get("code"), query.Get("state"))
	if err != nil {
		l.logger.Warn("Sign-in could not be completed", slog.Any("error", err))
		l.deliver(Result{Err: err})

		return l.render(c, http.StatusBadRequest, "Sign-in failed", err.Error())
	}

	l.deliver(Result{Session: session})

	return l.render(c, http.StatusOK, "Signed in", "Signed in as "+session.Identity.Username+". You can close this window.")
}

func (l *Listener) deliver(res Result) {
	select {
	case l.results <- res:
	default:
		l.logger.Warn("Dropping sign-in result nobody is waiting for")
	}
}

func (l *Listener) render(c echo.Context, status int, title, message string) error {
	c.Response().Header().Set(echo.HeaderContentType, echo.MIMETextHTMLCharsetUTF8)
	c.Response().WriteHeader(status)

	return resultPage.Execute(c.Response(), map[string]string{"Title": title, "Message": message})
}

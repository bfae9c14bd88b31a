package bootstrap_test

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"path/filepath"
	"testing"

	"fragments/internal/bootstrap"
	"fragments/internal/bootstrap/stubtest"
	"fragments/internal/delivery/callback"
	"fragments/internal/domain/entity"
	"fragments/internal/domain/service"
	"fragments/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx"
)

// approvingBrowser plays the user: it approves the authorization request as username and
// follows the redirect to wherever the callback listener actually bound.
type approvingBrowser struct {
	username string
	listener *callback.Listener
}

func (b *approvingBrowser) Open(authURL string) error {
	u, err := url.Parse(authURL)
	if err != nil {
		return err
	}
	query := u.Query()
	query.Set("login_hint", b.username)
	u.RawQuery = query.Encode()

	client := &http.Client{
		CheckRedirect: func(*http.Request, []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}
	resp, err := client.Get(u.String())
	if err != nil {
		return err
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusFound {
		return errors.Errorf("authorize answered %d", resp.StatusCode)
	}

	redirect, err := url.Parse(resp.Header.Get("Location"))
	if err != nil {
		return err
	}
	redirect.Host = b.listener.Addr()

	resp, err = client.Get(redirect.String())
	if err != nil {
		return err
	}
	resp.Body.Close()

	return nil
}

func newClient(t *testing.T, stub *stubtest.Server, browser service.URLOpener) *bootstrap.ClientApp {
	t.Helper()

	app, err := bootstrap.NewClientApp(stub.Config, bootstrap.ClientOptions{Prompt: io.Discard},
		bootstrap.LogOutput(io.Discard),
		fx.Decorate(func(service.URLOpener) service.URLOpener { return browser }),
	)
	require.NoError(t, err)

	return app
}

func TestClientApp_SignInCreateRestoreSignOut(t *testing.T) {
	cfg := stubtest.NewConfig()
	cfg.Auth.CallbackAddr = "127.0.0.1:0"
	cfg.Auth.SessionPath = filepath.Join(t.TempDir(), "session.json")
	stub := stubtest.Start(t, cfg)
	ctx := context.Background()

	browser := &approvingBrowser{username: "alice@example.com"}
	app := newClient(t, stub, browser)
	browser.listener = app.Listener

	require.NoError(t, app.Listener.Start())
	t.Cleanup(func() { _ = app.Listener.Shutdown(context.Background()) })

	require.NoError(t, app.Controller.SignIn(ctx))
	session, err := app.Listener.Wait(ctx)
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", session.Identity.Username)
	assert.Equal(t, "alice@example.com", session.Identity.Email)

	require.NoError(t, app.Controller.Attach(ctx, session))
	view := app.Controller.View()
	assert.Equal(t, usecase.StateReady, view.State)
	assert.True(t, view.Empty())

	app.Controller.SetDraft("abc", entity.FragmentTypeMarkdown)
	created, err := app.Controller.Create(ctx)
	require.NoError(t, err)

	// A new process restores the persisted session and sees the same fragments.
	restored := newClient(t, stub, browser)
	require.NoError(t, restored.Controller.Restore(ctx))
	view = restored.Controller.View()
	assert.Equal(t, usecase.StateReady, view.State)
	require.Len(t, view.Fragments, 1)
	assert.Equal(t, created.ID, view.Fragments[0].ID)
	assert.Equal(t, entity.FragmentTypeMarkdown, view.Fragments[0].Type)

	require.NoError(t, restored.Controller.SignOut(ctx))
	assert.Nil(t, restored.Provider.GetUser(ctx))
	assert.Equal(t, usecase.StateAnonymous, restored.Controller.View().State)
}

func TestClientApp_RestoreWithoutSessionStaysAnonymous(t *testing.T) {
	cfg := stubtest.NewConfig()
	cfg.Auth.SessionPath = filepath.Join(t.TempDir(), "session.json")
	stub := stubtest.Start(t, cfg)

	app := newClient(t, stub, &approvingBrowser{})

	require.NoError(t, app.Controller.Restore(context.Background()))
	assert.Equal(t, usecase.StateAnonymous, app.Controller.View().State)
}

package oauth

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"testing"
	"time"

	"fragments/config"
	"fragments/internal/domain/entity"
	domainerrors "fragments/internal/domain/errors"
	"fragments/internal/infra/auth"
	logs "fragments/internal/infra/log"
	"fragments/internal/infra/persistence/file"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingOpener struct {
	urls []string
}

func (o *recordingOpener) Open(u string) error {
	o.urls = append(o.urls, u)

	return nil
}

type providerFixture struct {
	provider *Provider
	opener   *recordingOpener
	cfg      *config.Config
	exchange []url.Values
}

func newProviderFixture(t *testing.T) *providerFixture {
	t.Helper()

	cfg := &config.Config{}
	cfg.Stub.SigningKey = "test_signing_key_very_long_for_testing"
	cfg.Stub.TokenTTL = time.Hour
	cfg.Auth.ClientID = "fragments-cli"
	cfg.Auth.RedirectURL = "http://127.0.0.1:8765/callback"
	cfg.Auth.Scopes = "openid email"
	cfg.Auth.SessionPath = filepath.Join(t.TempDir(), "session.json")
	cfg.API.Timeout = 5 * time.Second

	issuer, err := auth.NewJWTService(cfg)
	require.NoError(t, err)

	fx := &providerFixture{opener: &recordingOpener{}, cfg: cfg}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !assert.NoError(t, r.ParseForm()) {
			return
		}
		fx.exchange = append(fx.exchange, r.PostForm)

		if r.PostForm.Get("code") != "good-code" {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"error":"invalid_grant"}`))

			return
		}

		idToken, accessToken, _, err := issuer.IssueTokens(entity.Identity{
			Subject:  "user-1",
			Username: "alice",
			Email:    "alice@example.com",
		})
		if !assert.NoError(t, err) {
			w.WriteHeader(http.StatusInternalServerError)

			return
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"access_token": accessToken,
			"id_token":     idToken,
			"token_type":   "Bearer",
			"expires_in":   3600,
		})
	}))
	t.Cleanup(srv.Close)

	cfg.Auth.AuthorizeURL = srv.URL + "/authorize"
	cfg.Auth.TokenURL = srv.URL + "/token"

	fx.provider = NewProvider(Params{
		Config:    cfg,
		Sessions:  file.NewSessionRepository(cfg),
		Inspector: auth.NewTokenInspector(),
		Opener:    fx.opener,
		Logger:    logs.Discard(),
	})

	return fx
}

func (f *providerFixture) startSignIn(t *testing.T) url.Values {
	t.Helper()

	require.NoError(t, f.provider.SignIn(context.Background()))
	require.NotEmpty(t, f.opener.urls)

	parsed, err := url.Parse(f.opener.urls[len(f.opener.urls)-1])
	require.NoError(t, err)

	return parsed.Query()
}

func TestProvider_SignInBuildsPKCEAuthorizationURL(t *testing.T) {
	fx := newProviderFixture(t)

	query := fx.startSignIn(t)

	assert.Equal(t, "fragments-cli", query.Get("client_id"))
	assert.Equal(t, "code", query.Get("response_type"))
	assert.Equal(t, "openid email", query.Get("scope"))
	assert.Equal(t, "S256", query.Get("code_challenge_method"))
	assert.NotEmpty(t, query.Get("code_challenge"))
	assert.Len(t, query.Get("state"), 64)
}

func TestProvider_CompleteSignInPersistsSession(t *testing.T) {
	fx := newProviderFixture(t)
	ctx := context.Background()

	assert.Nil(t, fx.provider.GetUser(ctx))

	state := fx.startSignIn(t).Get("state")
	session, err := fx.provider.CompleteSignIn(ctx, "good-code", state)
	require.NoError(t, err)

	assert.Equal(t, "alice", session.Identity.Username)
	assert.Equal(t, "alice@example.com", session.Identity.Email)
	assert.WithinDuration(t, time.Now().Add(time.Hour), session.Credential.ExpiresAt, time.Minute)

	claims, err := auth.NewTokenInspector().Inspect(session.Credential.Token)
	require.NoError(t, err)
	assert.Equal(t, "id", claims.Type, "the id token is the bearer credential")

	require.Len(t, fx.exchange, 1)
	assert.NotEmpty(t, fx.exchange[0].Get("code_verifier"))

	restored := fx.provider.GetUser(ctx)
	require.NotNil(t, restored)
	assert.True(t, restored.SameAs(session))
}

func TestProvider_CompleteSignInRejectsUnknownState(t *testing.T) {
	fx := newProviderFixture(t)

	_ = fx.startSignIn(t)
	_, err := fx.provider.CompleteSignIn(context.Background(), "good-code", "forged")

	assert.ErrorIs(t, err, ErrInvalidState)
	assert.Empty(t, fx.exchange)
}

func TestProvider_StateCannotBeReplayed(t *testing.T) {
	fx := newProviderFixture(t)
	ctx := context.Background()

	state := fx.startSignIn(t).Get("state")
	_, err := fx.provider.CompleteSignIn(ctx, "good-code", state)
	require.NoError(t, err)

	_, err = fx.provider.CompleteSignIn(ctx, "good-code", state)
	assert.ErrorIs(t, err, ErrInvalidState)
}

func TestProvider_StateExpires(t *testing.T) {
	fx := newProviderFixture(t)
	now := time.Now()
	fx.provider.now = func() time.Time { return now }

	state := fx.startSignIn(t).Get("state")
	fx.provider.now = func() time.Time { return now.Add(stateTTL + time.Second) }

	_, err := fx.provider.CompleteSignIn(context.Background(), "good-code", state)
	assert.ErrorIs(t, err, ErrInvalidState)
}

func TestProvider_CompleteSignInExchangeFailure(t *testing.T) {
	fx := newProviderFixture(t)
	ctx := context.Background()

	state := fx.startSignIn(t).Get("state")
	_, err := fx.provider.CompleteSignIn(ctx, "bad-code", state)

	require.Error(t, err)
	assert.Nil(t, fx.provider.GetUser(ctx))
}

func TestProvider_SignOutForgetsSession(t *testing.T) {
	fx := newProviderFixture(t)
	ctx := context.Background()

	state := fx.startSignIn(t).Get("state")
	_, err := fx.provider.CompleteSignIn(ctx, "good-code", state)
	require.NoError(t, err)

	pending := fx.startSignIn(t).Get("state")

	require.NoError(t, fx.provider.SignOut(ctx))
	assert.Nil(t, fx.provider.GetUser(ctx))

	_, err = fx.provider.CompleteSignIn(ctx, "good-code", pending)
	assert.ErrorIs(t, err, ErrInvalidState, "sign-out abandons pending sign-ins")

	assert.NoError(t, fx.provider.SignOut(ctx), "signing out twice is harmless")
}

func TestProvider_GetUserIgnoresExpiredSession(t *testing.T) {
	fx := newProviderFixture(t)
	ctx := context.Background()

	expired := entity.NewSession(entity.Identity{Username: "alice"}, entity.Credential{
		Token:     "token",
		ExpiresAt: time.Now().Add(-time.Minute),
	})
	require.NoError(t, file.NewSessionRepository(fx.cfg).SaveSession(ctx, expired))

	assert.Nil(t, fx.provider.GetUser(ctx))
}

func TestBearerHeaders(t *testing.T) {
	session := entity.NewSession(entity.Identity{Username: "alice"}, entity.Credential{Token: "abc"})

	headers, err := BearerHeaders(session)
	require.NoError(t, err)
	assert.Equal(t, "Bearer abc", headers.Get("Authorization"))

	_, err = BearerHeaders(nil)
	assert.ErrorIs(t, err, domainerrors.ErrAuthRequired)

	_, err = BearerHeaders(&entity.Session{})
	assert.ErrorIs(t, err, domainerrors.ErrAuthRequired)
}

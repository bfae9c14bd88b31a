// Package oauth implements the session provider on top of an OAuth2 authorization-code
// flow with PKCE. The flow completes out of band: SignIn hands a URL to the user and
// CompleteSignIn runs when the identity provider redirects back.
package oauth

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"fragments/config"
	"fragments/internal/domain/entity"
	domainerrors "fragments/internal/domain/errors"
	"fragments/internal/domain/repository"
	"fragments/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"golang.org/x/oauth2"
)

const stateTTL = 10 * time.Minute

// ErrInvalidState is returned when a callback carries an unknown, reused or expired state.
var ErrInvalidState = errors.New("invalid or expired sign-in state")

type pendingSignIn struct {
	verifier string
	expiry   time.Time
}

var (
	_ service.SessionProvider = (*Provider)(nil)
	_ service.SignInCompleter = (*Provider)(nil)
)

// Provider is the OAuth2-backed service.SessionProvider.
type Provider struct {
	oauthConfig *oauth2.Config
	httpClient  *http.Client
	sessions    repository.SessionRepository
	inspector   service.TokenInspector
	opener      service.URLOpener
	logger      *slog.Logger
	now         func() time.Time

	// State storage for CSRF protection, keyed by state, holding the PKCE verifier
	stateStore map[string]pendingSignIn
	stateMutex sync.Mutex
}

// Params holds dependencies for Provider, injected by Fx
type Params struct {
	fx.In

	Config    *config.Config
	Sessions  repository.SessionRepository
	Inspector service.TokenInspector
	Opener    service.URLOpener
	Logger    *slog.Logger
}

// NewProvider creates the OAuth2 session provider.
func NewProvider(params Params) *Provider {
	auth := params.Config.Auth

	return &Provider{
		oauthConfig: &oauth2.Config{
			ClientID:     auth.ClientID,
			ClientSecret: auth.ClientSecret,
			RedirectURL:  auth.RedirectURL,
			Scopes:       auth.ScopeList(),
			Endpoint: oauth2.Endpoint{
				AuthURL:  auth.AuthorizeURL,
				TokenURL: auth.TokenURL,
			},
		},
		httpClient: &http.Client{Timeout: params.Config.API.Timeout},
		sessions:   params.Sessions,
		inspector:  params.Inspector,
		opener:     params.Opener,
		logger:     params.Logger,
		now:        time.Now,
		stateStore: make(map[string]pendingSignIn),
	}
}

// GetUser restores the persisted session. Every failure is logged and reported as no session.
func (p *Provider) GetUser(ctx context.Context) *entity.Session {
	session, err := p.sessions.LoadSession(ctx)
	if err != nil {
		if errors.Is(err, repository.ErrSessionNotFound) {
			p.logger.Debug("No session to restore")
		} else {
			p.logger.Warn("Failed to restore session", slog.Any("error", err))
		}

		return nil
	}

	if !session.Usable(p.now()) {
		p.logger.Info("Persisted session has expired",
			slog.String("username", session.Identity.Username),
			slog.Time("expires_at", session.Credential.ExpiresAt),
		)

		return nil
	}

	return session
}

// SignIn builds the authorization URL and hands it to the opener.
func (p *Provider) SignIn(_ context.Context) error {
	state, err := generateState()
	if err != nil {
		return err
	}
	verifier := oauth2.GenerateVerifier()
	p.storeState(state, verifier)

	authURL := p.oauthConfig.AuthCodeURL(state, oauth2.S256ChallengeOption(verifier))
	p.logger.Info("Starting sign-in", slog.String("authorize_url", p.oauthConfig.Endpoint.AuthURL))

	if err := p.opener.Open(authURL); err != nil {
		return errors.Wrap(err, "failed to open authorization URL")
	}

	return nil
}

// CompleteSignIn exchanges the authorization code and persists the resulting session.
func (p *Provider) CompleteSignIn(ctx context.Context, code, state string) (*entity.Session, error) {
	verifier, ok := p.consumeState(state)
	if !ok {
		return nil, ErrInvalidState
	}
	if code == "" {
		return nil, errors.New("authorization code is missing")
	}

	ctx = context.WithValue(ctx, oauth2.HTTPClient, p.httpClient)
	token, err := p.oauthConfig.Exchange(ctx, code, oauth2.VerifierOption(verifier))
	if err != nil {
		return nil, errors.Wrap(err, "failed to exchange code for token")
	}

	session, err := p.sessionFromToken(token)
	if err != nil {
		return nil, err
	}

	if err := p.sessions.SaveSession(ctx, session); err != nil {
		return nil, errors.Wrap(err, "failed to persist session")
	}

	p.logger.Info("Signed in", slog.String("username", session.Identity.Username))

	return session, nil
}

// SignOut forgets the persisted session and any sign-in still in progress.
func (p *Provider) SignOut(ctx context.Context) error {
	p.stateMutex.Lock()
	clear(p.stateStore)
	p.stateMutex.Unlock()

	if err := p.sessions.ClearSession(ctx); err != nil {
		return errors.Wrap(err, "failed to clear session")
	}
	p.logger.Info("Signed out")

	return nil
}

// AuthorizationHeaders returns the bearer header for session.
func (p *Provider) AuthorizationHeaders(session *entity.Session) (http.Header, error) {
	return BearerHeaders(session)
}

// BearerHeaders builds "Authorization: Bearer <token>" for a session.
func BearerHeaders(session *entity.Session) (http.Header, error) {
	if session == nil || session.Credential.Token == "" {
		return nil, domainerrors.NewAuthRequired("authorization headers requested without a session")
	}

	headers := http.Header{}
	headers.Set("Authorization", "Bearer "+session.Credential.Token)

	return headers, nil
}

// sessionFromToken prefers the ID token as the bearer credential, as the fragment store expects.
func (p *Provider) sessionFromToken(token *oauth2.Token) (*entity.Session, error) {
	bearer, _ := token.Extra("id_token").(string)
	if bearer == "" {
		bearer = token.AccessToken
	}
	if bearer == "" {
		return nil, errors.New("token response carried no usable token")
	}

	claims, err := p.inspector.Inspect(bearer)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read identity from token")
	}

	expiresAt := claims.Expiry()
	if expiresAt.IsZero() {
		expiresAt = token.Expiry
	}

	return entity.NewSession(claims.Identity(), entity.Credential{
		Token:     bearer,
		ExpiresAt: expiresAt,
	}), nil
}

// generateState generates a cryptographically secure random state string
func generateState() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", errors.Wrap(err, "failed to generate state")
	}

	return hex.EncodeToString(buf), nil
}

func (p *Provider) storeState(state, verifier string) {
	p.stateMutex.Lock()
	defer p.stateMutex.Unlock()

	now := p.now()
	for s, pending := range p.stateStore {
		if now.After(pending.expiry) {
			delete(p.stateStore, s)
		}
	}
	p.stateStore[state] = pendingSignIn{verifier: verifier, expiry: now.Add(stateTTL)}
}

// consumeState validates and removes the state so it cannot be replayed.
func (p *Provider) consumeState(state string) (string, bool) {
	p.stateMutex.Lock()
	defer p.stateMutex.Unlock()

	pending, ok := p.stateStore[state]
	if !ok {
		return "", false
	}
	delete(p.stateStore, state)

	if p.now().After(pending.expiry) {
		return "", false
	}

	return pending.verifier, true
}

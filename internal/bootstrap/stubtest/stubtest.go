// Package stubtest runs the development fragment store in-process for tests.
package stubtest

import (
	"net/http/httptest"
	"testing"
	"time"

	"fragments/config"
	"fragments/internal/bootstrap"
	"fragments/internal/domain/entity"
	"fragments/internal/domain/service"
	logs "fragments/internal/infra/log"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// SigningKey is the key every stub started by this package signs tokens with.
const SigningKey = "stubtest-signing-key-0123456789abcdef"

// Server is a running stub store.
type Server struct {
	*httptest.Server

	Config *config.Config
	tokens service.TokenService
}

// NewConfig returns a configuration pointing nowhere yet; Start fills in the URLs.
func NewConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Stub.SigningKey = SigningKey
	cfg.ApplyDefaults()

	return cfg
}

// Start serves the stub built from cfg until the test ends. cfg.API and cfg.Auth are
// pointed at the server.
func Start(t testing.TB, cfg *config.Config) *Server {
	t.Helper()

	var (
		e      *echo.Echo
		tokens service.TokenService
	)

	app := fx.New(
		fx.NopLogger,
		fx.Supply(cfg, logs.Discard()),
		bootstrap.Stub(),
		fx.Populate(&e, &tokens),
	)
	if err := app.Err(); err != nil {
		t.Fatalf("build stub: %v", err)
	}

	srv := httptest.NewServer(e)
	t.Cleanup(srv.Close)

	cfg.API.BaseURL = srv.URL
	cfg.Auth.AuthorizeURL = srv.URL + "/oauth2/authorize"
	cfg.Auth.TokenURL = srv.URL + "/oauth2/token"

	return &Server{Server: srv, Config: cfg, tokens: tokens}
}

// Session issues a valid ID token for username and wraps it in a session, skipping the browser flow.
func (s *Server) Session(t testing.TB, username string) *entity.Session {
	t.Helper()

	identity := entity.Identity{Subject: "subject-" + username, Username: username}
	idToken, _, expiresAt, err := s.tokens.IssueTokens(identity)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	return entity.NewSession(identity, entity.Credential{Token: idToken, ExpiresAt: expiresAt})
}

// ForgedSession returns a locally usable session whose signature the store rejects.
func (s *Server) ForgedSession(t testing.TB, username string) *entity.Session {
	t.Helper()

	session := s.Session(t, username)
	session.Credential.Token += "tampered"
	session.Credential.ExpiresAt = time.Now().Add(time.Hour)

	return session
}

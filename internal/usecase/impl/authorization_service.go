package impl

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"log/slog"
	"strings"
	"sync"
	"time"

	"fragments/internal/domain/entity"
	domainerrors "fragments/internal/domain/errors"
	"fragments/internal/domain/service"
	"fragments/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"golang.org/x/oauth2"
)

const codeTTL = 5 * time.Minute

// subjectNamespace derives stable subjects from development usernames.
var subjectNamespace = uuid.MustParse("6f1c5b0e-6a53-4c1e-9f1e-2b0f0f6a8d11")

// AuthorizationServiceParams holds dependencies for authorizationService, injected by Fx.
type AuthorizationServiceParams struct {
	fx.In

	TokenService service.TokenService
	Logger       *slog.Logger
}

type pendingCode struct {
	identity      entity.Identity
	redirectURI   string
	codeChallenge string
	expiry        time.Time
}

type authorizationService struct {
	tokenService service.TokenService
	logger       *slog.Logger
	now          func() time.Time

	mu    sync.Mutex
	codes map[string]pendingCode
}

// NewAuthorizationService creates the development identity provider.
func NewAuthorizationService(params AuthorizationServiceParams) usecase.AuthorizationUsecase {
	return &authorizationService{
		tokenService: params.TokenService,
		logger:       params.Logger,
		now:          time.Now,
		codes:        make(map[string]pendingCode),
	}
}

// Authorize approves every request; it exists so the client can be exercised end to end.
func (s *authorizationService) Authorize(_ context.Context, req *usecase.AuthorizationRequest, username string) (string, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return "", domainerrors.ErrInvalidGrant.WithDetails("username is required")
	}

	buf := make([]byte, 24)
	if _, err := rand.Read(buf); err != nil {
		return "", errors.Wrap(err, "failed to generate authorization code")
	}
	code := hex.EncodeToString(buf)

	identity := entity.Identity{
		Subject:  uuid.NewSHA1(subjectNamespace, []byte(username)).String(),
		Username: username,
	}
	if strings.Contains(username, "@") {
		identity.Email = username
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	for c, pending := range s.codes {
		if now.After(pending.expiry) {
			delete(s.codes, c)
		}
	}
	s.codes[code] = pendingCode{
		identity:      identity,
		redirectURI:   req.RedirectURI,
		codeChallenge: req.CodeChallenge,
		expiry:        now.Add(codeTTL),
	}

	s.logger.Info("Authorization approved", slog.String("username", username), slog.String("client_id", req.ClientID))

	return code, nil
}

// Exchange redeems a code once.
func (s *authorizationService) Exchange(_ context.Context, code, verifier, redirectURI string) (*usecase.TokenGrant, error) {
	s.mu.Lock()
	pending, ok := s.codes[code]
	delete(s.codes, code)
	s.mu.Unlock()

	switch {
	case !ok:
		return nil, domainerrors.ErrInvalidGrant.WithDetails("unknown or used code")
	case s.now().After(pending.expiry):
		return nil, domainerrors.ErrInvalidGrant.WithDetails("code expired")
	case pending.redirectURI != redirectURI:
		return nil, domainerrors.ErrInvalidGrant.WithDetails("redirect_uri mismatch")
	case verifier == "" || oauth2.S256ChallengeFromVerifier(verifier) != pending.codeChallenge:
		return nil, domainerrors.ErrInvalidGrant.WithDetails("code_verifier mismatch")
	}

	idToken, accessToken, expiresAt, err := s.tokenService.IssueTokens(pending.identity)
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue tokens")
	}

	return &usecase.TokenGrant{
		AccessToken: accessToken,
		IDToken:     idToken,
		TokenType:   "Bearer",
		ExpiresIn:   int64(expiresAt.Sub(s.now()).Seconds()),
	}, nil
}

// Identify validates a bearer token.
func (s *authorizationService) Identify(_ context.Context, bearer string) (*entity.Identity, error) {
	claims, err := s.tokenService.ValidateToken(bearer)
	if err != nil {
		return nil, domainerrors.ErrUnauthorized.WithDetails(err.Error())
	}

	identity := claims.Identity()

	return &identity, nil
}

// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"

	"fragments/config"
	"fragments/internal/domain/entity"
	"fragments/internal/domain/service"
)

const (
	tokenTypeID     = "id"
	tokenTypeAccess = "access"

	issuerName = "fragments-stub"
)

// tokenInspector reads claims without a key. The client only needs the identity and
// expiry; the fragment store is the party that verifies signatures.
type tokenInspector struct {
	parser *jwt.Parser
}

// NewTokenInspector is the constructor for the client-side claims reader.
func NewTokenInspector() service.TokenInspector {
	return &tokenInspector{parser: jwt.NewParser()}
}

// Inspect parses the token's claims without verifying the signature.
func (i *tokenInspector) Inspect(tokenString string) (*service.Claims, error) {
	claims := &service.Claims{}
	if _, _, err := i.parser.ParseUnverified(tokenString, claims); err != nil {
		return nil, errors.Wrap(err, "failed to parse token structure")
	}

	return claims, nil
}

// jwtService is a concrete implementation of the TokenService interface using HS256 JWTs.
type jwtService struct {
	tokenInspector

	signingKey []byte        // Secret key for signing both token types.
	ttl        time.Duration // Time-to-live for issued tokens.
	now        func() time.Time
}

// NewJWTService is the constructor for jwtService.
// It takes configuration values to create a new token service instance.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.Stub.SigningKey == "" {
		return nil, errors.New("stub signing key must be provided")
	}

	ttl := cfg.Stub.TokenTTL
	if ttl <= 0 {
		ttl = time.Hour
	}

	return &jwtService{
		tokenInspector: tokenInspector{parser: jwt.NewParser()},
		signingKey:     []byte(cfg.Stub.SigningKey),
		ttl:            ttl,
		now:            time.Now,
	}, nil
}

// IssueTokens creates an ID token and an access token for the identity.
func (s *jwtService) IssueTokens(identity entity.Identity) (idToken string, accessToken string, expiresAt time.Time, err error) {
	issuedAt := s.now()
	expiresAt = issuedAt.Add(s.ttl)

	idToken, err = s.generateToken(identity, tokenTypeID, issuedAt, expiresAt)
	if err != nil {
		return "", "", time.Time{}, err
	}

	accessToken, err = s.generateToken(identity, tokenTypeAccess, issuedAt, expiresAt)
	if err != nil {
		return "", "", time.Time{}, err
	}

	return idToken, accessToken, expiresAt, nil
}

// ValidateToken checks the signature, algorithm and expiry of a token string.
func (s *jwtService) ValidateToken(tokenString string) (*service.Claims, error) {
	claims := &service.Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return s.signingKey, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithIssuer(issuerName),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return nil, errors.Wrap(err, "invalid token")
	}
	if !token.Valid {
		return nil, errors.New("invalid token")
	}
	if claims.Subject == "" {
		return nil, errors.New("token has no subject")
	}

	return claims, nil
}

// generateToken is a private helper to create a JWT with specific claims.
func (s *jwtService) generateToken(identity entity.Identity, tokenType string, issuedAt, expiresAt time.Time) (string, error) {
	claims := service.Claims{
		Email:             identity.Email,
		PreferredUsername: identity.Username,
		Type:              tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuerName,
			Subject:   identity.Subject,
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.signingKey)
	if err != nil {
		return "", errors.Wrap(err, "failed to sign token")
	}

	return signed, nil
}

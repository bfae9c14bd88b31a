package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"fragments/internal/domain/entity"
)

// Claims defines the claims read from identity provider tokens.
// Username falls back through the provider-specific claim names.
type Claims struct {
	Email             string `json:"email,omitempty"`
	PreferredUsername string `json:"preferred_username,omitempty"`
	CognitoUsername   string `json:"cognito:username,omitempty"`
	Type              string `json:"type,omitempty"` // "id" or "access"
	jwt.RegisteredClaims
}

// Identity derives the display identity from the claims.
func (c *Claims) Identity() entity.Identity {
	username := c.CognitoUsername
	if username == "" {
		username = c.PreferredUsername
	}
	if username == "" {
		username = c.Email
	}
	if username == "" {
		username = c.Subject
	}

	return entity.Identity{
		Subject:  c.Subject,
		Username: username,
		Email:    c.Email,
	}
}

// Expiry returns the exp claim, or the zero time when absent.
func (c *Claims) Expiry() time.Time {
	if c.ExpiresAt == nil {
		return time.Time{}
	}

	return c.ExpiresAt.Time
}

// TokenInspector reads claims from a token the client cannot verify (it holds no provider key).
type TokenInspector interface {
	// Inspect parses the token without verifying its signature.
	Inspect(tokenString string) (*Claims, error)
}

// TokenService issues and validates signed tokens; used by the development identity provider.
type TokenService interface {
	TokenInspector

	// IssueTokens creates an ID token and an access token for the identity.
	IssueTokens(identity entity.Identity) (idToken string, accessToken string, expiresAt time.Time, err error)

	// ValidateToken checks signature and expiry and returns the claims.
	ValidateToken(tokenString string) (*Claims, error)
}

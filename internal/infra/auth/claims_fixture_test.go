package auth

import (
	"github.com/golang-jwt/jwt/v5"

	"fragments/internal/domain/service"
)

type jwtClaimsFixture struct {
	cognito   string
	preferred string
	email     string
	sub       string
}

func (f jwtClaimsFixture) build() *service.Claims {
	return &service.Claims{
		CognitoUsername:   f.cognito,
		PreferredUsername: f.preferred,
		Email:             f.email,
		RegisteredClaims:  jwt.RegisteredClaims{Subject: f.sub},
	}
}

package usecase

import (
	"context"

	"fragments/internal/domain/entity"
)

// AuthorizationRequest is an authorization-code request as received at the authorize endpoint.
type AuthorizationRequest struct {
	ClientID            string `query:"client_id" form:"client_id" validate:"required"`
	RedirectURI         string `query:"redirect_uri" form:"redirect_uri" validate:"required,url"`
	ResponseType        string `query:"response_type" form:"response_type" validate:"required,eq=code"`
	Scope               string `query:"scope" form:"scope"`
	State               string `query:"state" form:"state" validate:"required"`
	CodeChallenge       string `query:"code_challenge" form:"code_challenge" validate:"required"`
	CodeChallengeMethod string `query:"code_challenge_method" form:"code_challenge_method" validate:"required,eq=S256"`
	LoginHint           string `query:"login_hint" form:"login_hint"`
}

// TokenGrant is the token endpoint's successful answer.
type TokenGrant struct {
	AccessToken string `json:"access_token"`
	IDToken     string `json:"id_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
}

// AuthorizationUsecase is the development identity provider.
type AuthorizationUsecase interface {
	// Authorize approves the request for username and returns a single-use code.
	Authorize(ctx context.Context, req *AuthorizationRequest, username string) (code string, err error)

	// Exchange redeems a code. The verifier must match the challenge and the redirect URI
	// must match the one used at authorization.
	Exchange(ctx context.Context, code, verifier, redirectURI string) (*TokenGrant, error)

	// Identify returns the identity for a bearer token issued by Exchange.
	Identify(ctx context.Context, bearer string) (*entity.Identity, error)
}

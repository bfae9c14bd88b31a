package service

import (
	"context"
	"net/http"

	"fragments/internal/domain/entity"
)

// Authorizer produces the headers that authorize a request for a session.
type Authorizer interface {
	// AuthorizationHeaders always includes "Authorization: Bearer <token>".
	// A nil session or one without a token is a caller bug and yields an AuthRequired failure.
	AuthorizationHeaders(session *entity.Session) (http.Header, error)
}

// SessionProvider obtains and holds the authenticated identity.
type SessionProvider interface {
	Authorizer

	// GetUser recovers a previously established session. It never fails:
	// any recovery problem is logged and reported as nil.
	GetUser(ctx context.Context) *entity.Session

	// SignIn starts the external authentication flow. The session is delivered out of band.
	SignIn(ctx context.Context) error

	// SignOut invalidates the current session; afterwards GetUser reports nil.
	SignOut(ctx context.Context) error
}

// SignInCompleter finishes the out-of-band part of SignIn when the identity provider redirects back.
type SignInCompleter interface {
	CompleteSignIn(ctx context.Context, code, state string) (*entity.Session, error)
}

// URLOpener hands an authorization URL to the user, typically by launching a browser.
type URLOpener interface {
	Open(url string) error
}

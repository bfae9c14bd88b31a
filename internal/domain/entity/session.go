// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Session is the authenticated context under which fragment operations are authorized.
// It is passed explicitly to every remote call; the ID lets callers detect that the
// session changed while a request was in flight.
type Session struct {
	ID         uuid.UUID  `json:"id"`         // Client-side identity of this sign-in, regenerated on every sign-in.
	Identity   Identity   `json:"identity"`   // Display identity taken from the identity provider's token.
	Credential Credential `json:"credential"` // Bearer credential presented to the fragment store.
	CreatedAt  time.Time  `json:"createdAt"`  // When the sign-in completed.
}

// Identity is the user profile exposed by the identity provider.
type Identity struct {
	Subject  string `json:"subject"`  // Provider-specific user id ('sub' claim).
	Username string `json:"username"` // Name shown to the user.
	Email    string `json:"email"`
}

// Credential is a bearer token whose lifetime is controlled by the identity provider.
type Credential struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"` // Zero when the provider did not state an expiry.
}

// NewSession builds a session with a fresh ID.
func NewSession(identity Identity, credential Credential) *Session {
	return &Session{
		ID:         uuid.New(),
		Identity:   identity,
		Credential: credential,
		CreatedAt:  time.Now(),
	}
}

// Expired reports whether the credential is past its expiry at the given time.
func (c Credential) Expired(now time.Time) bool {
	return !c.ExpiresAt.IsZero() && !now.Before(c.ExpiresAt)
}

// Usable reports whether the session can authorize requests at the given time.
func (s *Session) Usable(now time.Time) bool {
	return s != nil && s.Credential.Token != "" && !s.Credential.Expired(now)
}

// SameAs reports whether both values describe the same sign-in.
func (s *Session) SameAs(other *Session) bool {
	if s == nil || other == nil {
		return false
	}

	return s.ID == other.ID
}

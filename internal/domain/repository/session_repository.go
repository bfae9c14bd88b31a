package repository

import (
	"context"

	"fragments/internal/domain/entity"

	"github.com/pkg/errors"
)

// Domain-specific errors for session persistence.
var (
	// ErrSessionNotFound is returned when no session has been persisted.
	ErrSessionNotFound = errors.New("no persisted session")
)

// SessionRepository persists the signed-in session between runs so it can be restored.
type SessionRepository interface {
	// SaveSession replaces the persisted session.
	SaveSession(ctx context.Context, session *entity.Session) error

	// LoadSession returns the persisted session or ErrSessionNotFound.
	LoadSession(ctx context.Context) (*entity.Session, error)

	// ClearSession removes the persisted session. Clearing an absent session is not an error.
	ClearSession(ctx context.Context) error
}

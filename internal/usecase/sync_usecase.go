package usecase

import (
	"context"

	"fragments/internal/domain/entity"

	"github.com/pkg/errors"
)

// ErrSessionChanged is returned when the session that started an operation was replaced or
// signed out before the operation finished; its result was discarded.
var ErrSessionChanged = errors.New("session changed while the request was in flight")

// SyncState is the controller's view state.
type SyncState int

const (
	// StateAnonymous means no session: the view is empty and nothing may be requested.
	StateAnonymous SyncState = iota
	// StateLoading means an authoritative refresh is in flight.
	StateLoading
	// StateReady means Fragments mirrors the last successful refresh.
	StateReady
	// StateError means the last refresh failed; Err holds the reason.
	StateError
)

func (s SyncState) String() string {
	switch s {
	case StateAnonymous:
		return "anonymous"
	case StateLoading:
		return "loading"
	case StateReady:
		return "ready"
	case StateError:
		return "error"
	default:
		return "unknown"
	}
}

// SyncView is an immutable snapshot for presentation.
type SyncView struct {
	State      SyncState
	User       *entity.Identity  // nil while anonymous
	Fragments  []entity.Fragment // server order; empty while anonymous
	Err        error             // refresh failure behind StateError
	Diagnostic error             // last failed user action, cleared by the next success
	Draft      entity.Draft
	Detail     *entity.Fragment // expanded fragment, if any
}

// Empty reports whether a ready view holds no fragments.
func (v SyncView) Empty() bool {
	return v.State == StateReady && len(v.Fragments) == 0
}

// SyncUsecase keeps the local view of the current user's fragments consistent with the store.
// Every mutation is followed by a full refresh; nothing is patched locally.
type SyncUsecase interface {
	// Restore recovers a persisted session and refreshes. Without one the view stays anonymous
	// and nothing is requested.
	Restore(ctx context.Context) error

	// Attach makes session current and refreshes.
	Attach(ctx context.Context, session *entity.Session) error

	// SignIn starts the identity provider's flow; completion arrives through Attach.
	SignIn(ctx context.Context) error

	// Refresh re-fetches the fragment list.
	Refresh(ctx context.Context) error

	// SetDraft replaces the pending input for the next Create.
	SetDraft(content string, fragmentType entity.FragmentType)

	// Create stores the draft. On success the draft is cleared and the view refreshed. A non-nil
	// fragment with a non-nil error means the fragment was stored but the refresh failed.
	Create(ctx context.Context) (*entity.Fragment, error)

	// Delete removes a fragment and refreshes. Failures leave the view untouched.
	Delete(ctx context.Context, id string) error

	// Expand fetches a fragment's content into the view's detail.
	Expand(ctx context.Context, id string) (*entity.Fragment, error)

	// Collapse clears the expanded detail.
	Collapse()

	// SignOut awaits the provider and then always returns the view to anonymous.
	SignOut(ctx context.Context) error

	// View returns a snapshot of the current state.
	View() SyncView
}

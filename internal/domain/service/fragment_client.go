package service

import (
	"context"

	"fragments/internal/domain/entity"
)

// FragmentClient performs the remote fragment operations for a session.
// Every failure is a *errors.FragmentError; nothing is retried.
type FragmentClient interface {
	// ListFragments returns the session's fragments in server order, possibly empty.
	ListFragments(ctx context.Context, session *entity.Session) ([]entity.Fragment, error)

	// CreateFragment stores content under the given type. Empty content or an unsupported
	// type is rejected before any request is sent. Each call creates a new fragment.
	CreateFragment(ctx context.Context, session *entity.Session, content []byte, fragmentType entity.FragmentType) (*entity.Fragment, error)

	// DeleteFragment removes a fragment. Deleting an unknown id reports the store's 404.
	DeleteFragment(ctx context.Context, session *entity.Session, id string) error

	// GetFragment fetches the fragment's raw content and type.
	GetFragment(ctx context.Context, session *entity.Session, id string) (*entity.Fragment, error)

	// GetFragmentInfo fetches metadata only.
	GetFragmentInfo(ctx context.Context, session *entity.Session, id string) (*entity.Fragment, error)
}

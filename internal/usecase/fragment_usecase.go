package usecase

import (
	"context"

	"fragments/internal/domain/entity"
)

// FragmentUsecase is the store side of the fragment API, scoped to one owner per call.
type FragmentUsecase interface {
	// CreateFragment stores content under a new id. Empty content, an unsupported type or
	// content over the size limit is rejected.
	CreateFragment(ctx context.Context, ownerID string, fragmentType entity.FragmentType, content []byte) (*entity.Fragment, error)

	// ListFragments returns the owner's fragments in creation order, without content.
	ListFragments(ctx context.Context, ownerID string) ([]entity.Fragment, error)

	// GetFragment returns the fragment with its content.
	GetFragment(ctx context.Context, ownerID, id string) (*entity.Fragment, error)

	// DeleteFragment removes the fragment.
	DeleteFragment(ctx context.Context, ownerID, id string) error
}

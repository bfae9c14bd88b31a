// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"fragments/internal/domain/entity"

	"github.com/pkg/errors"
)

// Domain-specific errors for fragment persistence.
var (
	// ErrFragmentNotFound is returned when no fragment with the id exists for the owner.
	ErrFragmentNotFound = errors.New("fragment not found")
)

// FragmentRepository stores fragments per owner. It backs the development fragment store.
type FragmentRepository interface {
	// Save inserts or replaces a fragment; ID and OwnerID must be set.
	Save(ctx context.Context, fragment *entity.Fragment) error

	// FindByID returns the owner's fragment including its content.
	FindByID(ctx context.Context, ownerID, id string) (*entity.Fragment, error)

	// FindByOwner returns the owner's fragments in insertion order, without content.
	FindByOwner(ctx context.Context, ownerID string) ([]entity.Fragment, error)

	// Delete removes the owner's fragment. Returns ErrFragmentNotFound if absent.
	Delete(ctx context.Context, ownerID, id string) error
}

// Package memory contains an in-process implementation of the persistence layer.
// It backs the development fragment store; nothing survives a restart.
package memory

import (
	"cmp"
	"context"
	"slices"
	"sync"

	"fragments/internal/domain/entity"
	"fragments/internal/domain/repository"

	"github.com/pkg/errors"
)

// fragmentRepository implements the repository.FragmentRepository interface.
type fragmentRepository struct {
	mu     sync.RWMutex
	seq    uint64
	owners map[string]map[string]storedFragment
}

// storedFragment remembers insertion order, which timestamps alone cannot break ties on.
type storedFragment struct {
	fragment entity.Fragment
	seq      uint64
}

// NewFragmentRepository is the constructor for fragmentRepository.
func NewFragmentRepository() repository.FragmentRepository {
	return &fragmentRepository{
		owners: make(map[string]map[string]storedFragment),
	}
}

// Save inserts or replaces a fragment.
func (repo *fragmentRepository) Save(_ context.Context, fragment *entity.Fragment) error {
	if fragment == nil || fragment.ID == "" || fragment.OwnerID == "" {
		return errors.New("fragment id and owner are required")
	}

	repo.mu.Lock()
	defer repo.mu.Unlock()

	byID, ok := repo.owners[fragment.OwnerID]
	if !ok {
		byID = make(map[string]storedFragment)
		repo.owners[fragment.OwnerID] = byID
	}

	stored, exists := byID[fragment.ID]
	if !exists {
		repo.seq++
		stored.seq = repo.seq
	}
	stored.fragment = *fragment
	stored.fragment.Content = slices.Clone(fragment.Content)
	byID[fragment.ID] = stored

	return nil
}

// FindByID retrieves a fragment with its content.
func (repo *fragmentRepository) FindByID(_ context.Context, ownerID, id string) (*entity.Fragment, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	stored, ok := repo.owners[ownerID][id]
	if !ok {
		return nil, repository.ErrFragmentNotFound
	}
	found := stored.fragment
	found.Content = slices.Clone(stored.fragment.Content)

	return &found, nil
}

// FindByOwner retrieves metadata for all of an owner's fragments in insertion order.
func (repo *fragmentRepository) FindByOwner(_ context.Context, ownerID string) ([]entity.Fragment, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	stored := make([]storedFragment, 0, len(repo.owners[ownerID]))
	for _, s := range repo.owners[ownerID] {
		stored = append(stored, s)
	}
	slices.SortFunc(stored, func(a, b storedFragment) int {
		return cmp.Compare(a.seq, b.seq)
	})

	fragments := make([]entity.Fragment, 0, len(stored))
	for _, s := range stored {
		meta := s.fragment
		meta.Content = nil
		fragments = append(fragments, meta)
	}

	return fragments, nil
}

// Delete removes a fragment.
func (repo *fragmentRepository) Delete(_ context.Context, ownerID, id string) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	if _, ok := repo.owners[ownerID][id]; !ok {
		return repository.ErrFragmentNotFound
	}
	delete(repo.owners[ownerID], id)

	return nil
}

package memory

import (
	"context"
	"testing"
	"time"

	"fragments/internal/domain/entity"
	"fragments/internal/domain/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFragmentRepository_ScopedByOwner(t *testing.T) {
	ctx := context.Background()
	repo := NewFragmentRepository()
	now := time.Now()

	require.NoError(t, repo.Save(ctx, &entity.Fragment{ID: "b", OwnerID: "alice", Created: now, Content: []byte("two")}))
	require.NoError(t, repo.Save(ctx, &entity.Fragment{ID: "a", OwnerID: "alice", Created: now, Content: []byte("one")}))
	require.NoError(t, repo.Save(ctx, &entity.Fragment{ID: "c", OwnerID: "bob", Created: now, Content: []byte("three")}))

	alice, err := repo.FindByOwner(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, []string{"b", "a"}, entity.FragmentIDs(alice))
	assert.Nil(t, alice[0].Content)

	_, err = repo.FindByID(ctx, "alice", "c")
	assert.ErrorIs(t, err, repository.ErrFragmentNotFound)

	found, err := repo.FindByID(ctx, "bob", "c")
	require.NoError(t, err)
	assert.Equal(t, []byte("three"), found.Content)
}

func TestFragmentRepository_Delete(t *testing.T) {
	ctx := context.Background()
	repo := NewFragmentRepository()

	require.NoError(t, repo.Save(ctx, &entity.Fragment{ID: "a", OwnerID: "alice"}))
	require.NoError(t, repo.Delete(ctx, "alice", "a"))

	assert.ErrorIs(t, repo.Delete(ctx, "alice", "a"), repository.ErrFragmentNotFound)

	empty, err := repo.FindByOwner(ctx, "alice")
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestFragmentRepository_SaveCopiesContent(t *testing.T) {
	ctx := context.Background()
	repo := NewFragmentRepository()
	content := []byte("hello")

	require.NoError(t, repo.Save(ctx, &entity.Fragment{ID: "a", OwnerID: "alice", Content: content}))
	content[0] = 'j'

	found, err := repo.FindByID(ctx, "alice", "a")
	require.NoError(t, err)
	assert.Equal(t, "hello", string(found.Content))
}

func TestFragmentRepository_SaveRequiresIdentity(t *testing.T) {
	assert.Error(t, NewFragmentRepository().Save(context.Background(), &entity.Fragment{ID: "a"}))
}

func TestFragmentRepository_ReplaceKeepsPosition(t *testing.T) {
	ctx := context.Background()
	repo := NewFragmentRepository()

	require.NoError(t, repo.Save(ctx, &entity.Fragment{ID: "a", OwnerID: "alice", Size: 1}))
	require.NoError(t, repo.Save(ctx, &entity.Fragment{ID: "b", OwnerID: "alice", Size: 1}))
	require.NoError(t, repo.Save(ctx, &entity.Fragment{ID: "a", OwnerID: "alice", Size: 2}))

	all, err := repo.FindByOwner(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, entity.FragmentIDs(all))
	assert.Equal(t, 2, all[0].Size)
}

package kvrepo

import (
	"context"
	"testing"

	"zonewatch/internal/infra/persistence/kv"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMembershipRepository_EmptyByDefault(t *testing.T) {
	ctx := context.Background()
	repo := NewMembershipRepository(kv.NewMemory())

	inside, err := repo.Contains(ctx, "zone-1")
	require.NoError(t, err)
	assert.False(t, inside)

	ids, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, ids)
}

func TestMembershipRepository_AddRemove(t *testing.T) {
	ctx := context.Background()
	repo := NewMembershipRepository(kv.NewMemory())

	require.NoError(t, repo.Add(ctx, "zone-1"))
	require.NoError(t, repo.Add(ctx, "zone-2"))

	inside, err := repo.Contains(ctx, "zone-1")
	require.NoError(t, err)
	assert.True(t, inside)

	require.NoError(t, repo.Remove(ctx, "zone-1"))

	inside, err = repo.Contains(ctx, "zone-1")
	require.NoError(t, err)
	assert.False(t, inside)

	ids, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"zone-2"}, ids)
}

func TestMembershipRepository_AddIsIdempotent(t *testing.T) {
	ctx := context.Background()
	repo := NewMembershipRepository(kv.NewMemory())

	require.NoError(t, repo.Add(ctx, "zone-1"))
	require.NoError(t, repo.Add(ctx, "zone-1"))

	ids, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"zone-1"}, ids)
}

func TestMembershipRepository_RemoveMissingIsNoOp(t *testing.T) {
	repo := NewMembershipRepository(kv.NewMemory())

	assert.NoError(t, repo.Remove(context.Background(), "zone-1"))
}

func TestMembershipRepository_Clear(t *testing.T) {
	ctx := context.Background()
	repo := NewMembershipRepository(kv.NewMemory())

	require.NoError(t, repo.Add(ctx, "zone-1"))
	require.NoError(t, repo.Clear(ctx))
	require.NoError(t, repo.Clear(ctx))

	ids, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, ids)
}

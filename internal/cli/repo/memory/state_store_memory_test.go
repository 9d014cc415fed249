package memory

import (
	"testing"

	"Lumme/internal/cli/repo"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStateStore_SetGetRemove(t *testing.T) {
	s := NewStateStore()

	_, err := s.Get(repo.KeyToken)
	assert.ErrorIs(t, err, repo.ErrNotFound)

	require.NoError(t, s.Set(repo.KeyToken, "abc"))
	v, err := s.Get(repo.KeyToken)
	require.NoError(t, err)
	assert.Equal(t, "abc", v)
	assert.Equal(t, 1, s.Len())

	require.NoError(t, s.Remove(repo.KeyToken))
	require.NoError(t, s.Remove(repo.KeyToken))
	assert.Equal(t, 0, s.Len())
}

func TestStateStore_ZeroValueUsable(t *testing.T) {
	var s StateStore

	_, err := s.Get(repo.KeyCart)
	assert.ErrorIs(t, err, repo.ErrNotFound)
	require.NoError(t, s.Remove(repo.KeyCart))

	require.NoError(t, s.Set(repo.KeyCart, ""))
	v, err := s.Get(repo.KeyCart)
	require.NoError(t, err)
	assert.Equal(t, "", v)
	assert.Equal(t, 1, s.Len())
}

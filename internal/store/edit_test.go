package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddRemoveDep(t *testing.T) {
	s := setupTestStore(t)
	a, err := s.Create("a", CreateOptions{Priority: 2})
	require.NoError(t, err)

	require.NoError(t, s.AddDep(a.ID, "p-one"))
	require.NoError(t, s.AddDep(a.ID, "p-two"))
	// Unique membership: re-adding is a no-op
	require.NoError(t, s.AddDep(a.ID, "p-one"))

	got, err := s.Get(a.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"p-one", "p-two"}, got.Deps)

	require.NoError(t, s.RemoveDep(a.ID, "p-one"))
	// Removing an absent dep is a no-op
	require.NoError(t, s.RemoveDep(a.ID, "p-gone"))

	got, err = s.Get(a.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"p-two"}, got.Deps)
}

func TestAddDepAllowsDangling(t *testing.T) {
	s := setupTestStore(t)
	a, err := s.Create("a", CreateOptions{Priority: 2})
	require.NoError(t, err)

	// The dep target does not exist; the reference dangles, which is
	// explicitly permitted.
	require.NoError(t, s.AddDep(a.ID, "p-nowhere"))
	got, err := s.Get(a.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"p-nowhere"}, got.Deps)
}

func TestLinkSymmetric(t *testing.T) {
	s := setupTestStore(t)
	a, err := s.Create("a", CreateOptions{Priority: 2})
	require.NoError(t, err)
	b, err := s.Create("b", CreateOptions{Priority: 2})
	require.NoError(t, err)

	require.NoError(t, s.AddLink(a.ID, b.ID))

	gotA, err := s.Get(a.ID)
	require.NoError(t, err)
	gotB, err := s.Get(b.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{b.ID}, gotA.Links)
	assert.Equal(t, []string{a.ID}, gotB.Links)

	require.NoError(t, s.RemoveLink(b.ID, a.ID))
	gotA, _ = s.Get(a.ID)
	gotB, _ = s.Get(b.ID)
	assert.Empty(t, gotA.Links)
	assert.Empty(t, gotB.Links)
}

func TestLinkToMissingTicket(t *testing.T) {
	s := setupTestStore(t)
	a, err := s.Create("a", CreateOptions{Priority: 2})
	require.NoError(t, err)

	require.NoError(t, s.AddLink(a.ID, "p-ghost"))
	got, err := s.Get(a.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"p-ghost"}, got.Links)
}

func TestSetClearParent(t *testing.T) {
	s := setupTestStore(t)
	a, err := s.Create("a", CreateOptions{Priority: 2})
	require.NoError(t, err)

	require.NoError(t, s.SetParent(a.ID, "p-epic"))
	got, err := s.Get(a.ID)
	require.NoError(t, err)
	assert.Equal(t, "p-epic", got.Parent)

	require.NoError(t, s.ClearParent(a.ID))
	got, err = s.Get(a.ID)
	require.NoError(t, err)
	assert.Empty(t, got.Parent)
}

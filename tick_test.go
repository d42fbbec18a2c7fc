package tick_test

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	tick "github.com/tickfile/tick"
	"github.com/tickfile/tick/internal/store"
)

// The public API is what extension programs build on: open a store,
// scan it, query the graph.
func TestLibraryRoundTrip(t *testing.T) {
	dir := filepath.Join(t.TempDir(), ".tickets")
	s, err := store.Init(dir, "p")
	require.NoError(t, err)

	base, err := s.Create("base", store.CreateOptions{Priority: 2})
	require.NoError(t, err)
	_, err = s.Create("dependent", store.CreateOptions{Priority: 2, Deps: []string{base.ID}})
	require.NoError(t, err)

	opened, err := tick.Open(dir)
	require.NoError(t, err)

	tickets, err := opened.LoadAll()
	require.NoError(t, err)
	require.Len(t, tickets, 2)

	g := tick.NewGraph(tickets)
	assert.Len(t, g.Ready(), 1)
	assert.Len(t, g.Blocked(), 1)

	require.NoError(t, opened.Close(base.ID))
	tickets, err = opened.LoadAll()
	require.NoError(t, err)
	g = tick.NewGraph(tickets)
	assert.Len(t, g.Ready(), 1)
	assert.Empty(t, g.Blocked())
}

func TestOpenMissingDir(t *testing.T) {
	_, err := tick.Open(filepath.Join(t.TempDir(), "nope"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, tick.ErrIO))
}

package store

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tickfile/tick/internal/codec"
	"github.com/tickfile/tick/internal/types"
)

func setupTestStore(t *testing.T) *FileStorage {
	t.Helper()
	s, err := Init(filepath.Join(t.TempDir(), ".tickets"), "p")
	require.NoError(t, err)
	return s
}

func TestCreate(t *testing.T) {
	s := setupTestStore(t)

	ticket, err := s.Create("Fix the parser", CreateOptions{Priority: 1})
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(ticket.ID, "p-"), "ID %q should carry the store prefix", ticket.ID)
	assert.Len(t, ticket.ID, len("p-")+6)
	assert.Equal(t, types.StatusOpen, ticket.Status)
	assert.Nil(t, ticket.ClosedAt)
	assert.False(t, ticket.Created.IsZero())

	got, err := s.Get(ticket.ID)
	require.NoError(t, err)
	assert.Equal(t, ticket.ID, got.ID)
	assert.Equal(t, "Fix the parser", got.Title)
	assert.Equal(t, 1, got.Priority)
}

func TestCreateDefaults(t *testing.T) {
	s := setupTestStore(t)

	ticket, err := s.Create("", CreateOptions{Priority: 2})
	require.NoError(t, err)
	assert.Equal(t, "untitled", ticket.Title)
	assert.Equal(t, "task", ticket.Type)
}

func TestCreateExplicitID(t *testing.T) {
	s := setupTestStore(t)

	ticket, err := s.Create("pinned", CreateOptions{ID: "p-fixed1", Priority: 2})
	require.NoError(t, err)
	assert.Equal(t, "p-fixed1", ticket.ID)

	_, err = s.Create("collision", CreateOptions{ID: "p-fixed1", Priority: 2})
	require.Error(t, err)
	assert.True(t, errors.Is(err, types.ErrValidation))
}

func TestCreateValidation(t *testing.T) {
	s := setupTestStore(t)

	_, err := s.Create("x", CreateOptions{Priority: 9})
	require.Error(t, err)
	assert.True(t, errors.Is(err, types.ErrValidation))
}

func TestCreateDedupesDeps(t *testing.T) {
	s := setupTestStore(t)

	ticket, err := s.Create("x", CreateOptions{Priority: 2, Deps: []string{"p-a", "p-b", "p-a"}})
	require.NoError(t, err)
	assert.Equal(t, []string{"p-a", "p-b"}, ticket.Deps)
}

func TestResolve(t *testing.T) {
	s := setupTestStore(t)

	ticket, err := s.Create("target", CreateOptions{Priority: 2})
	require.NoError(t, err)

	// Full ID
	id, err := s.Resolve(ticket.ID)
	require.NoError(t, err)
	assert.Equal(t, ticket.ID, id)

	// Unique partial reference (the random suffix)
	suffix := strings.TrimPrefix(ticket.ID, "p-")
	id, err = s.Resolve(suffix)
	require.NoError(t, err)
	assert.Equal(t, ticket.ID, id)

	// No match
	_, err = s.Resolve("zzzzzzzz")
	require.Error(t, err)
	assert.True(t, errors.Is(err, types.ErrNotFound))

	// Ambiguous: the shared prefix matches both tickets
	_, err = s.Create("other", CreateOptions{Priority: 2})
	require.NoError(t, err)
	_, err = s.Resolve("p-")
	require.Error(t, err)
	assert.True(t, errors.Is(err, types.ErrAmbiguous))
	assert.Contains(t, err.Error(), ticket.ID)
}

func TestResolveExactWinsOverSubstring(t *testing.T) {
	s := setupTestStore(t)

	// An ID that is itself a substring of another must resolve exactly.
	writeTicket(t, s, "p-abc", "short", "open", "")
	writeTicket(t, s, "p-abcdef", "long", "open", "")

	id, err := s.Resolve("p-abc")
	require.NoError(t, err)
	assert.Equal(t, "p-abc", id)
}

func TestLoadAll(t *testing.T) {
	s := setupTestStore(t)

	for _, title := range []string{"one", "two", "three"} {
		_, err := s.Create(title, CreateOptions{Priority: 2})
		require.NoError(t, err)
	}

	tickets, err := s.LoadAll()
	require.NoError(t, err)
	assert.Len(t, tickets, 3)
}

func TestLoadAllSkipsUnparseableFiles(t *testing.T) {
	s := setupTestStore(t)

	_, err := s.Create("good", CreateOptions{Priority: 2})
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(s.Dir(), "p-bad.md"), []byte("no header here"), 0644))

	tickets, err := s.LoadAll()
	require.NoError(t, err)
	require.Len(t, tickets, 1)
	assert.Equal(t, "good", tickets[0].Title)
}

func TestLoadAllKeepsMalformedClosedAt(t *testing.T) {
	s := setupTestStore(t)
	writeTicket(t, s, "p-old1", "legacy", "closed", "last tuesday")

	tickets, err := s.LoadAll()
	require.NoError(t, err)
	require.Len(t, tickets, 1)
	assert.Nil(t, tickets[0].ClosedAt)
	assert.Equal(t, "last tuesday", tickets[0].RawClosedAt)
}

func TestDelete(t *testing.T) {
	s := setupTestStore(t)

	ticket, err := s.Create("doomed", CreateOptions{Priority: 2})
	require.NoError(t, err)

	require.NoError(t, s.Delete(ticket.ID))

	_, err = s.Get(ticket.ID)
	require.Error(t, err)
	assert.True(t, errors.Is(err, types.ErrNotFound))

	err = s.Delete(ticket.ID)
	require.Error(t, err)
	assert.True(t, errors.Is(err, types.ErrNotFound))
}

func TestDerivePrefix(t *testing.T) {
	assert.Equal(t, "myproject", DerivePrefix("/home/u/MyProject/.tickets"))
	assert.Equal(t, "app2", DerivePrefix("/srv/app-2/.tickets"))
	assert.Equal(t, "tick", DerivePrefix("/---/.tickets"))
}

// writeTicket drops a raw ticket file into the store, bypassing Create,
// for tests that need full control over the header.
func writeTicket(t *testing.T, s *FileStorage, id, title, status, closedAt string) {
	t.Helper()
	doc := &codec.Document{}
	doc.Set("id", id)
	doc.Set("title", title)
	doc.Set("status", status)
	doc.Set("created", "2026-08-01T12:00:00Z")
	doc.Set("priority", "2")
	doc.SetList("deps", nil)
	doc.SetList("links", nil)
	if closedAt != "" {
		doc.Set("closed_at", closedAt)
	}
	require.NoError(t, codec.WriteFile(s.Path(id), doc))
}

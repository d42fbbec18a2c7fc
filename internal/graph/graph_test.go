package graph

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tickfile/tick/internal/types"
)

func mk(id string, status types.Status, deps ...string) *types.Ticket {
	return &types.Ticket{
		ID:       id,
		Title:    "ticket " + id,
		Status:   status,
		Priority: 2,
		Deps:     deps,
		Created:  time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC),
	}
}

func ids(ts []*types.Ticket) []string {
	out := make([]string, len(ts))
	for i, t := range ts {
		out[i] = t.ID
	}
	return out
}

func TestReadyAndBlocked(t *testing.T) {
	g := New([]*types.Ticket{
		mk("p-aaa1", types.StatusOpen),
		mk("p-bbb2", types.StatusOpen, "p-ccc3"),
		mk("p-ccc3", types.StatusClosed),
		mk("p-ddd4", types.StatusInProgress, "p-eee5"),
		mk("p-eee5", types.StatusOpen),
	})

	assert.Equal(t, []string{"p-aaa1", "p-bbb2", "p-eee5"}, ids(g.Ready()))

	blocked := g.Blocked()
	require.Len(t, blocked, 1)
	assert.Equal(t, "p-ddd4", blocked[0].ID)
	assert.Equal(t, 1, blocked[0].BlockedByCount)
	assert.Equal(t, []string{"p-eee5"}, blocked[0].BlockedBy)
}

// For any ticket set, ready and blocked partition the active tickets:
// each open or in-progress ticket lands in exactly one of the two.
func TestPartitionProperty(t *testing.T) {
	g := New([]*types.Ticket{
		mk("p-a", types.StatusOpen),
		mk("p-b", types.StatusOpen, "p-a"),
		mk("p-c", types.StatusInProgress, "p-missing"),
		mk("p-d", types.StatusClosed, "p-b"),
		mk("p-e", types.StatusDone),
		mk("p-f", types.StatusInProgress, "p-e", "p-d"),
		mk("p-g", types.StatusOpen, "p-g"), // self-cycle
	})

	seen := map[string]int{}
	for _, x := range g.Ready() {
		seen[x.ID]++
	}
	for _, x := range g.Blocked() {
		seen[x.ID]++
	}

	for _, tk := range g.Tickets() {
		if tk.Active() {
			assert.Equal(t, 1, seen[tk.ID], "%s must be in exactly one of ready/blocked", tk.ID)
		} else {
			assert.Zero(t, seen[tk.ID], "%s is not active", tk.ID)
		}
	}
}

func TestDanglingDepDoesNotBlock(t *testing.T) {
	g := New([]*types.Ticket{
		mk("p-a", types.StatusOpen, "p-deleted"),
	})
	assert.Equal(t, []string{"p-a"}, ids(g.Ready()))
	assert.Empty(t, g.Blocked())
}

func TestDoneCountsAsClosedDep(t *testing.T) {
	g := New([]*types.Ticket{
		mk("p-a", types.StatusOpen, "p-b"),
		mk("p-b", types.StatusDone),
	})
	assert.Equal(t, []string{"p-a"}, ids(g.Ready()))
}

func TestListingOrderDeterministic(t *testing.T) {
	early := time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC)
	late := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)

	a := mk("p-zz", types.StatusOpen)
	a.Priority = 0
	a.Created = late
	b := mk("p-mm", types.StatusOpen)
	b.Priority = 1
	b.Created = early
	c := mk("p-aa", types.StatusOpen)
	c.Priority = 1
	c.Created = early

	// Priority first, then creation time, then ID.
	g := New([]*types.Ticket{a, b, c})
	assert.Equal(t, []string{"p-zz", "p-aa", "p-mm"}, ids(g.Ready()))
}

func TestClosedListing(t *testing.T) {
	g := New([]*types.Ticket{
		mk("p-a", types.StatusOpen),
		mk("p-b", types.StatusClosed),
		mk("p-c", types.StatusDone),
	})
	assert.Equal(t, []string{"p-b", "p-c"}, ids(g.Closed()))
}

func TestStatistics(t *testing.T) {
	g := New([]*types.Ticket{
		mk("p-a", types.StatusOpen),
		mk("p-b", types.StatusInProgress, "p-a"),
		mk("p-c", types.StatusClosed),
		mk("p-d", types.StatusDone),
	})
	stats := g.Statistics()
	assert.Equal(t, 4, stats.TotalTickets)
	assert.Equal(t, 1, stats.OpenTickets)
	assert.Equal(t, 1, stats.InProgressTickets)
	assert.Equal(t, 2, stats.ClosedTickets)
	assert.Equal(t, 1, stats.ReadyTickets)
	assert.Equal(t, 1, stats.BlockedTickets)
}

func TestProtectedSetTransitive(t *testing.T) {
	// A(open) -> B -> C -> D, all of B, C, D closed: the entire chain
	// is protected, not just the first level.
	g := New([]*types.Ticket{
		mk("p-a", types.StatusOpen, "p-b"),
		mk("p-b", types.StatusClosed, "p-c"),
		mk("p-c", types.StatusClosed, "p-d"),
		mk("p-d", types.StatusClosed),
		mk("p-x", types.StatusClosed),
	})
	protected := g.ProtectedSet()
	for _, id := range []string{"p-a", "p-b", "p-c", "p-d"} {
		assert.True(t, protected[id], "%s must be protected", id)
	}
	assert.False(t, protected["p-x"])
}

func TestProtectedSetTerminatesOnCycles(t *testing.T) {
	g := New([]*types.Ticket{
		mk("p-a", types.StatusOpen, "p-b"),
		mk("p-b", types.StatusClosed, "p-c"),
		mk("p-c", types.StatusClosed, "p-b"), // cycle b <-> c
	})
	protected := g.ProtectedSet()
	assert.True(t, protected["p-b"])
	assert.True(t, protected["p-c"])
}

func TestProtectedSetIgnoresParent(t *testing.T) {
	parent := mk("p-parent", types.StatusClosed)
	child := mk("p-child", types.StatusOpen)
	child.Parent = "p-parent"

	g := New([]*types.Ticket{parent, child})
	protected := g.ProtectedSet()
	assert.False(t, protected["p-parent"],
		"advisory parent references are not followed by the closure")
}

func TestProtectedSetEmptyWhenNothingActive(t *testing.T) {
	g := New([]*types.Ticket{
		mk("p-a", types.StatusClosed, "p-b"),
		mk("p-b", types.StatusClosed),
	})
	assert.Empty(t, g.ProtectedSet())
}

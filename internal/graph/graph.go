// Package graph builds an in-memory dependency graph from a full
// ticket snapshot and answers the bulk queries derived from it:
// readiness, blockedness, and the transitive protected set used by
// pruning.
//
// A graph is built once per bulk command from a single store scan;
// per-query store reads would dominate at hundreds to thousands of
// tickets.
package graph

import (
	"sort"

	"github.com/tickfile/tick/internal/types"
)

// Graph is an immutable view over one ticket snapshot.
type Graph struct {
	tickets []*types.Ticket
	byID    map[string]*types.Ticket
}

// New builds a graph from a LoadAll snapshot.
func New(tickets []*types.Ticket) *Graph {
	g := &Graph{
		tickets: tickets,
		byID:    make(map[string]*types.Ticket, len(tickets)),
	}
	for _, t := range tickets {
		g.byID[t.ID] = t
	}
	return g
}

// Get returns the snapshot ticket for an ID, or nil.
func (g *Graph) Get(id string) *types.Ticket {
	return g.byID[id]
}

// Tickets returns the underlying snapshot.
func (g *Graph) Tickets() []*types.Ticket {
	return g.tickets
}

// unmetDeps returns the dependencies of t that still block it: deps
// that resolve to an existing ticket which is not closed. A dep that no
// longer resolves cannot block (and could never be satisfied by closing
// it), so dangling references are ignored. This keeps Ready and Blocked
// an exact partition of the active tickets.
func (g *Graph) unmetDeps(t *types.Ticket) []string {
	var unmet []string
	for _, depID := range t.Deps {
		dep, ok := g.byID[depID]
		if !ok {
			continue
		}
		if !dep.Closed() {
			unmet = append(unmet, depID)
		}
	}
	return unmet
}

// Ready returns the active tickets (open or in_progress) whose every
// resolvable dependency is closed, sorted for reproducible output. A
// ticket with no deps is trivially ready.
func (g *Graph) Ready() []*types.Ticket {
	var ready []*types.Ticket
	for _, t := range g.tickets {
		if t.Active() && len(g.unmetDeps(t)) == 0 {
			ready = append(ready, t)
		}
	}
	sortTickets(ready)
	return ready
}

// Blocked returns the active tickets with at least one unmet
// dependency, each carrying the specific dep IDs blocking it. Together
// with Ready this partitions the active set: every open or in-progress
// ticket appears in exactly one of the two.
func (g *Graph) Blocked() []*types.BlockedTicket {
	var blocked []*types.BlockedTicket
	for _, t := range g.tickets {
		if !t.Active() {
			continue
		}
		unmet := g.unmetDeps(t)
		if len(unmet) == 0 {
			continue
		}
		blocked = append(blocked, &types.BlockedTicket{
			Ticket:         *t,
			BlockedByCount: len(unmet),
			BlockedBy:      unmet,
		})
	}
	sort.SliceStable(blocked, func(i, j int) bool {
		return ticketLess(&blocked[i].Ticket, &blocked[j].Ticket)
	})
	return blocked
}

// Closed returns the closed tickets (including the legacy "done"
// status), sorted.
func (g *Graph) Closed() []*types.Ticket {
	var closed []*types.Ticket
	for _, t := range g.tickets {
		if t.Closed() {
			closed = append(closed, t)
		}
	}
	sortTickets(closed)
	return closed
}

// Statistics aggregates counts over the snapshot.
func (g *Graph) Statistics() *types.Statistics {
	stats := &types.Statistics{TotalTickets: len(g.tickets)}
	for _, t := range g.tickets {
		switch {
		case t.Status == types.StatusOpen:
			stats.OpenTickets++
		case t.Status == types.StatusInProgress:
			stats.InProgressTickets++
		case t.Closed():
			stats.ClosedTickets++
		}
	}
	stats.ReadyTickets = len(g.Ready())
	stats.BlockedTickets = len(g.Blocked())
	return stats
}

// ticketLess is the deterministic listing order: priority, then
// creation time, then ID as the final tiebreaker.
func ticketLess(a, b *types.Ticket) bool {
	if a.Priority != b.Priority {
		return a.Priority < b.Priority
	}
	if !a.Created.Equal(b.Created) {
		return a.Created.Before(b.Created)
	}
	return a.ID < b.ID
}

func sortTickets(ts []*types.Ticket) {
	sort.SliceStable(ts, func(i, j int) bool {
		return ticketLess(ts[i], ts[j])
	})
}

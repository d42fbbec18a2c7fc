// Package prune deletes closed tickets that have aged out and that
// nothing active still depends on, directly or transitively.
package prune

import (
	"fmt"
	"sort"
	"time"

	"github.com/tickfile/tick/internal/debug"
	"github.com/tickfile/tick/internal/graph"
	"github.com/tickfile/tick/internal/store"
	"github.com/tickfile/tick/internal/types"
)

// Options controls a prune run.
type Options struct {
	// Days is the minimum age of a close, in whole days. The boundary
	// is inclusive: a ticket closed exactly Days ago is eligible.
	Days int
	// All ignores the age threshold and considers every closed ticket.
	All bool
	// DryRun previews the eligible set without touching storage.
	DryRun bool
}

// Result reports what a prune run deleted (or would delete).
type Result struct {
	Pruned []*types.Ticket
	// Failed lists tickets whose deletion hit an IO error. They are
	// excluded from Pruned; a failure never aborts the rest of the
	// batch.
	Failed []error
}

// Run evaluates the eligibility predicate over one graph snapshot and
// deletes (or previews) the eligible tickets.
//
// Eligibility requires all of:
//  1. status closed (the legacy "done" status counts)
//  2. a closed_at that is present and parses; absent or malformed is
//     silently ineligible — unparseable must never be treated as "old"
//  3. the close is at least Days old, unless All is set
//  4. the ID is outside the transitive protected set
func Run(s *store.FileStorage, g *graph.Graph, opts Options) (*Result, error) {
	if !opts.All && opts.Days <= 0 {
		return nil, fmt.Errorf("%w: age threshold must be a positive number of days (got %d)", types.ErrValidation, opts.Days)
	}

	protected := g.ProtectedSet()
	cutoff := time.Now().AddDate(0, 0, -opts.Days)

	var eligible []*types.Ticket
	for _, t := range g.Tickets() {
		if !t.Closed() {
			continue
		}
		if t.ClosedAt == nil {
			if t.RawClosedAt != "" {
				debug.Logf("prune: %s has unparseable closed_at %q, skipping", t.ID, t.RawClosedAt)
			}
			continue
		}
		if !opts.All && t.ClosedAt.After(cutoff) {
			continue
		}
		if protected[t.ID] {
			continue
		}
		eligible = append(eligible, t)
	}
	sort.Slice(eligible, func(i, j int) bool {
		return eligible[i].ID < eligible[j].ID
	})

	res := &Result{}
	if opts.DryRun {
		res.Pruned = eligible
		return res, nil
	}

	for _, t := range eligible {
		// Re-validate against live storage immediately before the
		// delete: another process may have reopened the ticket since
		// the snapshot was taken.
		status, err := s.StatusOf(t.ID)
		if err != nil {
			res.Failed = append(res.Failed, fmt.Errorf("recheck %s: %w", t.ID, err))
			continue
		}
		if status != types.StatusClosed && status != types.StatusDone {
			debug.Logf("prune: %s no longer closed (now %s), skipping", t.ID, status)
			continue
		}
		if err := s.Delete(t.ID); err != nil {
			// Deletions are independent; report and keep going.
			res.Failed = append(res.Failed, fmt.Errorf("delete %s: %w", t.ID, err))
			continue
		}
		res.Pruned = append(res.Pruned, t)
	}
	return res, nil
}

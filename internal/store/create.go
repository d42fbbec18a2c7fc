package store

import (
	"fmt"
	"os"
	"time"

	"github.com/tickfile/tick/internal/codec"
	"github.com/tickfile/tick/internal/types"
)

// CreateOptions carries the optional fields for a new ticket.
type CreateOptions struct {
	// ID pins an explicit ticket ID instead of generating one.
	// Useful for imports; collisions are rejected.
	ID       string
	Type     string
	Priority int
	Assignee string
	Deps     []string
	Parent   string
	Body     string
}

// Create generates an ID, writes a new ticket file, and returns the
// full ticket. New tickets always start open with no closed_at.
func (s *FileStorage) Create(title string, opts CreateOptions) (*types.Ticket, error) {
	if title == "" {
		title = "untitled"
	}
	if opts.Type == "" {
		opts.Type = "task"
	}

	t := &types.Ticket{
		Title:    title,
		Status:   types.StatusOpen,
		Type:     opts.Type,
		Priority: opts.Priority,
		Assignee: opts.Assignee,
		Deps:     dedupe(opts.Deps),
		Parent:   opts.Parent,
		Body:     opts.Body,
		Created:  time.Now().UTC().Truncate(time.Second),
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}

	id := opts.ID
	if id == "" {
		var err error
		id, err = s.nextID()
		if err != nil {
			return nil, err
		}
	} else if _, err := os.Stat(s.Path(id)); err == nil {
		return nil, fmt.Errorf("%w: ticket %s already exists", types.ErrValidation, id)
	}
	t.ID = id

	if err := codec.WriteFile(s.Path(id), toDocument(t)); err != nil {
		return nil, fmt.Errorf("create %s: %w", id, err)
	}
	return t, nil
}

// dedupe removes duplicate IDs while preserving order.
func dedupe(ids []string) []string {
	if len(ids) < 2 {
		return ids
	}
	seen := make(map[string]bool, len(ids))
	out := ids[:0]
	for _, id := range ids {
		if !seen[id] {
			seen[id] = true
			out = append(out, id)
		}
	}
	return out
}

// Package types defines the ticket entity and shared query result types.
package types

import (
	"fmt"
	"time"
)

// Ticket represents a trackable work item stored as one file on disk.
type Ticket struct {
	ID       string   `json:"id"`
	Title    string   `json:"title"`
	Status   Status   `json:"status"`
	Type     string   `json:"type,omitempty"`
	Priority int      `json:"priority"`
	Assignee string   `json:"assignee,omitempty"`
	Deps     []string `json:"deps,omitempty"`
	Links    []string `json:"links,omitempty"`
	Parent   string   `json:"parent,omitempty"`
	Body     string   `json:"body,omitempty"`

	Created  time.Time  `json:"created"`
	ClosedAt *time.Time `json:"closed_at,omitempty"`

	// RawClosedAt keeps the on-disk closed_at string when it failed to
	// parse during a bulk scan. Such tickets are never prune-eligible.
	RawClosedAt string `json:"-"`
}

// Validate checks if the ticket has valid field values
func (t *Ticket) Validate() error {
	if len(t.Title) == 0 {
		return fmt.Errorf("%w: title is required", ErrValidation)
	}
	if len(t.Title) > 500 {
		return fmt.Errorf("%w: title must be 500 characters or less (got %d)", ErrValidation, len(t.Title))
	}
	if t.Priority < 0 || t.Priority > 4 {
		return fmt.Errorf("%w: priority must be between 0 and 4 (got %d)", ErrValidation, t.Priority)
	}
	if !t.Status.IsValid() && t.Status != StatusDone {
		return fmt.Errorf("%w: invalid status: %s", ErrValidation, t.Status)
	}
	return nil
}

// Active reports whether the ticket still represents work to do.
func (t *Ticket) Active() bool {
	return t.Status == StatusOpen || t.Status == StatusInProgress
}

// Closed reports whether the ticket counts as closed for dependency and
// pruning purposes. The legacy "done" status is closed-equivalent.
func (t *Ticket) Closed() bool {
	return t.Status == StatusClosed || t.Status == StatusDone
}

// HasDep reports whether id is already in the ticket's dependency list.
func (t *Ticket) HasDep(id string) bool {
	for _, d := range t.Deps {
		if d == id {
			return true
		}
	}
	return false
}

// HasLink reports whether id is already in the ticket's link list.
func (t *Ticket) HasLink(id string) bool {
	for _, l := range t.Links {
		if l == id {
			return true
		}
	}
	return false
}

// Status represents the current state of a ticket
type Status string

const (
	StatusOpen       Status = "open"
	StatusInProgress Status = "in_progress"
	StatusClosed     Status = "closed"

	// StatusDone is a legacy alias found in older ticket files. It is
	// treated as closed everywhere a status is read, but it is not a
	// valid target for status transitions.
	StatusDone Status = "done"
)

// IsValid checks if the status is a valid transition target
func (s Status) IsValid() bool {
	switch s {
	case StatusOpen, StatusInProgress, StatusClosed:
		return true
	}
	return false
}

// BlockedTicket extends Ticket with the unmet dependencies blocking it
type BlockedTicket struct {
	Ticket
	BlockedByCount int      `json:"blocked_by_count"`
	BlockedBy      []string `json:"blocked_by"`
}

// Statistics provides aggregate metrics over a ticket set
type Statistics struct {
	TotalTickets      int `json:"total_tickets"`
	OpenTickets       int `json:"open_tickets"`
	InProgressTickets int `json:"in_progress_tickets"`
	ClosedTickets     int `json:"closed_tickets"`
	BlockedTickets    int `json:"blocked_tickets"`
	ReadyTickets      int `json:"ready_tickets"`
}

// Package tick provides a minimal public API for programs that want to
// read or mutate a ticket directory without shelling out to the tk
// binary. It exports only the essential types and constructors; the
// engine packages stay internal.
package tick

import (
	"github.com/tickfile/tick/internal/config"
	"github.com/tickfile/tick/internal/graph"
	"github.com/tickfile/tick/internal/store"
	"github.com/tickfile/tick/internal/types"
)

// Core types for working with tickets
type (
	Ticket        = types.Ticket
	Status        = types.Status
	BlockedTicket = types.BlockedTicket
	Graph         = graph.Graph
	Store         = store.FileStorage
)

// Status constants
const (
	StatusOpen       = types.StatusOpen
	StatusInProgress = types.StatusInProgress
	StatusClosed     = types.StatusClosed
	StatusDone       = types.StatusDone
)

// Sentinel errors, testable with errors.Is
var (
	ErrNotFound   = types.ErrNotFound
	ErrAmbiguous  = types.ErrAmbiguous
	ErrValidation = types.ErrValidation
	ErrParse      = types.ErrParse
	ErrIO         = types.ErrIO
)

// Open opens an existing ticket directory.
func Open(dir string) (*Store, error) {
	return store.New(dir, "")
}

// NewGraph builds a dependency graph from a ticket snapshot, typically
// the result of Store.LoadAll.
func NewGraph(tickets []*Ticket) *Graph {
	return graph.New(tickets)
}

// FindTicketDir discovers the nearest .tickets directory by walking up
// from the current working directory. Returns "" if none is found.
func FindTicketDir() string {
	return config.FindTicketDir()
}

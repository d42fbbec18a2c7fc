package store

import (
	"fmt"

	"github.com/tickfile/tick/internal/codec"
	"github.com/tickfile/tick/internal/types"
)

// SetStatus applies a status transition. Any transition between the
// recognized states is permitted; the interesting behavior is the
// closed_at side effect, and this function is its single authoritative
// mutator:
//
//   - moving to closed sets closed_at only if it is absent, so
//     re-closing without an intervening reopen keeps the original
//     close time (first-close-wins, idempotent)
//   - moving to any other status clears closed_at
//
// The "done" alias status is readable everywhere but is not accepted
// as a transition target.
func (s *FileStorage) SetStatus(id string, status types.Status) error {
	if !status.IsValid() {
		return fmt.Errorf("%w: unrecognized status %q (valid: %s, %s, %s)",
			types.ErrValidation, status, types.StatusOpen, types.StatusInProgress, types.StatusClosed)
	}
	return s.update(id, func(doc *codec.Document) error {
		doc.Set(fieldStatus, string(status))
		if status == types.StatusClosed {
			if v, ok := doc.Get(fieldClosedAt); !ok || v == "" {
				doc.Set(fieldClosedAt, codec.Now())
			}
		} else {
			doc.Unset(fieldClosedAt)
		}
		return nil
	})
}

// Close marks a ticket closed. Thin wrapper over SetStatus; the
// timestamp rules live there and only there.
func (s *FileStorage) Close(id string) error {
	return s.SetStatus(id, types.StatusClosed)
}

// Reopen returns a ticket to open, clearing closed_at via SetStatus.
func (s *FileStorage) Reopen(id string) error {
	return s.SetStatus(id, types.StatusOpen)
}

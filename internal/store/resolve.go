package store

import (
	"fmt"
	"os"
	"strings"

	"github.com/tickfile/tick/internal/types"
)

// Resolve turns a full or partial ticket reference into a full ID. It
// is the single gate for every command that accepts a ticket argument.
//
// An exact ID match wins immediately. Otherwise the reference must
// match exactly one existing ID as a substring: zero matches is
// NotFound, more than one is Ambiguous with the candidates listed so
// the user can disambiguate.
func (s *FileStorage) Resolve(ref string) (string, error) {
	if ref == "" {
		return "", fmt.Errorf("%w: empty ticket reference", types.ErrValidation)
	}

	if _, err := os.Stat(s.Path(ref)); err == nil {
		return ref, nil
	}

	ids, err := s.IDs()
	if err != nil {
		return "", err
	}

	var matches []string
	for _, id := range ids {
		if strings.Contains(id, ref) {
			matches = append(matches, id)
		}
	}

	switch len(matches) {
	case 0:
		return "", fmt.Errorf("%w: no ticket matching %q", types.ErrNotFound, ref)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("%w: %q matches %d tickets: %s\nUse more characters to disambiguate",
			types.ErrAmbiguous, ref, len(matches), strings.Join(matches, ", "))
	}
}

// ResolveTicket resolves a reference and reads the ticket.
func (s *FileStorage) ResolveTicket(ref string) (*types.Ticket, error) {
	id, err := s.Resolve(ref)
	if err != nil {
		return nil, err
	}
	return s.Get(id)
}

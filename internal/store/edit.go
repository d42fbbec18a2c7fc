package store

import (
	"github.com/tickfile/tick/internal/codec"
)

// AddDep records that id blocks on depID. Membership is unique and
// order is preserved; adding an existing dep is a no-op. depID is not
// required to exist: dangling references are permitted.
func (s *FileStorage) AddDep(id, depID string) error {
	return s.update(id, func(doc *codec.Document) error {
		deps := doc.GetList(fieldDeps)
		for _, d := range deps {
			if d == depID {
				return nil
			}
		}
		doc.SetList(fieldDeps, append(deps, depID))
		return nil
	})
}

// RemoveDep drops depID from id's dependency list. Removing an absent
// dep is a no-op.
func (s *FileStorage) RemoveDep(id, depID string) error {
	return s.update(id, func(doc *codec.Document) error {
		doc.SetList(fieldDeps, removeID(doc.GetList(fieldDeps), depID))
		return nil
	})
}

// AddLink records a symmetric advisory association. The link is written
// to both tickets when both exist; if the other side is missing only
// the existing side is written (the reference dangles, which is fine).
func (s *FileStorage) AddLink(id, otherID string) error {
	if err := s.addLinkOne(id, otherID); err != nil {
		return err
	}
	if _, err := s.Get(otherID); err != nil {
		return nil
	}
	return s.addLinkOne(otherID, id)
}

func (s *FileStorage) addLinkOne(id, otherID string) error {
	return s.update(id, func(doc *codec.Document) error {
		links := doc.GetList(fieldLinks)
		for _, l := range links {
			if l == otherID {
				return nil
			}
		}
		doc.SetList(fieldLinks, append(links, otherID))
		return nil
	})
}

// RemoveLink drops the association from both sides.
func (s *FileStorage) RemoveLink(id, otherID string) error {
	err := s.update(id, func(doc *codec.Document) error {
		doc.SetList(fieldLinks, removeID(doc.GetList(fieldLinks), otherID))
		return nil
	})
	if err != nil {
		return err
	}
	if _, err := s.Get(otherID); err != nil {
		return nil
	}
	return s.update(otherID, func(doc *codec.Document) error {
		doc.SetList(fieldLinks, removeID(doc.GetList(fieldLinks), id))
		return nil
	})
}

// SetParent points a ticket at an advisory organizational parent.
// Parents never block; the dependency graph ignores them.
func (s *FileStorage) SetParent(id, parentID string) error {
	return s.update(id, func(doc *codec.Document) error {
		doc.Set(fieldParent, parentID)
		return nil
	})
}

// ClearParent removes the parent reference.
func (s *FileStorage) ClearParent(id string) error {
	return s.update(id, func(doc *codec.Document) error {
		doc.Unset(fieldParent)
		return nil
	})
}

func removeID(ids []string, id string) []string {
	out := ids[:0]
	for _, x := range ids {
		if x != id {
			out = append(out, x)
		}
	}
	return out
}

// Package store owns the directory of ticket files. It generates IDs,
// resolves partial references, persists tickets through the codec, and
// hosts the status lifecycle rules.
package store

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/tickfile/tick/internal/codec"
	"github.com/tickfile/tick/internal/debug"
	"github.com/tickfile/tick/internal/types"
)

// ticketExt is the file extension for ticket files; the stem is the ID.
const ticketExt = ".md"

// FileStorage is a ticket store over a single directory, one file per
// ticket. It holds no cross-file state: every operation goes to disk.
type FileStorage struct {
	dir    string
	prefix string
}

// New opens a ticket store rooted at dir. If prefix is empty, one is
// derived from the directory location.
func New(dir, prefix string) (*FileStorage, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("%w: ticket directory %s: %v", types.ErrIO, dir, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s is not a directory", types.ErrIO, dir)
	}
	if prefix == "" {
		prefix = DerivePrefix(dir)
	}
	return &FileStorage{dir: dir, prefix: prefix}, nil
}

// Init creates the ticket directory (and parents) if needed and opens it.
func Init(dir, prefix string) (*FileStorage, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("%w: create ticket directory %s: %v", types.ErrIO, dir, err)
	}
	return New(dir, prefix)
}

// Dir returns the ticket directory path.
func (s *FileStorage) Dir() string {
	return s.dir
}

// Prefix returns the ID prefix for tickets created in this store.
func (s *FileStorage) Prefix() string {
	return s.prefix
}

// Path returns the file path for a ticket ID. The ID is not checked for
// existence.
func (s *FileStorage) Path(id string) string {
	return filepath.Join(s.dir, id+ticketExt)
}

// IDs returns all ticket IDs in the store, sorted. IDs come from the
// directory listing alone; no files are parsed.
func (s *FileStorage) IDs() ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("%w: list %s: %v", types.ErrIO, s.dir, err)
	}
	var ids []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ticketExt) {
			continue
		}
		ids = append(ids, strings.TrimSuffix(e.Name(), ticketExt))
	}
	sort.Strings(ids)
	return ids, nil
}

// Get reads a single ticket by exact ID.
func (s *FileStorage) Get(id string) (*types.Ticket, error) {
	doc, err := codec.ParseFile(s.Path(id))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: no ticket %s", types.ErrNotFound, id)
		}
		return nil, err
	}
	return fromDocument(id, doc), nil
}

// LoadAll parses every ticket in the store in a single directory scan.
// This is the one bulk read path: ready/blocked/prune all work off its
// snapshot so their cost stays O(n) no matter how many predicates run.
// Files with unreadable headers are skipped, not fatal.
func (s *FileStorage) LoadAll() ([]*types.Ticket, error) {
	ids, err := s.IDs()
	if err != nil {
		return nil, err
	}
	tickets := make([]*types.Ticket, 0, len(ids))
	for _, id := range ids {
		doc, err := codec.ParseFile(s.Path(id))
		if err != nil {
			debug.Logf("store: skipping %s: %v", id, err)
			continue
		}
		tickets = append(tickets, fromDocument(id, doc))
	}
	return tickets, nil
}

// Delete removes a ticket file. Deleting a ticket that other tickets
// reference is allowed; dangling references are not an error.
func (s *FileStorage) Delete(id string) error {
	if err := os.Remove(s.Path(id)); err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: no ticket %s", types.ErrNotFound, id)
		}
		return fmt.Errorf("%w: delete %s: %v", types.ErrIO, id, err)
	}
	return nil
}

// StatusOf re-reads a ticket's status directly from storage, bypassing
// any snapshot. The prune engine calls this immediately before each
// deletion to narrow the race window against a concurrent reopen.
func (s *FileStorage) StatusOf(id string) (types.Status, error) {
	doc, err := codec.ParseFile(s.Path(id))
	if err != nil {
		return "", err
	}
	status, _ := doc.Get("status")
	return types.Status(status), nil
}

// update applies fn to a ticket's parsed document and writes it back.
// All mutations flow through here so field order and body text are
// preserved by the codec on every edit.
func (s *FileStorage) update(id string, fn func(doc *codec.Document) error) error {
	path := s.Path(id)
	doc, err := codec.ParseFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: no ticket %s", types.ErrNotFound, id)
		}
		return err
	}
	if err := fn(doc); err != nil {
		return err
	}
	return codec.WriteFile(path, doc)
}

package store

import (
	"strconv"

	"github.com/tickfile/tick/internal/codec"
	"github.com/tickfile/tick/internal/types"
)

// Header field names. Field order on disk follows creation order and is
// preserved across edits by the codec.
const (
	fieldID       = "id"
	fieldTitle    = "title"
	fieldStatus   = "status"
	fieldCreated  = "created"
	fieldClosedAt = "closed_at"
	fieldType     = "type"
	fieldPriority = "priority"
	fieldAssignee = "assignee"
	fieldDeps     = "deps"
	fieldLinks    = "links"
	fieldParent   = "parent"
)

// fromDocument extracts a Ticket from a parsed document. Malformed
// values degrade instead of failing: a bad created sorts as zero time,
// a bad closed_at is kept raw and never treated as a real close time.
func fromDocument(id string, doc *codec.Document) *types.Ticket {
	t := &types.Ticket{ID: id, Body: doc.Body}
	if v, ok := doc.Get(fieldID); ok && v != "" {
		t.ID = v
	}
	t.Title, _ = doc.Get(fieldTitle)
	if t.Title == "" {
		t.Title = "untitled"
	}
	if v, ok := doc.Get(fieldStatus); ok {
		t.Status = types.Status(v)
	}
	t.Type, _ = doc.Get(fieldType)
	t.Assignee, _ = doc.Get(fieldAssignee)
	t.Parent, _ = doc.Get(fieldParent)
	t.Deps = doc.GetList(fieldDeps)
	t.Links = doc.GetList(fieldLinks)

	if v, ok := doc.Get(fieldPriority); ok {
		if p, err := strconv.Atoi(v); err == nil {
			t.Priority = p
		}
	}
	if v, ok := doc.Get(fieldCreated); ok {
		if ct, err := codec.ParseTime(v); err == nil {
			t.Created = ct
		}
	}
	if v, ok := doc.Get(fieldClosedAt); ok && v != "" {
		if ct, err := codec.ParseTime(v); err == nil {
			t.ClosedAt = &ct
		} else {
			t.RawClosedAt = v
		}
	}
	return t
}

// toDocument builds a fresh document for a new ticket. Existing tickets
// are never round-tripped through this; edits mutate the parsed document
// so unknown fields and the body survive.
func toDocument(t *types.Ticket) *codec.Document {
	doc := &codec.Document{Body: t.Body}
	doc.Set(fieldID, t.ID)
	doc.Set(fieldTitle, t.Title)
	doc.Set(fieldStatus, string(t.Status))
	doc.Set(fieldCreated, codec.FormatTime(t.Created))
	doc.Set(fieldType, t.Type)
	doc.Set(fieldPriority, strconv.Itoa(t.Priority))
	doc.Set(fieldAssignee, t.Assignee)
	doc.SetList(fieldDeps, t.Deps)
	doc.SetList(fieldLinks, t.Links)
	if t.Parent != "" {
		doc.Set(fieldParent, t.Parent)
	}
	return doc
}

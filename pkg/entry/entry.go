// Package entry holds the journal data model and the filename grammar that
// encodes creation order and reply linkage.
package entry

import (
	"time"
)

// File is one raw directory listing record.
type File struct {
	Name       string    `json:"name"`
	CreatedAt  time.Time `json:"createdAt"`
	ModifiedAt time.Time `json:"modifiedAt"`
}

// Item is implemented by both Entry and Reply.
type Item interface {
	ItemName() string
	Created() time.Time
	Text() string
}

// Entry is a root journal entry with its replies in chronological order.
type Entry struct {
	Name       string    `json:"name"`
	CreatedAt  time.Time `json:"createdAt"`
	ModifiedAt time.Time `json:"modifiedAt"`
	Content    string    `json:"content,omitempty"`
	Replies    []*Reply  `json:"replies"`
}

// NewEntry builds a root entry from a listing record.
func NewEntry(f File) *Entry {
	return &Entry{
		Name:       f.Name,
		CreatedAt:  f.CreatedAt,
		ModifiedAt: f.ModifiedAt,
		Replies:    []*Reply{},
	}
}

func (e *Entry) ItemName() string   { return e.Name }
func (e *Entry) Created() time.Time { return e.CreatedAt }
func (e *Entry) Text() string       { return e.Content }

// Reply is attached to exactly one Entry. Its parent is derived from Name.
type Reply struct {
	Name       string    `json:"name"`
	CreatedAt  time.Time `json:"createdAt"`
	ModifiedAt time.Time `json:"modifiedAt"`
	Content    string    `json:"content,omitempty"`
}

// NewReply builds a reply from a listing record.
func NewReply(f File) *Reply {
	return &Reply{
		Name:       f.Name,
		CreatedAt:  f.CreatedAt,
		ModifiedAt: f.ModifiedAt,
	}
}

// ParentName is recomputed from Name on every call.
func (r *Reply) ParentName() string {
	p, _ := ParentOf(r.Name)
	return p
}

func (r *Reply) ItemName() string   { return r.Name }
func (r *Reply) Created() time.Time { return r.CreatedAt }
func (r *Reply) Text() string       { return r.Content }

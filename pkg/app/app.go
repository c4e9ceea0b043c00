// Package app provides journal operations shared by the CLI and the MCP
// server.
package app

import (
	"context"
	"errors"
	"strings"
	"time"

	"tableflip.dev/write/pkg/entry"
	"tableflip.dev/write/pkg/store"
	"tableflip.dev/write/pkg/viewmodel"
)

// Journal wraps the repository and the view model so UIs and servers can
// share logic. Every call re-reads the directory.
type Journal struct {
	Repository store.Repository
	Now        func() time.Time
	Location   *time.Location
}

// View is a loaded directory: threaded date groups plus the replies that
// could not be attached.
type View struct {
	Directory string                `json:"directory"`
	Groups    []viewmodel.DateGroup `json:"groups"`
	Orphans   []*entry.Reply        `json:"orphans,omitempty"`
}

var errNoRepository = errors.New("app: no repository configured")

// New returns a Journal over repo using the local clock and zone.
func New(repo store.Repository) *Journal {
	return &Journal{Repository: repo, Now: time.Now, Location: time.Local}
}

func (j *Journal) now() time.Time {
	if j.Now == nil {
		return time.Now().In(j.location())
	}
	return j.Now().In(j.location())
}

func (j *Journal) location() *time.Location {
	if j.Location == nil {
		return time.Local
	}
	return j.Location
}

func (j *Journal) check(dir string) error {
	if j.Repository == nil {
		return errNoRepository
	}
	if strings.TrimSpace(dir) == "" {
		return &entry.ValidationError{Field: "directory", Reason: "required"}
	}
	return nil
}

// Load lists dir and builds its view.
func (j *Journal) Load(ctx context.Context, dir string) (*View, error) {
	if err := j.check(dir); err != nil {
		return nil, err
	}
	files, err := j.Repository.List(ctx, dir)
	if err != nil {
		return nil, err
	}
	return &View{
		Directory: dir,
		Groups:    viewmodel.BuildView(files, viewmodel.WithLocation(j.location())),
		Orphans:   viewmodel.Orphans(files),
	}, nil
}

// SaveEntry writes content as a new root entry named after the current time
// and returns the written path.
func (j *Journal) SaveEntry(_ context.Context, dir, content string) (string, error) {
	if err := j.check(dir); err != nil {
		return "", err
	}
	if strings.TrimSpace(content) == "" {
		return "", &entry.ValidationError{Field: "content", Reason: "required"}
	}
	return j.Repository.Write(dir, entry.RootName(j.now()), content)
}

// SaveReply writes content as a reply to parent and returns the written
// path. A reply name passed as parent is anchored to its root.
func (j *Journal) SaveReply(_ context.Context, dir, parent, content string) (string, error) {
	if err := j.check(dir); err != nil {
		return "", err
	}
	if strings.TrimSpace(parent) == "" {
		return "", &entry.ValidationError{Field: "parent", Reason: "required"}
	}
	if strings.TrimSpace(content) == "" {
		return "", &entry.ValidationError{Field: "content", Reason: "required"}
	}
	root := entry.RootOf(parent)
	if _, err := j.Repository.Read(dir, root); err != nil {
		return "", err
	}
	return j.Repository.Write(dir, entry.ReplyName(root, j.now()), content)
}

// Read returns the content of a single entry or reply.
func (j *Journal) Read(_ context.Context, dir, name string) (string, error) {
	if err := j.check(dir); err != nil {
		return "", err
	}
	return j.Repository.Read(dir, name)
}

// Edit replaces the content of an existing entry or reply. The name never
// changes.
func (j *Journal) Edit(_ context.Context, dir, name, content string) (string, error) {
	if err := j.check(dir); err != nil {
		return "", err
	}
	if strings.TrimSpace(content) == "" {
		return "", &entry.ValidationError{Field: "content", Reason: "required"}
	}
	if _, err := j.Repository.Read(dir, name); err != nil {
		return "", err
	}
	return j.Repository.Write(dir, name, content)
}

// Open returns the root of name (name itself or, for a reply, its parent)
// with the contents of the root and every attached reply loaded.
func (j *Journal) Open(ctx context.Context, dir, name string) (*entry.Entry, error) {
	if err := j.check(dir); err != nil {
		return nil, err
	}
	if err := entry.ValidateName(name); err != nil {
		return nil, err
	}
	root := entry.RootOf(name)

	files, err := j.Repository.List(ctx, dir)
	if err != nil {
		return nil, err
	}
	var found *entry.Entry
	for _, e := range viewmodel.Thread(files) {
		if e.Name == root {
			found = e
			break
		}
	}
	if found == nil {
		return nil, &entry.NotFoundError{Name: root}
	}

	if found.Content, err = j.Repository.Read(dir, found.Name); err != nil {
		return nil, err
	}
	for _, r := range found.Replies {
		if r.Content, err = j.Repository.Read(dir, r.Name); err != nil {
			return nil, err
		}
	}
	return found, nil
}

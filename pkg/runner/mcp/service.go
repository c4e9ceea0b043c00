// Package mcp provides the Model Context Protocol server integration for write.
package mcp

import (
	"context"
	"errors"
	"path/filepath"

	"tableflip.dev/write/pkg/app"
	"tableflip.dev/write/pkg/entry"
)

// Service coordinates journal operations that are shared by the MCP server.
type Service struct {
	Journal   *app.Journal
	Directory string
}

// EntryDTO is a transport-friendly projection of an entry or reply.
type EntryDTO struct {
	Name       string      `json:"name"`
	Parent     string      `json:"parent,omitempty"`
	Created    string      `json:"created"`
	Modified   string      `json:"modified"`
	Content    string      `json:"content,omitempty"`
	ReplyCount int         `json:"replyCount"`
	Replies    []*EntryDTO `json:"replies,omitempty"`
}

// GroupDTO is one date bucket.
type GroupDTO struct {
	Date    string      `json:"date"`
	Label   string      `json:"label"`
	Entries []*EntryDTO `json:"entries"`
}

// SavedDTO reports a written file.
type SavedDTO struct {
	Name string `json:"name"`
	Path string `json:"path"`
}

// NewService builds a service over journal rooted at dir.
func NewService(journal *app.Journal, dir string) *Service {
	return &Service{Journal: journal, Directory: dir}
}

func (s *Service) check() error {
	if s.Journal == nil {
		return errors.New("journal is not configured")
	}
	if s.Directory == "" {
		return &entry.ValidationError{Field: "directory", Reason: "no journal directory selected"}
	}
	return nil
}

// ListEntries returns the threaded date groups of the journal directory.
func (s *Service) ListEntries(ctx context.Context) ([]GroupDTO, error) {
	if err := s.check(); err != nil {
		return nil, err
	}
	view, err := s.Journal.Load(ctx, s.Directory)
	if err != nil {
		return nil, err
	}
	out := make([]GroupDTO, 0, len(view.Groups))
	for _, g := range view.Groups {
		dto := GroupDTO{Date: g.Key, Label: g.Label, Entries: make([]*EntryDTO, 0, len(g.Entries))}
		for _, e := range g.Entries {
			dto.Entries = append(dto.Entries, toEntryDTO(e))
		}
		out = append(out, dto)
	}
	return out, nil
}

// ReadEntry returns the thread that name belongs to with every body loaded.
func (s *Service) ReadEntry(ctx context.Context, name string) (*EntryDTO, error) {
	if err := s.check(); err != nil {
		return nil, err
	}
	e, err := s.Journal.Open(ctx, s.Directory, name)
	if err != nil {
		return nil, err
	}
	return toEntryDTO(e), nil
}

// WriteEntry stores content as a new root entry.
func (s *Service) WriteEntry(ctx context.Context, content string) (*SavedDTO, error) {
	if err := s.check(); err != nil {
		return nil, err
	}
	path, err := s.Journal.SaveEntry(ctx, s.Directory, content)
	if err != nil {
		return nil, err
	}
	return &SavedDTO{Name: filepath.Base(path), Path: path}, nil
}

// ReplyEntry stores content as a reply to parent.
func (s *Service) ReplyEntry(ctx context.Context, parent, content string) (*SavedDTO, error) {
	if err := s.check(); err != nil {
		return nil, err
	}
	path, err := s.Journal.SaveReply(ctx, s.Directory, parent, content)
	if err != nil {
		return nil, err
	}
	return &SavedDTO{Name: filepath.Base(path), Path: path}, nil
}

func toEntryDTO(e *entry.Entry) *EntryDTO {
	dto := &EntryDTO{
		Name:       e.Name,
		Created:    e.CreatedAt.Format(isoLayout),
		Modified:   e.ModifiedAt.Format(isoLayout),
		Content:    e.Content,
		ReplyCount: len(e.Replies),
	}
	for _, r := range e.Replies {
		dto.Replies = append(dto.Replies, &EntryDTO{
			Name:     r.Name,
			Parent:   r.ParentName(),
			Created:  r.CreatedAt.Format(isoLayout),
			Modified: r.ModifiedAt.Format(isoLayout),
			Content:  r.Content,
		})
	}
	return dto
}

const isoLayout = "2006-01-02T15:04:05Z07:00"

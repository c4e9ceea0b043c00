package app

import (
	"context"
	"errors"
	"path/filepath"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tableflip.dev/write/pkg/entry"
	"tableflip.dev/write/pkg/store"
)

type memoryRepository struct {
	mu      sync.Mutex
	files   map[string]map[string]string
	created map[string]time.Time
	now     func() time.Time
	listErr error
}

func newMemoryRepository(now func() time.Time) *memoryRepository {
	return &memoryRepository{
		files:   make(map[string]map[string]string),
		created: make(map[string]time.Time),
		now:     now,
	}
}

func (m *memoryRepository) List(_ context.Context, dir string) ([]entry.File, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.listErr != nil {
		return nil, m.listErr
	}
	out := make([]entry.File, 0, len(m.files[dir]))
	for name := range m.files[dir] {
		created := m.created[filepath.Join(dir, name)]
		out = append(out, entry.File{Name: name, CreatedAt: created, ModifiedAt: created})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (m *memoryRepository) Read(dir, name string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	content, ok := m.files[dir][name]
	if !ok {
		return "", &entry.NotFoundError{Name: name}
	}
	return content, nil
}

func (m *memoryRepository) Write(dir, name, content string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.files[dir] == nil {
		m.files[dir] = make(map[string]string)
	}
	path := filepath.Join(dir, name)
	if _, ok := m.created[path]; !ok {
		m.created[path] = m.now()
	}
	m.files[dir][name] = content
	return path, nil
}

type clock struct {
	t time.Time
}

func (c *clock) Now() time.Time { return c.t }

func (c *clock) Advance(d time.Duration) { c.t = c.t.Add(d) }

func newTestJournal() (*Journal, *memoryRepository, *clock) {
	c := &clock{t: time.Date(2024, time.January, 2, 10, 0, 0, 0, time.UTC)}
	repo := newMemoryRepository(c.Now)
	return &Journal{Repository: repo, Now: c.Now, Location: time.UTC}, repo, c
}

func TestSaveEntryNamesFromClock(t *testing.T) {
	j, repo, _ := newTestJournal()

	path, err := j.SaveEntry(context.Background(), "/j", "hello")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/j", "240102-100000.txt"), path)

	content, err := repo.Read("/j", "240102-100000.txt")
	require.NoError(t, err)
	assert.Equal(t, "hello", content)
}

func TestSaveEntryRejectsBlank(t *testing.T) {
	j, repo, _ := newTestJournal()

	_, err := j.SaveEntry(context.Background(), "/j", "  \n\t")
	require.Error(t, err)
	assert.True(t, entry.IsValidation(err))
	assert.Empty(t, repo.files["/j"])

	_, err = j.SaveEntry(context.Background(), "", "hello")
	assert.True(t, entry.IsValidation(err))
}

func TestSaveReplyAndLoad(t *testing.T) {
	ctx := context.Background()
	j, _, c := newTestJournal()

	_, err := j.SaveEntry(ctx, "/j", "A")
	require.NoError(t, err)
	c.Advance(-time.Hour)
	_, err = j.SaveEntry(ctx, "/j", "B")
	require.NoError(t, err)
	c.Advance(2 * time.Hour)
	path, err := j.SaveReply(ctx, "/j", "240102-100000.txt", "R")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/j", "240102-100000--reply-240102-110000.txt"), path)

	view, err := j.Load(ctx, "/j")
	require.NoError(t, err)
	require.Len(t, view.Groups, 1)
	g := view.Groups[0]
	assert.Equal(t, "2024-01-02", g.Key)
	require.Len(t, g.Entries, 2)
	assert.Equal(t, "240102-100000.txt", g.Entries[0].Name)
	assert.Equal(t, "240102-090000.txt", g.Entries[1].Name)
	require.Len(t, g.Entries[0].Replies, 1)
	assert.Equal(t, "240102-100000--reply-240102-110000.txt", g.Entries[0].Replies[0].Name)
	assert.Empty(t, view.Orphans)
}

func TestSaveReplyToReplyAnchorsToRoot(t *testing.T) {
	ctx := context.Background()
	j, _, c := newTestJournal()

	_, err := j.SaveEntry(ctx, "/j", "A")
	require.NoError(t, err)
	c.Advance(time.Minute)
	first, err := j.SaveReply(ctx, "/j", "240102-100000.txt", "R1")
	require.NoError(t, err)
	c.Advance(time.Minute)
	second, err := j.SaveReply(ctx, "/j", filepath.Base(first), "R2")
	require.NoError(t, err)
	assert.Equal(t, "240102-100000--reply-240102-100200.txt", filepath.Base(second))

	root, err := j.Open(ctx, "/j", "240102-100000.txt")
	require.NoError(t, err)
	require.Len(t, root.Replies, 2)
	assert.Equal(t, "R1", root.Replies[0].Content)
	assert.Equal(t, "R2", root.Replies[1].Content)
}

func TestSaveReplyMissingParent(t *testing.T) {
	j, _, _ := newTestJournal()

	_, err := j.SaveReply(context.Background(), "/j", "240102-100000.txt", "R")
	require.Error(t, err)
	assert.True(t, entry.IsNotFound(err))
}

func TestSaveReplyValidation(t *testing.T) {
	ctx := context.Background()
	j, _, _ := newTestJournal()
	_, err := j.SaveEntry(ctx, "/j", "A")
	require.NoError(t, err)

	_, err = j.SaveReply(ctx, "/j", "", "R")
	assert.True(t, entry.IsValidation(err))
	_, err = j.SaveReply(ctx, "/j", "240102-100000.txt", " ")
	assert.True(t, entry.IsValidation(err))
}

func TestLoadReportsOrphans(t *testing.T) {
	ctx := context.Background()
	j, repo, _ := newTestJournal()
	_, err := repo.Write("/j", "240101-080000--reply-240102-100000.txt", "lost")
	require.NoError(t, err)

	view, err := j.Load(ctx, "/j")
	require.NoError(t, err)
	assert.Empty(t, view.Groups)
	require.Len(t, view.Orphans, 1)
	assert.Equal(t, "240101-080000.txt", view.Orphans[0].ParentName())
}

func TestLoadSurfacesListError(t *testing.T) {
	j, repo, _ := newTestJournal()
	repo.listErr = &entry.IOError{Op: "list", Path: "/j", Err: errors.New("denied")}

	_, err := j.Load(context.Background(), "/j")
	require.Error(t, err)
	assert.Equal(t, entry.CodeIO, entry.CodeOf(err))
}

func TestEditKeepsName(t *testing.T) {
	ctx := context.Background()
	j, _, c := newTestJournal()
	path, err := j.SaveEntry(ctx, "/j", "draft")
	require.NoError(t, err)
	c.Advance(time.Hour)

	edited, err := j.Edit(ctx, "/j", filepath.Base(path), "final")
	require.NoError(t, err)
	assert.Equal(t, path, edited)

	content, err := j.Read(ctx, "/j", filepath.Base(path))
	require.NoError(t, err)
	assert.Equal(t, "final", content)
}

func TestEditMissing(t *testing.T) {
	j, _, _ := newTestJournal()
	_, err := j.Edit(context.Background(), "/j", "240102-100000.txt", "x")
	assert.True(t, entry.IsNotFound(err))
}

func TestOpenReplyResolvesRoot(t *testing.T) {
	ctx := context.Background()
	j, _, c := newTestJournal()
	_, err := j.SaveEntry(ctx, "/j", "root body")
	require.NoError(t, err)
	c.Advance(time.Hour)
	reply, err := j.SaveReply(ctx, "/j", "240102-100000.txt", "reply body")
	require.NoError(t, err)

	root, err := j.Open(ctx, "/j", filepath.Base(reply))
	require.NoError(t, err)
	assert.Equal(t, "240102-100000.txt", root.Name)
	assert.Equal(t, "root body", root.Content)
	require.Len(t, root.Replies, 1)
	assert.Equal(t, "reply body", root.Replies[0].Content)
}

func TestOpenMissing(t *testing.T) {
	j, _, _ := newTestJournal()
	_, err := j.Open(context.Background(), "/j", "240102-100000.txt")
	assert.True(t, entry.IsNotFound(err))
}

func TestNoRepository(t *testing.T) {
	j := &Journal{}
	_, err := j.Load(context.Background(), "/j")
	assert.Error(t, err)
}

func TestJournalOnDisk(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	c := &clock{t: time.Date(2024, time.January, 2, 10, 0, 0, 0, time.Local)}
	j := &Journal{Repository: store.New(), Now: c.Now, Location: time.Local}

	_, err := j.SaveEntry(ctx, dir, "on disk")
	require.NoError(t, err)
	c.Advance(time.Minute)
	_, err = j.SaveReply(ctx, dir, "240102-100000.txt", "reply on disk")
	require.NoError(t, err)

	view, err := j.Load(ctx, dir)
	require.NoError(t, err)
	require.Len(t, view.Groups, 1)
	require.Len(t, view.Groups[0].Entries, 1)
	assert.Len(t, view.Groups[0].Entries[0].Replies, 1)

	root, err := j.Open(ctx, dir, "240102-100000.txt")
	require.NoError(t, err)
	assert.Equal(t, "on disk", root.Content)
	assert.Equal(t, "reply on disk", root.Replies[0].Content)
}

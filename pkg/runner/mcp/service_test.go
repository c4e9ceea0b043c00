package mcp

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tableflip.dev/write/pkg/app"
	"tableflip.dev/write/pkg/entry"
	"tableflip.dev/write/pkg/store"
)

type clock struct {
	t time.Time
}

func (c *clock) Now() time.Time { return c.t }

func newTestService(t *testing.T) (*Service, *clock) {
	t.Helper()
	c := &clock{t: time.Date(2024, time.January, 2, 10, 0, 0, 0, time.Local)}
	j := &app.Journal{Repository: store.New(), Now: c.Now, Location: time.Local}
	return NewService(j, t.TempDir()), c
}

func TestServiceWriteAndList(t *testing.T) {
	ctx := context.Background()
	svc, c := newTestService(t)

	saved, err := svc.WriteEntry(ctx, "first")
	require.NoError(t, err)
	assert.Equal(t, "240102-100000.txt", saved.Name)

	c.t = c.t.Add(time.Hour)
	_, err = svc.ReplyEntry(ctx, saved.Name, "answer")
	require.NoError(t, err)

	groups, err := svc.ListEntries(ctx)
	require.NoError(t, err)
	require.Len(t, groups, 1)
	require.Len(t, groups[0].Entries, 1)
	assert.Equal(t, 1, groups[0].Entries[0].ReplyCount)
	assert.Equal(t, "240102-100000.txt", groups[0].Entries[0].Replies[0].Parent)
}

func TestServiceReadEntry(t *testing.T) {
	ctx := context.Background()
	svc, c := newTestService(t)

	saved, err := svc.WriteEntry(ctx, "body")
	require.NoError(t, err)
	c.t = c.t.Add(time.Minute)
	reply, err := svc.ReplyEntry(ctx, saved.Name, "reply body")
	require.NoError(t, err)

	dto, err := svc.ReadEntry(ctx, reply.Name)
	require.NoError(t, err)
	assert.Equal(t, saved.Name, dto.Name)
	assert.Equal(t, "body", dto.Content)
	require.Len(t, dto.Replies, 1)
	assert.Equal(t, "reply body", dto.Replies[0].Content)
}

func TestServiceErrors(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	_, err := svc.ReadEntry(ctx, "240101-000000.txt")
	assert.Equal(t, entry.CodeNotFound, entry.CodeOf(err))

	_, err = svc.WriteEntry(ctx, " ")
	assert.Equal(t, entry.CodeValidation, entry.CodeOf(err))

	_, err = svc.ReplyEntry(ctx, "240101-000000.txt", "x")
	assert.True(t, entry.IsNotFound(err))

	empty := NewService(svc.Journal, "")
	_, err = empty.ListEntries(ctx)
	assert.True(t, entry.IsValidation(err))
}

func TestRunnerRequiresJournal(t *testing.T) {
	_, err := Runner{}.NewServer()
	assert.Error(t, err)

	srv, err := Runner{Journal: app.New(store.New()), Directory: t.TempDir()}.NewServer()
	require.NoError(t, err)
	assert.NotNil(t, srv)
}

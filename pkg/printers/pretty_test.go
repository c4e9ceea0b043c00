package printers

import (
	"bytes"
	"testing"
	"time"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"

	"tableflip.dev/write/pkg/entry"
	"tableflip.dev/write/pkg/viewmodel"
)

func init() {
	color.NoColor = true
}

func TestGroups(t *testing.T) {
	created := time.Date(2024, time.January, 2, 10, 0, 0, 0, time.UTC)
	files := []entry.File{
		{Name: "240102-100000.txt", CreatedAt: created},
		{Name: "240102-100000--reply-240102-110000.txt", CreatedAt: created.Add(time.Hour)},
		{Name: "240102-090000.txt", CreatedAt: created.Add(-time.Hour)},
	}

	var buf bytes.Buffer
	pp := PrettyPrint{Out: &buf}
	pp.Groups(viewmodel.BuildView(files, viewmodel.WithLocation(time.UTC)))

	out := buf.String()
	assert.Contains(t, out, "January 2, 2024 - 2 entries")
	assert.Contains(t, out, "10:00 AM  +1")
	assert.Contains(t, out, "09:00 AM")
	assert.Less(t, bytes.Index(buf.Bytes(), []byte("10:00 AM")), bytes.Index(buf.Bytes(), []byte("09:00 AM")))
}

func TestGroupsEmpty(t *testing.T) {
	var buf bytes.Buffer
	pp := PrettyPrint{Out: &buf}
	pp.Groups(nil)
	assert.Contains(t, buf.String(), "no entries found")
}

func TestThreadWraps(t *testing.T) {
	created := time.Date(2024, time.January, 2, 10, 0, 0, 0, time.UTC)
	e := &entry.Entry{
		Name:      "240102-100000.txt",
		CreatedAt: created,
		Content:   "one two three four five six",
		Replies: []*entry.Reply{
			{Name: "240102-100000--reply-240102-110000.txt", CreatedAt: created.Add(time.Hour), Content: "reply"},
		},
	}

	var buf bytes.Buffer
	pp := PrettyPrint{Out: &buf, Width: 10}
	pp.Thread(e)

	out := buf.String()
	assert.Contains(t, out, "240102-100000.txt")
	assert.Contains(t, out, "Jan 2, 2024, 10:00 AM")
	assert.Contains(t, out, "one two\nthree four\nfive six")
	assert.Contains(t, out, "Jan 2, 2024, 11:00 AM\nreply")
}

func TestOrphans(t *testing.T) {
	var buf bytes.Buffer
	pp := PrettyPrint{Out: &buf}
	pp.Orphans([]*entry.Reply{{Name: "gone--reply-240102-110000.txt"}})

	out := buf.String()
	assert.Contains(t, out, "Orphaned replies")
	assert.Contains(t, out, "gone.txt")
}

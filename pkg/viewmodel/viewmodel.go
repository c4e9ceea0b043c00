// Package viewmodel assembles a flat directory listing into threaded entries
// grouped by calendar day.
package viewmodel

import (
	"sort"
	"time"

	"tableflip.dev/write/pkg/entry"
)

const (
	keyFormat   = "2006-01-02"
	labelFormat = "January 2, 2006"
)

// DateGroup holds the root entries created on one calendar day, newest first.
type DateGroup struct {
	Key     string         `json:"date"`
	Label   string         `json:"label"`
	Date    time.Time      `json:"-"`
	Entries []*entry.Entry `json:"entries"`
}

// Option customises BuildView behaviour.
type Option func(*buildOptions)

// WithLocation sets the zone whose calendar days define the groups.
func WithLocation(loc *time.Location) Option {
	return func(opts *buildOptions) {
		if loc != nil {
			opts.loc = loc
		}
	}
}

type buildOptions struct {
	loc *time.Location
}

func newBuildOptions(opts []Option) *buildOptions {
	config := &buildOptions{loc: time.Local}
	for _, opt := range opts {
		opt(config)
	}
	return config
}

// BuildView threads replies under their roots and buckets the roots by the
// calendar day of their creation time. Replies whose parent is not in files
// are left out; see Orphans.
func BuildView(files []entry.File, opts ...Option) []DateGroup {
	config := newBuildOptions(opts)

	roots := Thread(files)
	SortRoots(roots)

	groups := make(map[string]*DateGroup)
	for _, root := range roots {
		local := root.CreatedAt.In(config.loc)
		key := local.Format(keyFormat)
		g, ok := groups[key]
		if !ok {
			y, m, d := local.Date()
			g = &DateGroup{
				Key:   key,
				Label: local.Format(labelFormat),
				Date:  time.Date(y, m, d, 0, 0, 0, 0, config.loc),
			}
			groups[key] = g
		}
		g.Entries = append(g.Entries, root)
	}

	keys := make([]string, 0, len(groups))
	for key := range groups {
		keys = append(keys, key)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(keys)))

	view := make([]DateGroup, 0, len(keys))
	for _, key := range keys {
		view = append(view, *groups[key])
	}
	return view
}

// Thread partitions files into roots and replies and attaches every reply to
// the root it names. Roots keep listing order; replies are sorted oldest
// first.
func Thread(files []entry.File) []*entry.Entry {
	roots := make([]*entry.Entry, 0, len(files))
	byName := make(map[string]*entry.Entry, len(files))
	for _, f := range files {
		if entry.IsReply(f.Name) {
			continue
		}
		root := entry.NewEntry(f)
		roots = append(roots, root)
		byName[f.Name] = root
	}

	for _, f := range files {
		parent, ok := entry.ParentOf(f.Name)
		if !ok {
			continue
		}
		if root, found := byName[parent]; found {
			root.Replies = append(root.Replies, entry.NewReply(f))
		}
	}

	for _, root := range roots {
		SortReplies(root.Replies)
	}
	return roots
}

// Orphans returns the replies whose parent is not present in files, oldest
// first. The files themselves are untouched; BuildView just never shows them.
func Orphans(files []entry.File) []*entry.Reply {
	present := make(map[string]struct{}, len(files))
	for _, f := range files {
		if !entry.IsReply(f.Name) {
			present[f.Name] = struct{}{}
		}
	}

	var orphans []*entry.Reply
	for _, f := range files {
		parent, ok := entry.ParentOf(f.Name)
		if !ok {
			continue
		}
		if _, found := present[parent]; !found {
			orphans = append(orphans, entry.NewReply(f))
		}
	}
	SortReplies(orphans)
	return orphans
}

// SortRoots orders roots newest first. Equal creation times keep their
// relative order.
func SortRoots(roots []*entry.Entry) {
	sort.SliceStable(roots, func(i, j int) bool {
		return roots[i].CreatedAt.After(roots[j].CreatedAt)
	})
}

// SortReplies orders replies oldest first, breaking ties by name.
func SortReplies(replies []*entry.Reply) {
	sort.SliceStable(replies, func(i, j int) bool {
		left, right := replies[i], replies[j]
		if left.CreatedAt.Equal(right.CreatedAt) {
			return left.Name < right.Name
		}
		return left.CreatedAt.Before(right.CreatedAt)
	})
}

// Find returns the root called name from a built view.
func Find(view []DateGroup, name string) (*entry.Entry, bool) {
	for _, g := range view {
		for _, e := range g.Entries {
			if e.Name == name {
				return e, true
			}
		}
	}
	return nil, false
}

// Count returns the number of roots and attached replies in a view.
func Count(view []DateGroup) (roots, replies int) {
	for _, g := range view {
		roots += len(g.Entries)
		for _, e := range g.Entries {
			replies += len(e.Replies)
		}
	}
	return roots, replies
}

// Since keeps the roots created at or after cutoff. Groups left empty are
// removed; replies stay with their root whatever their age.
func Since(view []DateGroup, cutoff time.Time) []DateGroup {
	out := make([]DateGroup, 0, len(view))
	for _, g := range view {
		var kept []*entry.Entry
		for _, e := range g.Entries {
			if !e.CreatedAt.Before(cutoff) {
				kept = append(kept, e)
			}
		}
		if len(kept) == 0 {
			continue
		}
		g.Entries = kept
		out = append(out, g)
	}
	return out
}

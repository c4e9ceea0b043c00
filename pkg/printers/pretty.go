package printers

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"
	"github.com/muesli/reflow/wordwrap"

	"tableflip.dev/write/pkg/entry"
	"tableflip.dev/write/pkg/viewmodel"
)

const (
	timeOnly     = "03:04 PM"
	fullDateTime = "Jan 2, 2006, 03:04 PM"

	defaultWidth = 80
)

// PrettyPrint renders journal views for a terminal.
type PrettyPrint struct {
	Out      io.Writer
	ShowName bool
	Width    int
}

var (
	spacing = strings.Repeat(" ", len("240102-100000.txt  "))
)

func (pp *PrettyPrint) out() io.Writer {
	if pp.Out == nil {
		return color.Output
	}
	return pp.Out
}

func (pp *PrettyPrint) width() int {
	if pp.Width <= 0 {
		return defaultWidth
	}
	return pp.Width
}

func (pp *PrettyPrint) NewLine() {
	_, _ = fmt.Fprintln(pp.out(), "")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)

	if pp.ShowName {
		_, _ = t.Fprint(pp.out(), spacing)
	}
	_, _ = t.Fprintln(pp.out(), title)
}

func (pp *PrettyPrint) TitleWithCount(title string, count int) {
	t := color.New(color.Bold, color.Underline)
	c := color.New(color.Faint)

	if pp.ShowName {
		_, _ = t.Fprint(pp.out(), spacing)
	}
	_, _ = t.Fprint(pp.out(), title)
	_, _ = c.Fprintf(pp.out(), " - %d", count)

	switch count {
	case 1:
		_, _ = c.Fprintln(pp.out(), " entry")
	default:
		_, _ = c.Fprintln(pp.out(), " entries")
	}
}

// Groups prints one block per day with a line per root entry.
func (pp *PrettyPrint) Groups(groups []viewmodel.DateGroup) {
	if len(groups) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Fprint(pp.out(), " no entries found\n\n")
		return
	}

	t := color.New()
	y := color.New(color.FgHiYellow, color.Italic, color.Faint)
	c := color.New(color.Faint)

	for _, g := range groups {
		pp.TitleWithCount(g.Label, len(g.Entries))
		for _, e := range g.Entries {
			if pp.ShowName {
				_, _ = y.Fprint(pp.out(), e.Name)
				_, _ = y.Fprint(pp.out(), strings.Repeat(" ", max(1, len(spacing)-len(e.Name))))
			}
			_, _ = t.Fprint(pp.out(), e.CreatedAt.Format(timeOnly))
			if n := len(e.Replies); n > 0 {
				_, _ = c.Fprintf(pp.out(), "  +%d", n)
			}
			pp.NewLine()
		}
		pp.NewLine()
	}
}

// Thread prints a root entry followed by its replies, oldest first.
func (pp *PrettyPrint) Thread(e *entry.Entry) {
	pp.Title(e.Name)
	pp.item(e)
	for _, r := range e.Replies {
		pp.item(r)
	}
}

func (pp *PrettyPrint) item(i entry.Item) {
	c := color.New(color.Faint)
	_, _ = c.Fprintln(pp.out(), i.Created().Format(fullDateTime))
	body := wordwrap.String(strings.TrimRight(i.Text(), "\n"), pp.width())
	_, _ = fmt.Fprintln(pp.out(), body)
	pp.NewLine()
}

// Orphans lists replies whose parent entry is missing.
func (pp *PrettyPrint) Orphans(replies []*entry.Reply) {
	if len(replies) == 0 {
		return
	}
	bold := color.New(color.Bold)
	_, _ = bold.Fprintln(pp.out(), "Orphaned replies")

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint("Reply"), bold.Sprint("Missing parent"), bold.Sprint("Created"))
	for _, r := range replies {
		tbl.AddRow(r.Name, r.ParentName(), r.CreatedAt.Format(fullDateTime))
	}
	_, _ = fmt.Fprintln(pp.out(), tbl)
	pp.NewLine()
}

// Settings prints key/value pairs sorted by key.
func (pp *PrettyPrint) Settings(values map[string]any) {
	bold := color.New(color.Bold)

	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint("Key"), bold.Sprint("Value"))
	for _, k := range keys {
		tbl.AddRow(k, fmt.Sprint(values[k]))
	}
	_, _ = fmt.Fprintln(pp.out(), tbl)
}

// Package prompt lets the user pick a journal entry on the terminal.
package prompt

import (
	"errors"
	"io"
	"strings"
	"time"

	"github.com/manifoldco/promptui"

	"tableflip.dev/write/pkg/viewmodel"
)

// Choice is one selectable entry or reply.
type Choice struct {
	Name    string
	When    string
	Replies int
	Reply   bool
}

// Choices flattens view into the order it is printed in: each root followed
// by its replies.
func Choices(view []viewmodel.DateGroup, loc *time.Location) []Choice {
	if loc == nil {
		loc = time.Local
	}
	var out []Choice
	for _, g := range view {
		for _, e := range g.Entries {
			out = append(out, Choice{
				Name:    e.Name,
				When:    e.CreatedAt.In(loc).Format("Jan 2 03:04 PM"),
				Replies: len(e.Replies),
			})
			for _, r := range e.Replies {
				out = append(out, Choice{
					Name:  r.Name,
					When:  r.CreatedAt.In(loc).Format("Jan 2 03:04 PM"),
					Reply: true,
				})
			}
		}
	}
	return out
}

// Match reports whether input, ignoring case and spaces, is part of the
// choice's name or time.
func Match(c Choice, input string) bool {
	input = squash(input)
	return strings.Contains(squash(c.Name), input) || strings.Contains(squash(c.When), input)
}

func squash(s string) string {
	return strings.ReplaceAll(strings.ToLower(s), " ", "")
}

// EntryPicker shows a searchable list of entries.
type EntryPicker struct {
	In  io.Reader
	Out io.Writer
}

// SelectEntry returns the chosen name. ok is false when the user cancels or
// there is nothing to choose from.
func (p EntryPicker) SelectEntry(label string, choices []Choice) (name string, ok bool, err error) {
	if len(choices) == 0 {
		return "", false, nil
	}

	templates := &promptui.SelectTemplates{
		Label:    "{{ . }}?",
		Active:   "➜  {{ if .Reply }}  ↳ {{ end }}{{ .When | bold }} {{ .Name | green }}",
		Inactive: "   {{ if .Reply }}  ↳ {{ end }}{{ .When }} {{ .Name | cyan }}",
		Selected: "{{ .Name | bold }}",
		Details: `
--------- Entry ----------
{{ .Name }}{{ if not .Reply }} ({{ .Replies }} replies){{ end }}
`,
	}

	sel := promptui.Select{
		HideHelp:  true,
		Label:     label,
		Items:     choices,
		Templates: templates,
		Size:      10,
		Searcher: func(input string, index int) bool {
			return Match(choices[index], input)
		},
	}
	if p.In != nil {
		sel.Stdin = io.NopCloser(p.In)
	}
	if p.Out != nil {
		sel.Stdout = nopWriteCloser{p.Out}
	}

	i, _, err := sel.Run()
	switch {
	case errors.Is(err, promptui.ErrInterrupt), errors.Is(err, promptui.ErrEOF), errors.Is(err, promptui.ErrAbort):
		return "", false, nil
	case err != nil:
		return "", false, err
	}
	return choices[i].Name, true, nil
}

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }

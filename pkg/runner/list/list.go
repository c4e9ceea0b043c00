package list

import (
	"context"
	"errors"
	"io"
	"time"

	"tableflip.dev/write/pkg/app"
	"tableflip.dev/write/pkg/logging"
	"tableflip.dev/write/pkg/printers"
	"tableflip.dev/write/pkg/viewmodel"
)

// List prints the grouped, threaded view of a journal directory.
type List struct {
	Journal   *app.Journal
	Directory string
	ShowName  bool
	Orphans   bool
	JSON      bool
	// Since hides roots created before it when set.
	Since     time.Time

	Out io.Writer
	Log logging.Logger
}

func (n *List) Do(ctx context.Context) error {
	if n.Journal == nil {
		return errors.New("can not list, no journal")
	}

	view, err := n.Journal.Load(ctx, n.Directory)
	if err != nil {
		n.Log.Error(ctx, "load entries", "dir", n.Directory, "err", err)
		return err
	}
	if !n.Since.IsZero() {
		view.Groups = viewmodel.Since(view.Groups, n.Since)
	}
	roots, replies := viewmodel.Count(view.Groups)
	n.Log.Debug(ctx, "loaded entries", "dir", n.Directory, "entries", roots, "replies", replies)

	if n.JSON {
		if !n.Orphans {
			view.Orphans = nil
		}
		return printers.JSON(n.Out, view)
	}

	pp := printers.PrettyPrint{Out: n.Out, ShowName: n.ShowName}
	pp.NewLine()
	pp.Groups(view.Groups)

	switch {
	case n.Orphans:
		pp.Orphans(view.Orphans)
	case len(view.Orphans) > 0:
		n.Log.Warn(ctx, "replies without a parent entry are hidden, use --orphans to list them",
			"dir", n.Directory, "count", len(view.Orphans))
	}
	return nil
}

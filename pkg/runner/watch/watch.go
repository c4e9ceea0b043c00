package watch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"tableflip.dev/write/pkg/app"
	"tableflip.dev/write/pkg/logging"
	"tableflip.dev/write/pkg/printers"
	"tableflip.dev/write/pkg/store"
)

// Watch prints the view of Directory and reprints it whenever the directory
// changes, until ctx is cancelled.
type Watch struct {
	Journal   *app.Journal
	Directory string
	ShowName  bool
	Throttle  time.Duration

	Out io.Writer
	Log logging.Logger
}

func (n *Watch) Do(ctx context.Context) error {
	if n.Journal == nil {
		return errors.New("can not watch, no journal")
	}

	events, err := store.Watch(ctx, n.Directory, n.Throttle)
	if err != nil {
		n.Log.Error(ctx, "watch", "dir", n.Directory, "err", err)
		return err
	}

	if err := n.render(ctx); err != nil {
		return err
	}
	for {
		select {
		case <-ctx.Done():
			return nil
		case evt, ok := <-events:
			if !ok {
				return nil
			}
			n.Log.Debug(ctx, "directory changed", "dir", n.Directory, "name", evt.Name, "type", evt.Type)
			// A failed reload keeps the previous output on screen.
			if err := n.render(ctx); err != nil {
				n.Log.Warn(ctx, "reload entries", "dir", n.Directory, "err", err)
			}
		}
	}
}

func (n *Watch) render(ctx context.Context) error {
	view, err := n.Journal.Load(ctx, n.Directory)
	if err != nil {
		return err
	}
	pp := printers.PrettyPrint{Out: n.Out, ShowName: n.ShowName}
	_, _ = fmt.Fprintf(n.Out, "\n%s (%s)\n", n.Directory, time.Now().Format("15:04:05"))
	pp.Groups(view.Groups)
	return nil
}

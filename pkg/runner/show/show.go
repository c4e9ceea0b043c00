package show

import (
	"context"
	"errors"
	"io"

	"tableflip.dev/write/pkg/app"
	"tableflip.dev/write/pkg/logging"
	"tableflip.dev/write/pkg/printers"
)

// Show prints an entry and its replies. Name may be a reply, in which case
// the whole thread of its root is shown.
type Show struct {
	Journal   *app.Journal
	Directory string
	Name      string
	JSON      bool

	Out io.Writer
	Log logging.Logger
}

func (n *Show) Do(ctx context.Context) error {
	if n.Journal == nil {
		return errors.New("can not show, no journal")
	}

	e, err := n.Journal.Open(ctx, n.Directory, n.Name)
	if err != nil {
		n.Log.Error(ctx, "open entry", "dir", n.Directory, "name", n.Name, "err", err)
		return err
	}

	if n.JSON {
		return printers.JSON(n.Out, e)
	}
	pp := printers.PrettyPrint{Out: n.Out}
	pp.NewLine()
	pp.Thread(e)
	return nil
}

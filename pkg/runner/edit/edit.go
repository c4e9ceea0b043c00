package edit

import (
	"context"
	"errors"
	"io"
	"path/filepath"

	"tableflip.dev/write/pkg/app"
	"tableflip.dev/write/pkg/logging"
	"tableflip.dev/write/pkg/printers"
	"tableflip.dev/write/pkg/runner/add"
)

// Edit replaces the content of an existing entry or reply.
type Edit struct {
	Journal   *app.Journal
	Directory string
	Name      string
	Content   string
	JSON      bool

	Out io.Writer
	Log logging.Logger
}

func (n *Edit) Do(ctx context.Context) error {
	if n.Journal == nil {
		return errors.New("can not edit, no journal")
	}

	path, err := n.Journal.Edit(ctx, n.Directory, n.Name, n.Content)
	if err != nil {
		n.Log.Error(ctx, "edit entry", "dir", n.Directory, "name", n.Name, "err", err)
		return err
	}
	n.Log.Info(ctx, "edited entry", "dir", n.Directory, "name", n.Name)

	if n.JSON {
		return printers.JSON(n.Out, add.Saved{Name: filepath.Base(path), Path: path})
	}

	e, err := n.Journal.Open(ctx, n.Directory, n.Name)
	if err != nil {
		n.Log.Warn(ctx, "reload thread", "dir", n.Directory, "err", err)
		return nil
	}
	pp := printers.PrettyPrint{Out: n.Out}
	pp.NewLine()
	pp.Thread(e)
	return nil
}

package reply

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

// Reply saves a reply to Parent and prints the updated thread.
type Reply struct {
	Journal   *app.Journal
	Directory string
	Parent    string
	Content   string
	JSON      bool

	Out io.Writer
	Log logging.Logger
}

func (n *Reply) Do(ctx context.Context) error {
	if n.Journal == nil {
		return errors.New("can not reply, no journal")
	}

	path, err := n.Journal.SaveReply(ctx, n.Directory, n.Parent, n.Content)
	if err != nil {
		n.Log.Error(ctx, "save reply", "dir", n.Directory, "parent", n.Parent, "err", err)
		return err
	}
	name := filepath.Base(path)
	n.Log.Info(ctx, "saved reply", "dir", n.Directory, "name", name)

	if n.JSON {
		return printers.JSON(n.Out, add.Saved{Name: name, Path: path})
	}

	e, err := n.Journal.Open(ctx, n.Directory, name)
	if err != nil {
		n.Log.Warn(ctx, "reload thread", "dir", n.Directory, "err", err)
		return nil
	}
	pp := printers.PrettyPrint{Out: n.Out}
	pp.NewLine()
	pp.Thread(e)
	return nil
}

package add

import (
	"context"
	"errors"
	"io"
	"path/filepath"

	"tableflip.dev/write/pkg/app"
	"tableflip.dev/write/pkg/logging"
	"tableflip.dev/write/pkg/printers"
)

// Add saves a new root entry and prints the day it landed in.
type Add struct {
	Journal   *app.Journal
	Directory string
	Content   string
	JSON      bool

	Out io.Writer
	Log logging.Logger
}

// Saved is the JSON result of a save.
type Saved struct {
	Name string `json:"name"`
	Path string `json:"path"`
}

func (n *Add) Do(ctx context.Context) error {
	if n.Journal == nil {
		return errors.New("can not add, no journal")
	}

	path, err := n.Journal.SaveEntry(ctx, n.Directory, n.Content)
	if err != nil {
		n.Log.Error(ctx, "save entry", "dir", n.Directory, "err", err)
		return err
	}
	name := filepath.Base(path)
	n.Log.Info(ctx, "saved entry", "dir", n.Directory, "name", name)

	if n.JSON {
		return printers.JSON(n.Out, Saved{Name: name, Path: path})
	}

	pp := printers.PrettyPrint{Out: n.Out, ShowName: true}
	pp.NewLine()
	view, err := n.Journal.Load(ctx, n.Directory)
	if err != nil {
		n.Log.Warn(ctx, "reload entries", "dir", n.Directory, "err", err)
		pp.Title(name)
		return nil
	}
	if len(view.Groups) > 0 {
		pp.Groups(view.Groups[:1])
	}
	return nil
}

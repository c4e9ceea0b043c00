package use

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"tableflip.dev/write/pkg/config"
	"tableflip.dev/write/pkg/entry"
	"tableflip.dev/write/pkg/logging"
	"tableflip.dev/write/pkg/store"
)

// Picker asks the user for a directory. ok is false when the user cancels.
type Picker interface {
	SelectDirectory(start string) (dir string, ok bool, err error)
}

// Use records the journal directory as the default for later commands.
// Without Directory, Picker is asked.
type Use struct {
	Config    *config.Store
	Directory string
	Picker    Picker

	Out io.Writer
	Log logging.Logger
}

func (n *Use) Do(ctx context.Context) error {
	if n.Config == nil {
		return errors.New("can not use, no config")
	}

	current, err := n.Config.Get()
	if err != nil {
		n.Log.Warn(ctx, "load config", "err", err)
	}

	dir := n.Directory
	if dir == "" {
		if n.Picker == nil {
			return &entry.ValidationError{Field: "directory", Reason: "required"}
		}
		picked, ok, err := n.Picker.SelectDirectory(current.DefaultPath)
		if err != nil {
			n.Log.Error(ctx, "select directory", "err", err)
			return err
		}
		if !ok {
			_, _ = fmt.Fprintln(n.Out, "No directory selected.")
			return nil
		}
		dir = picked
	}

	dir, err = store.Expand(dir)
	if err != nil {
		return err
	}
	if abs, err := filepath.Abs(dir); err == nil {
		dir = abs
	}
	info, err := os.Stat(dir)
	if err != nil {
		return &entry.IOError{Op: "use", Path: dir, Err: err}
	}
	if !info.IsDir() {
		return &entry.IOError{Op: "use", Path: dir, Err: errors.New("not a directory")}
	}

	if _, err := n.Config.SetDefaultPath(dir); err != nil {
		n.Log.Error(ctx, "update config", "err", err)
		return err
	}
	n.Log.Info(ctx, "default directory set", "dir", dir)
	_, _ = fmt.Fprintf(n.Out, "Using %s\n", dir)
	return nil
}

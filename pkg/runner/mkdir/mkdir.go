package mkdir

import (
	"context"
	"fmt"
	"io"

	"tableflip.dev/write/pkg/config"
	"tableflip.dev/write/pkg/logging"
	"tableflip.dev/write/pkg/store"
)

// Mkdir creates Base/Name and optionally makes it the default directory.
type Mkdir struct {
	Base   string
	Name   string
	Use    bool
	Config *config.Store

	Out io.Writer
	Log logging.Logger
}

func (n *Mkdir) Do(ctx context.Context) error {
	path, err := store.CreateDirectory(n.Base, n.Name)
	if err != nil {
		n.Log.Error(ctx, "create directory", "base", n.Base, "name", n.Name, "err", err)
		return err
	}
	_, _ = fmt.Fprintf(n.Out, "Created %s\n", path)

	if n.Use && n.Config != nil {
		if _, err := n.Config.SetDefaultPath(path); err != nil {
			n.Log.Error(ctx, "update config", "err", err)
			return err
		}
		_, _ = fmt.Fprintf(n.Out, "Using %s\n", path)
	}
	return nil
}

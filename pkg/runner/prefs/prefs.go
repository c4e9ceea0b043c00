package prefs

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"tableflip.dev/write/pkg/config"
	"tableflip.dev/write/pkg/logging"
	"tableflip.dev/write/pkg/printers"
)

// Prefs prints where preferences are stored and their values, applying
// Updates first when given.
type Prefs struct {
	Settings *config.Settings
	Store    *config.Store
	Updates  map[string]any
	JSON     bool

	Out io.Writer
	Log logging.Logger
}

func (n *Prefs) Do(ctx context.Context) error {
	if n.Settings == nil || n.Store == nil {
		return errors.New("can not show config, no settings")
	}

	var (
		c   config.Config
		err error
	)
	if len(n.Updates) > 0 {
		c, err = n.Store.Update(n.Updates)
	} else {
		c, err = n.Store.Get()
	}
	if err != nil {
		n.Log.Error(ctx, "config", "path", n.Settings.Port().Path, "err", err)
		return err
	}

	if n.JSON {
		return printers.JSON(n.Out, c.Map())
	}

	if override := os.Getenv(config.EnvPrefix + "_CONFIG_DIR"); override != "" {
		_, _ = fmt.Fprintln(n.Out, "WRITE_CONFIG_DIR found on env, using", override)
	}
	_, _ = fmt.Fprintln(n.Out, "Config file:", n.Settings.Port().Path)
	if n.Settings.Directory != "" {
		_, _ = fmt.Fprintln(n.Out, "Directory override:", n.Settings.Directory)
	}
	_, _ = fmt.Fprintln(n.Out, "")

	pp := printers.PrettyPrint{Out: n.Out}
	pp.Settings(c.Map())
	return nil
}

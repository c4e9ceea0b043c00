package commands

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"tableflip.dev/write/pkg/app"
	"tableflip.dev/write/pkg/config"
	"tableflip.dev/write/pkg/entry"
	"tableflip.dev/write/pkg/logging"
	"tableflip.dev/write/pkg/store"
)

// env resolves settings lazily so flag values are parsed before use.
type env struct {
	v *viper.Viper
}

// session is everything a runner needs for one invocation.
type session struct {
	Settings  *config.Settings
	Config    *config.Store
	Journal   *app.Journal
	Log       logging.Logger
	Directory string
}

func (e *env) load(cmd *cobra.Command) (*session, error) {
	settings, err := config.LoadSettings(e.v)
	if err != nil {
		return nil, err
	}
	log := logging.New(cmd.ErrOrStderr(), logging.Options{
		Verbose: settings.Verbose,
		JSON:    settings.LogJSON,
	})
	ctx := contextOf(cmd)

	prefs := config.NewStore(settings.Port())
	current, err := prefs.Get()
	if err != nil {
		log.Warn(ctx, "config unreadable, using defaults", "path", settings.Port().Path, "err", err)
	}

	s := &session{
		Settings:  settings,
		Config:    prefs,
		Journal:   app.New(store.New()),
		Log:       log,
		Directory: settings.ResolveDirectory(current),
	}
	log.Debug(ctx, "session", "dir", s.Directory, "config", settings.Port().Path)
	return s, nil
}

// journalDir is like load but fails when no directory is selected.
func (e *env) journalDir(cmd *cobra.Command) (*session, error) {
	s, err := e.load(cmd)
	if err != nil {
		return nil, err
	}
	if s.Directory == "" {
		return nil, &entry.ValidationError{
			Field:  "directory",
			Reason: "none selected, run `write use <dir>` or pass --dir",
		}
	}
	return s, nil
}

func contextOf(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

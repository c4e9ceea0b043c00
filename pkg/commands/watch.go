package commands

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"tableflip.dev/write/pkg/commands/options"
	"tableflip.dev/write/pkg/runner/watch"
	"tableflip.dev/write/pkg/store"
)

func addWatch(topLevel *cobra.Command, e *env) {
	no := &options.NameOptions{}
	throttle := store.DefaultThrottle

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "List entries and refresh whenever the directory changes.",
		Example: `
write watch
write watch --throttle 1s
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := e.journalDir(cmd)
			if err != nil {
				return err
			}
			ctx, stop := signal.NotifyContext(contextOf(cmd), os.Interrupt, syscall.SIGTERM)
			defer stop()

			w := watch.Watch{
				Journal:   s.Journal,
				Directory: s.Directory,
				ShowName:  no.ShowName,
				Throttle:  throttle,
				Out:       cmd.OutOrStdout(),
				Log:       s.Log,
			}
			return w.Do(ctx)
		},
	}

	options.AddShowNameArgs(cmd, no)
	cmd.Flags().DurationVar(&throttle, "throttle", store.DefaultThrottle, "Coalesce bursts of changes within this window.")

	topLevel.AddCommand(cmd)
}

package commands

import (
	"time"

	"github.com/spf13/cobra"

	"tableflip.dev/write/pkg/commands/options"
	"tableflip.dev/write/pkg/entry"
	"tableflip.dev/write/pkg/runner/list"
	"tableflip.dev/write/pkg/timeutil"
)

func addList(topLevel *cobra.Command, e *env) {
	oo := &options.OutputOptions{}
	no := &options.NameOptions{}
	orphans := false
	since := ""

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List entries grouped by day, newest first.",
		Example: `
write list
write list --show-name
write list --json --orphans
write list --since 1w
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := e.journalDir(cmd)
			if err != nil {
				return oo.HandleError(err)
			}
			var cutoff time.Time
			if since != "" {
				window, err := timeutil.ParseWindow(since)
				if err != nil {
					return oo.HandleError(&entry.ValidationError{Field: "since", Reason: err.Error()})
				}
				cutoff = timeutil.Cutoff(time.Now(), window, s.Journal.Location)
			}
			l := list.List{
				Journal:   s.Journal,
				Directory: s.Directory,
				ShowName:  no.ShowName,
				Orphans:   orphans,
				Since:     cutoff,
				JSON:      oo.JSON,
				Out:       cmd.OutOrStdout(),
				Log:       s.Log,
			}
			return oo.HandleError(l.Do(contextOf(cmd)))
		},
	}

	options.AddOutputArg(cmd, oo)
	options.AddShowNameArgs(cmd, no)
	cmd.Flags().StringVar(&since, "since", "", "Only list entries from the last window of days, e.g. 1d, 1w, 2w3d.")
	cmd.Flags().BoolVar(&orphans, "orphans", false, "Also list replies whose parent entry is missing.")

	topLevel.AddCommand(cmd)
}

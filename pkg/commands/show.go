package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/write/pkg/commands/options"
	"tableflip.dev/write/pkg/runner/show"
)

func addShow(topLevel *cobra.Command, e *env) {
	oo := &options.OutputOptions{}
	io := &options.InteractiveOptions{}

	cmd := &cobra.Command{
		Use:   "show [entry]",
		Short: "Show an entry with its replies.",
		Example: `
write show 240102-100000.txt
`,
		Args: io.NameArg(cobra.MaximumNArgs(1)),
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			if len(args) > 0 || io.Interactive {
				return nil, cobra.ShellCompDirectiveNoFileComp
			}
			return e.entryCompletions(cmd, toComplete), cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := e.journalDir(cmd)
			if err != nil {
				return oo.HandleError(err)
			}
			name, _, ok, err := entryArg(cmd, s, io, "Show", args)
			if err != nil || !ok {
				return oo.HandleError(err)
			}
			sh := show.Show{
				Journal:   s.Journal,
				Directory: s.Directory,
				Name:      name,
				JSON:      oo.JSON,
				Out:       cmd.OutOrStdout(),
				Log:       s.Log,
			}
			return oo.HandleError(sh.Do(contextOf(cmd)))
		},
	}

	options.AddOutputArg(cmd, oo)
	options.InteractiveArgs(cmd, io)

	topLevel.AddCommand(cmd)
}

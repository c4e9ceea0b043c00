package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/write/pkg/runner/use"
)

func addUse(topLevel *cobra.Command, e *env) {
	cmd := &cobra.Command{
		Use:   "use [dir]",
		Short: "Choose the journal directory used by later commands.",
		Example: `
write use ~/journal
write use
`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := e.load(cmd)
			if err != nil {
				return err
			}
			u := use.Use{
				Config: s.Config,
				Picker: use.PromptPicker{In: cmd.InOrStdin(), Out: cmd.OutOrStdout()},
				Out:    cmd.OutOrStdout(),
				Log:    s.Log,
			}
			if len(args) == 1 {
				u.Directory = args[0]
			}
			return u.Do(contextOf(cmd))
		},
	}

	topLevel.AddCommand(cmd)
}

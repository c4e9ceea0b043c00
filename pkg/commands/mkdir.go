package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/write/pkg/runner/mkdir"
)

func addMkdir(topLevel *cobra.Command, e *env) {
	useIt := false

	cmd := &cobra.Command{
		Use:   "mkdir <base> <name>",
		Short: "Create a new journal directory.",
		Example: `
write mkdir ~/journals travel --use
`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := e.load(cmd)
			if err != nil {
				return err
			}
			m := mkdir.Mkdir{
				Base:   args[0],
				Name:   args[1],
				Use:    useIt,
				Config: s.Config,
				Out:    cmd.OutOrStdout(),
				Log:    s.Log,
			}
			return m.Do(contextOf(cmd))
		},
	}

	cmd.Flags().BoolVar(&useIt, "use", false, "Make the new directory the default.")

	topLevel.AddCommand(cmd)
}

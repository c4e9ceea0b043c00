package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/write/pkg/commands/options"
	"tableflip.dev/write/pkg/runner/add"
)

func addNew(topLevel *cobra.Command, e *env) {
	oo := &options.OutputOptions{}
	co := &options.ContentOptions{}

	cmd := &cobra.Command{
		Use:     "new [text...]",
		Aliases: []string{"add"},
		Short:   "Write a new entry.",
		Example: `
write new went for a walk by the river
echo "long form thoughts" | write new
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := e.journalDir(cmd)
			if err != nil {
				return oo.HandleError(err)
			}
			content, err := co.Content(cmd.InOrStdin(), args)
			if err != nil {
				return oo.HandleError(err)
			}
			a := add.Add{
				Journal:   s.Journal,
				Directory: s.Directory,
				Content:   content,
				JSON:      oo.JSON,
				Out:       cmd.OutOrStdout(),
				Log:       s.Log,
			}
			return oo.HandleError(a.Do(contextOf(cmd)))
		},
	}

	options.AddOutputArg(cmd, oo)
	options.AddContentArgs(cmd, co)

	topLevel.AddCommand(cmd)
}

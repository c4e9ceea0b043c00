package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/write/pkg/commands/options"
	"tableflip.dev/write/pkg/runner/edit"
)

func addEdit(topLevel *cobra.Command, e *env) {
	oo := &options.OutputOptions{}
	io := &options.InteractiveOptions{}
	co := &options.ContentOptions{}

	cmd := &cobra.Command{
		Use:   "edit <entry> [text...]",
		Short: "Replace the text of an entry or reply. The file name is kept.",
		Example: `
write edit 240102-100000.txt went for a long walk by the river
`,
		Args: io.NameArg(nil),
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
			name, rest, ok, err := entryArg(cmd, s, io, "Edit", args)
			if err != nil || !ok {
				return oo.HandleError(err)
			}
			content, err := co.Content(cmd.InOrStdin(), rest)
			if err != nil {
				return oo.HandleError(err)
			}
			ed := edit.Edit{
				Journal:   s.Journal,
				Directory: s.Directory,
				Name:      name,
				Content:   content,
				JSON:      oo.JSON,
				Out:       cmd.OutOrStdout(),
				Log:       s.Log,
			}
			return oo.HandleError(ed.Do(contextOf(cmd)))
		},
	}

	options.AddOutputArg(cmd, oo)
	options.InteractiveArgs(cmd, io)
	options.AddContentArgs(cmd, co)

	topLevel.AddCommand(cmd)
}

package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/write/pkg/commands/options"
	"tableflip.dev/write/pkg/runner/reply"
)

func addReply(topLevel *cobra.Command, e *env) {
	oo := &options.OutputOptions{}
	io := &options.InteractiveOptions{}
	co := &options.ContentOptions{}

	cmd := &cobra.Command{
		Use:   "reply <entry> [text...]",
		Short: "Reply to an entry.",
		Long: options.Wrap80(`Reply to an entry. The reply is stored next to the entry as
<entry>--reply-<timestamp>.txt. Replying to a reply attaches to the same root entry.`),
		Example: `
write reply 240102-100000.txt still thinking about this
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
			name, rest, ok, err := entryArg(cmd, s, io, "Reply to", args)
			if err != nil || !ok {
				return oo.HandleError(err)
			}
			content, err := co.Content(cmd.InOrStdin(), rest)
			if err != nil {
				return oo.HandleError(err)
			}
			r := reply.Reply{
				Journal:   s.Journal,
				Directory: s.Directory,
				Parent:    name,
				Content:   content,
				JSON:      oo.JSON,
				Out:       cmd.OutOrStdout(),
				Log:       s.Log,
			}
			return oo.HandleError(r.Do(contextOf(cmd)))
		},
	}

	options.AddOutputArg(cmd, oo)
	options.InteractiveArgs(cmd, io)
	options.AddContentArgs(cmd, co)

	topLevel.AddCommand(cmd)
}

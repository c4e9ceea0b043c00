package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"tableflip.dev/write/pkg/commands/options"
	"tableflip.dev/write/pkg/prompt"
)

// entryArg splits args into the entry name and the remaining text. With -i
// the name comes from a picker and every arg is text. ok is false when the
// user cancelled the picker.
func entryArg(cmd *cobra.Command, s *session, io *options.InteractiveOptions, label string, args []string) (name string, rest []string, ok bool, err error) {
	if !io.Interactive {
		return args[0], args[1:], true, nil
	}
	view, err := s.Journal.Load(contextOf(cmd), s.Directory)
	if err != nil {
		return "", nil, false, err
	}
	picker := prompt.EntryPicker{In: cmd.InOrStdin(), Out: cmd.OutOrStdout()}
	name, ok, err = picker.SelectEntry(label, prompt.Choices(view.Groups, s.Journal.Location))
	if err != nil || !ok {
		if err == nil {
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "No entry selected.")
		}
		return "", nil, false, err
	}
	return name, args, true, nil
}

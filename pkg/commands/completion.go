package commands

import (
	"strings"

	"github.com/spf13/cobra"
)

func addCompletions(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "completion",
		Short: "Generates bash completion scripts",
		Long: `To load completion run

. <(write completion)

To configure your bash shell to load completions for each session add to your bashrc

# ~/.bashrc or ~/.profile
. <(write completion)
`,
		Run: func(cmd *cobra.Command, args []string) {
			_ = topLevel.GenBashCompletion(cmd.OutOrStdout())
		},
	}

	topLevel.AddCommand(cmd)
}

// entryCompletions lists file names in the journal directory, newest first.
func (e *env) entryCompletions(cmd *cobra.Command, toComplete string) []string {
	s, err := e.journalDir(cmd)
	if err != nil {
		return nil
	}
	view, err := s.Journal.Load(contextOf(cmd), s.Directory)
	if err != nil {
		return nil
	}
	var names []string
	for _, g := range view.Groups {
		for _, en := range g.Entries {
			if strings.HasPrefix(en.Name, toComplete) {
				names = append(names, en.Name)
			}
			for _, r := range en.Replies {
				if strings.HasPrefix(r.Name, toComplete) {
					names = append(names, r.Name)
				}
			}
		}
	}
	return names
}

package options

import (
	"github.com/spf13/cobra"
)

// InteractiveOptions
type InteractiveOptions struct {
	Interactive bool
}

func InteractiveArgs(cmd *cobra.Command, o *InteractiveOptions) {
	cmd.Flags().BoolVarP(&o.Interactive, "interactive", "i", false,
		`Pick the entry from a list instead of naming it.`)
}

// NameArg returns a cobra.PositionalArgs that wants the entry name first
// unless the entry is picked interactively.
func (o *InteractiveOptions) NameArg(extra cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if o.Interactive {
			return nil
		}
		if err := cobra.MinimumNArgs(1)(cmd, args); err != nil {
			return err
		}
		if extra != nil {
			return extra(cmd, args)
		}
		return nil
	}
}

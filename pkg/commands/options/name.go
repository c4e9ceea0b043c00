package options

import (
	"github.com/spf13/cobra"
)

// NameOptions
type NameOptions struct {
	ShowName bool
}

func AddShowNameArgs(cmd *cobra.Command, o *NameOptions) {
	cmd.Flags().BoolVarP(&o.ShowName, "show-name", "k", false,
		"Show the file name of each entry.")
}

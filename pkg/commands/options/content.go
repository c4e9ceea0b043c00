package options

import (
	"io"
	"strings"

	"github.com/spf13/cobra"
)

// ContentOptions collects the body of an entry from the remaining args, or
// from stdin when there are none or --stdin is set.
type ContentOptions struct {
	Stdin bool
}

func AddContentArgs(cmd *cobra.Command, o *ContentOptions) {
	cmd.Flags().BoolVar(&o.Stdin, "stdin", false,
		"Read the body from stdin instead of the arguments.")
}

func (o *ContentOptions) Content(in io.Reader, args []string) (string, error) {
	if !o.Stdin && len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	b, err := io.ReadAll(in)
	if err != nil {
		return "", err
	}
	return strings.TrimRight(string(b), "\n"), nil
}

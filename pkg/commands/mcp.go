package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/write/pkg/runner/mcp"
)

func addMCP(topLevel *cobra.Command, e *env) {
	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "start the Model Context Protocol server",
		Long: `Launch an MCP server on stdio that lists, reads, writes and replies to
entries in the journal directory.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := e.journalDir(cmd)
			if err != nil {
				return err
			}
			runner := mcp.Runner{
				Journal:   s.Journal,
				Directory: s.Directory,
				Name:      "write",
				Version:   version,
				Log:       s.Log,
			}
			return runner.Do(contextOf(cmd))
		},
	}

	topLevel.AddCommand(cmd)
}

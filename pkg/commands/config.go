package commands

import (
	"encoding/json"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/write/pkg/commands/options"
	"tableflip.dev/write/pkg/entry"
	"tableflip.dev/write/pkg/runner/prefs"
)

func addConfig(topLevel *cobra.Command, e *env) {
	oo := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:   "config [key=value...]",
		Short: "Show or update stored preferences.",
		Long: options.Wrap80(`Show where preferences are stored and their values. Each key=value
argument is merged into the stored document. Values are parsed as JSON when
they can be, so numbers, booleans and null keep their type.`),
		Example: `
write config
write config defaultPath=~/journal
write config --json
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			updates, err := parseUpdates(args)
			if err != nil {
				return oo.HandleError(err)
			}
			s, err := e.load(cmd)
			if err != nil {
				return oo.HandleError(err)
			}
			p := prefs.Prefs{
				Settings: s.Settings,
				Store:    s.Config,
				Updates:  updates,
				JSON:     oo.JSON,
				Out:      cmd.OutOrStdout(),
				Log:      s.Log,
			}
			return oo.HandleError(p.Do(contextOf(cmd)))
		},
	}

	options.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}

func parseUpdates(args []string) (map[string]any, error) {
	if len(args) == 0 {
		return nil, nil
	}
	updates := make(map[string]any, len(args))
	for _, arg := range args {
		key, raw, ok := strings.Cut(arg, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return nil, &entry.ValidationError{Field: "config", Reason: "want key=value, got " + arg}
		}
		var v any
		if err := json.Unmarshal([]byte(raw), &v); err != nil {
			v = raw
		}
		updates[key] = v
	}
	return updates, nil
}

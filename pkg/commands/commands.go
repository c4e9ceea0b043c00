package commands

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"tableflip.dev/write/pkg/commands/options"
	"tableflip.dev/write/pkg/config"
)

func New() *cobra.Command {
	v := config.NewViper()

	cmd := &cobra.Command{
		Use:   "write",
		Short: options.Wrap80("Plain text journaling on the command line. Entries are files named after the moment they were written, replies are files named after their parent."),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	addPersistentFlags(cmd, v)
	addCommands(cmd, &env{v: v})
	return cmd
}

func addPersistentFlags(cmd *cobra.Command, v *viper.Viper) {
	flags := cmd.PersistentFlags()
	flags.String("dir", "", "Journal directory, overrides the saved default. Env: WRITE_DIRECTORY.")
	flags.String("config-dir", "", "Directory holding config.json. Env: WRITE_CONFIG_DIR.")
	flags.BoolP("verbose", "v", false, "Log debug output to stderr.")
	flags.Bool("log-json", false, "Log as JSON lines.")

	_ = v.BindPFlag(config.KeyDirectory, flags.Lookup("dir"))
	_ = v.BindPFlag(config.KeyConfigDir, flags.Lookup("config-dir"))
	_ = v.BindPFlag(config.KeyVerbose, flags.Lookup("verbose"))
	_ = v.BindPFlag(config.KeyLogJSON, flags.Lookup("log-json"))
}

func addCommands(topLevel *cobra.Command, e *env) {
	addList(topLevel, e)
	addNew(topLevel, e)
	addReply(topLevel, e)
	addShow(topLevel, e)
	addEdit(topLevel, e)
	addUse(topLevel, e)
	addMkdir(topLevel, e)
	addConfig(topLevel, e)
	addWatch(topLevel, e)
	addMCP(topLevel, e)
	addCompletions(topLevel)
	addUpgrade(topLevel)
	addVersion(topLevel)
}

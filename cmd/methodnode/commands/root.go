package commands

import (
	"os"

	"github.com/DOIDFoundation/methodmodel/flags"
	"github.com/cometbft/cometbft/libs/cli"
	cmtflags "github.com/cometbft/cometbft/libs/cli/flags"
	"github.com/cometbft/cometbft/libs/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	logger  = log.NewTMLogger(log.NewSyncWriter(os.Stdout))
	verbose bool
)

// RootCmd is the root command for methodnode. It is called once in the main
// function.
var RootCmd = &cobra.Command{
	Use:   "methodnode",
	Short: "JSON-RPC method catalog",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) (err error) {
		viper.AddConfigPath(".")
		if err := viper.BindPFlags(cmd.Flags()); err != nil {
			return err
		}
		if viper.GetBool(flags.Trace) {
			logger = log.NewTracingLogger(logger)
		}

		logger, err = cmtflags.ParseLogLevel(viper.GetString(flags.Log_Level), logger.With("module", "main"), cmd.Flag(flags.Log_Level).DefValue)
		return err
	},
}

func init() {
	RootCmd.PersistentFlags().String(flags.Log_Level, "info", "level of logging, can be debug, info, error, none or comma-separated list of module:level pairs with an optional *:level pair (* means all other modules). e.g. 'rpc:debug,*:error'")
	RootCmd.AddCommand(
		StartCmd,
		MethodsCmd,
		DescribeCmd,
		VersionCmd,
		cli.NewCompletionCmd(RootCmd, true),
	)
}

package main

import (
	"os"
	"path/filepath"

	"github.com/DOIDFoundation/methodmodel/cmd/methodnode/commands"
	"github.com/cometbft/cometbft/libs/cli"
)

// newExecutor prepares the root command. cli.PrepareBaseCmd adds the
// persistent --home and --trace flags and binds METHOD_* environment
// variables into viper.
func newExecutor() cli.Executor {
	home := os.ExpandEnv(filepath.Join("$HOME", ".methodnode"))
	return cli.PrepareBaseCmd(commands.RootCmd, "METHOD", home)
}

func main() {
	if err := newExecutor().Execute(); err != nil {
		os.Exit(1)
	}
}

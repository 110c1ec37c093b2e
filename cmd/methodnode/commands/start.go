package commands

import (
	"fmt"

	"github.com/DOIDFoundation/methodmodel/catalog"
	"github.com/DOIDFoundation/methodmodel/flags"
	"github.com/DOIDFoundation/methodmodel/node"
	"github.com/DOIDFoundation/methodmodel/rpc"
	cmtos "github.com/cometbft/cometbft/libs/os"
	"github.com/spf13/cobra"
)

func addRPCFlags(cmd *cobra.Command) {
	cmd.Flags().String(flags.RPC_Addr, rpc.DefaultConfig.ListenAddress, "TCP address the JSON-RPC server listens on")
	cmd.Flags().String(flags.RPC_Namespace, rpc.DefaultConfig.Namespace, "namespace the method catalog is served under")
}

// StartCmd serves the method catalog until SIGTERM or CTRL-C.
var StartCmd = &cobra.Command{
	Use:     "start",
	Aliases: []string{"serve"},
	Short:   "Serve the method catalog over JSON-RPC",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		n, err := node.NewNode(logger)
		if err != nil {
			return fmt.Errorf("failed to create node: %w", err)
		}
		if err := n.Start(); err != nil {
			return fmt.Errorf("failed to serve %s namespace: %w", n.Namespace(), err)
		}
		logger.Info("serving", "addr", n.RPC().Addr(), "namespace", n.Namespace(), "methods", len(catalog.Names()))

		done := make(chan struct{})
		cmtos.TrapSignal(logger, func() {
			if err := n.Stop(); err != nil {
				logger.Error("unable to stop the node", "error", err)
			}
			close(done)
		})
		<-done
		return nil
	},
}

func init() {
	addRPCFlags(StartCmd)
}

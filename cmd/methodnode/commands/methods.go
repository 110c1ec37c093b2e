package commands

import (
	"encoding/json"
	"fmt"

	"github.com/DOIDFoundation/methodmodel/catalog"
	"github.com/spf13/cobra"
)

// MethodsCmd lists the known JSON-RPC methods.
var MethodsCmd = &cobra.Command{
	Use:   "methods",
	Short: "List known JSON-RPC methods",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		for _, m := range catalog.All() {
			fmt.Fprintf(cmd.OutOrStdout(), "%s\t%d\n", m.Method(), m.ParametersAmount)
		}
	},
}

// DescribeCmd prints the classification of a method as JSON.
var DescribeCmd = &cobra.Command{
	Use:   "describe <method>",
	Short: "Show how a JSON-RPC method is classified",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := catalog.Find(args[0])
		if err != nil {
			return err
		}
		out, err := json.MarshalIndent(catalog.Classify(m), "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode %s: %w", args[0], err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(out))
		return nil
	},
}

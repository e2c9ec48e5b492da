// Command uuidtool generates, inspects, converts and compares UUIDs from the
// command line.
package main

import (
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          "uuidtool",
		Short:        "Generate, inspect, convert and compare UUIDs",
		SilenceUsage: true,
	}
	root.AddCommand(
		newNewCommand(),
		newInspectCommand(),
		newConvertCommand(),
		newCompareCommand(),
	)
	return root
}

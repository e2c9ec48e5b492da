package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/uuidkit/uuid"
)

func newCompareCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "compare <a> <b>",
		Short: "Order two identifiers",
		Long: `Order two identifiers and print less, equal or greater.

The operands may use different representations: any accepted text form, an
unsigned decimal integer, or plain text, which sorts lexically against the
canonical strings.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := uuid.Compare(args[0], args[1])
			if err != nil {
				return err
			}
			switch {
			case c < 0:
				fmt.Fprintln(cmd.OutOrStdout(), "less")
			case c > 0:
				fmt.Fprintln(cmd.OutOrStdout(), "greater")
			default:
				fmt.Fprintln(cmd.OutOrStdout(), "equal")
			}
			return nil
		},
	}
}

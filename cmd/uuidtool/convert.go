package main

import (
	"encoding/hex"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/uuidkit/uuid"
)

func newConvertCommand() *cobra.Command {
	var (
		to   string
		from string
	)
	cmd := &cobra.Command{
		Use:   "convert <value>",
		Short: "Re-encode a UUID between representations",
		Long: `Re-encode a UUID into another representation.

--to selects the output form. The guid form prints the 16 bytes in the
Microsoft mixed-endian order as hex digits; --from guid reads such a dump
back. All other inputs are recognized automatically.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseConvertInput(args[0], from)
			if err != nil {
				return err
			}
			out, err := render(id, to)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}
	cmd.Flags().StringVar(&to, "to", "std", "output form: std, hex, urn, int, base64 or guid")
	cmd.Flags().StringVar(&from, "from", "auto", "input form: auto or guid")
	return cmd
}

func parseConvertInput(s, from string) (uuid.UUID, error) {
	switch from {
	case "", "auto":
		return parseValue(s)
	case "guid":
		raw, err := hex.DecodeString(s)
		if err != nil {
			return uuid.Nil, fmt.Errorf("guid input wants 32 hex digits: %w", err)
		}
		g, err := uuid.FromGUIDBytes(raw)
		if err != nil {
			return uuid.Nil, err
		}
		return g.UUID(), nil
	default:
		return uuid.Nil, fmt.Errorf("unknown input form %q", from)
	}
}

func render(id uuid.UUID, to string) (string, error) {
	switch to {
	case "", "std":
		return id.String(), nil
	case "hex":
		return id.EncodeToHex(), nil
	case "urn":
		return id.URN(), nil
	case "int", "decimal":
		return id.DecimalString(), nil
	case "base64":
		return id.EncodeToBase64(), nil
	case "guid":
		return hex.EncodeToString(id.GUIDBytes()), nil
	default:
		return "", fmt.Errorf("unknown output form %q", to)
	}
}

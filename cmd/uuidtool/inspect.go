package main

import (
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/uuidkit/uuid"
)

func newInspectCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <uuid>",
		Short: "Decode a UUID's variant, version and fields",
		Long: `Decode a UUID and print every field its version defines.

The input may be any accepted text form: dashed, 32 hex digits, braced,
a URN, or an unsigned decimal integer.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseValue(args[0])
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), describe(id))
			return nil
		},
	}
}

// parseValue accepts every textual representation the library reads,
// including the decimal one.
func parseValue(s string) (uuid.UUID, error) {
	if id, err := uuid.Parse(s); err == nil {
		return id, nil
	}
	id, err := uuid.DecodeFromDecimal(s)
	if err != nil {
		return uuid.Nil, fmt.Errorf("not a UUID in any accepted form: %q", s)
	}
	return id, nil
}

// describe renders a field-by-field report. Field lines appear only when the
// version actually defines them.
func describe(id uuid.UUID) string {
	var b strings.Builder
	fmt.Fprintf(&b, "uuid:       %s\n", id)
	fmt.Fprintf(&b, "urn:        %s\n", id.URN())
	fmt.Fprintf(&b, "hex:        %s\n", id.EncodeToHex())
	fmt.Fprintf(&b, "decimal:    %s\n", id.DecimalString())
	fmt.Fprintf(&b, "guid bytes: %s\n", hex.EncodeToString(id.GUIDBytes()))
	fmt.Fprintf(&b, "variant:    %s\n", id.Variant())

	switch {
	case id.IsNil():
		b.WriteString("version:    none (nil sentinel)\n")
		return b.String()
	case id.IsMax():
		b.WriteString("version:    none (max sentinel)\n")
		return b.String()
	case id.Variant() != uuid.VariantRFC4122:
		// The version nibble only means something under the RFC variant.
		return b.String()
	}
	fmt.Fprintf(&b, "version:    %d\n", id.Version())

	if ts, err := id.Time(); err == nil {
		fmt.Fprintf(&b, "time:       %s\n", ts.Format(time.RFC3339Nano))
	}
	if ticks, err := id.GregorianTicks(); err == nil {
		fmt.Fprintf(&b, "ticks:      %d\n", ticks)
	}
	if ms, err := id.UnixMilli(); err == nil {
		fmt.Fprintf(&b, "unix ms:    %d\n", ms)
	}
	if seq, err := id.ClockSequence(); err == nil {
		fmt.Fprintf(&b, "clock seq:  %d\n", seq)
	}
	if node, err := id.Node(); err == nil {
		fmt.Fprintf(&b, "node:       %s\n", hex.EncodeToString(node))
	}
	if d, err := id.Domain(); err == nil {
		fmt.Fprintf(&b, "domain:     %s\n", d)
	}
	if localID, err := id.LocalID(); err == nil {
		fmt.Fprintf(&b, "local id:   %d\n", localID)
	}
	if a, bf, c, err := id.CustomFields(); err == nil {
		fmt.Fprintf(&b, "custom:     a=%s b=%s c=%s\n", a, bf, c)
	}
	return b.String()
}

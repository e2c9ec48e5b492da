package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/uuidkit/uuid"
)

func newNewCommand() *cobra.Command {
	var (
		version   int
		count     int
		namespace string
		name      string
		domain    string
	)
	cmd := &cobra.Command{
		Use:   "new",
		Short: "Generate new UUIDs",
		Long: `Generate new UUIDs, one per line.

Versions 1, 4, 6 and 7 draw from the default generator. Versions 3 and 5
hash --name within --namespace (dns, url, oid, x500 or any UUID). Version 2
embeds the POSIX uid or gid selected by --domain.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for i := 0; i < count; i++ {
				id, err := generate(version, namespace, name, domain)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), id)
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&version, "version", "v", 7, "UUID version to generate")
	cmd.Flags().IntVarP(&count, "count", "n", 1, "how many to generate")
	cmd.Flags().StringVar(&namespace, "namespace", "dns", "name space for versions 3 and 5")
	cmd.Flags().StringVar(&name, "name", "", "name to hash for versions 3 and 5")
	cmd.Flags().StringVar(&domain, "domain", "person", "DCE domain for version 2: person, group or org")
	return cmd
}

func generate(version int, namespace, name, domain string) (uuid.UUID, error) {
	switch version {
	case 1:
		return uuid.NewV1()
	case 2:
		d, err := parseDomain(domain)
		if err != nil {
			return uuid.Nil, err
		}
		return uuid.NewV2(d)
	case 3, 5:
		space, err := parseNamespace(namespace)
		if err != nil {
			return uuid.Nil, err
		}
		if name == "" {
			return uuid.Nil, fmt.Errorf("version %d hashes a name; pass --name", version)
		}
		if version == 3 {
			return uuid.NewV3(space, []byte(name)), nil
		}
		return uuid.NewV5(space, []byte(name)), nil
	case 4:
		return uuid.NewV4()
	case 6:
		return uuid.NewV6()
	case 7:
		return uuid.NewV7()
	case 8:
		return uuid.Nil, fmt.Errorf("version 8 fields are application-defined; mint them in code with NewV8")
	default:
		return uuid.Nil, fmt.Errorf("unsupported version %d", version)
	}
}

func parseNamespace(s string) (uuid.UUID, error) {
	switch strings.ToLower(s) {
	case "dns":
		return uuid.NamespaceDNS, nil
	case "url":
		return uuid.NamespaceURL, nil
	case "oid":
		return uuid.NamespaceOID, nil
	case "x500":
		return uuid.NamespaceX500, nil
	}
	space, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, fmt.Errorf("namespace must be dns, url, oid, x500 or a UUID: %w", err)
	}
	return space, nil
}

func parseDomain(s string) (uuid.Domain, error) {
	switch strings.ToLower(s) {
	case "person":
		return uuid.DomainPerson, nil
	case "group":
		return uuid.DomainGroup, nil
	case "org":
		return uuid.DomainOrg, nil
	}
	return 0, fmt.Errorf("unknown domain %q: want person, group or org", s)
}

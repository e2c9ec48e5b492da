package uuid

import (
	"encoding/binary"
	"fmt"
	"os"
)

// LocalIDProvider resolves the DCE Security local identifier embedded in a
// version 2 UUID for a given domain.
type LocalIDProvider interface {
	LocalID(Domain) (uint32, error)
}

// POSIXLocalIDs resolves DomainPerson and DomainGroup from the calling
// process. DomainOrg has no POSIX equivalent and must be set explicitly.
type POSIXLocalIDs struct {
	Org    uint32
	HasOrg bool
}

// LocalID implements LocalIDProvider.
func (p POSIXLocalIDs) LocalID(d Domain) (uint32, error) {
	switch d {
	case DomainPerson:
		return uint32(os.Getuid()), nil
	case DomainGroup:
		return uint32(os.Getgid()), nil
	case DomainOrg:
		if !p.HasOrg {
			return 0, fmt.Errorf("uuid: no org identifier configured for %s", d)
		}
		return p.Org, nil
	default:
		return 0, fmt.Errorf("uuid: no local identifier for %s", d)
	}
}

// NewV2 generates a Version 2 (DCE Security) UUID for the given domain using
// the default generator.
func NewV2(d Domain) (UUID, error) {
	return defaultGenerator.NewV2(d)
}

// NewV2 generates a Version 2 UUID: a Version 1 layout with the low 32
// timestamp bits replaced by the domain's local identifier and the low clock
// sequence byte by the domain itself. The remaining timestamp is accurate to
// roughly 7 minutes.
func (g *Generator) NewV2(d Domain) (UUID, error) {
	local, err := g.localIDs.LocalID(d)
	if err != nil {
		return Nil, err
	}
	uuid, err := g.NewV1()
	if err != nil {
		return Nil, err
	}
	binary.BigEndian.PutUint32(uuid[0:4], local)
	uuid[9] = byte(d)
	uuid[6] = (uuid[6] & 0x0f) | 0x20 // version 2
	return uuid, nil
}

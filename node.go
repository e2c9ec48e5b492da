package uuid

import (
	"io"
	"net"
)

// NodeProvider supplies the 48-bit node identity embedded in time-based
// UUIDs (versions 1, 2 and 6).
type NodeProvider interface {
	NodeID() ([6]byte, error)
}

// NodeProviderFunc adapts a function to a NodeProvider.
type NodeProviderFunc func() ([6]byte, error)

// NodeID calls f.
func (f NodeProviderFunc) NodeID() ([6]byte, error) {
	return f()
}

// HardwareNode derives the node identity from the hardware address of the
// first running, non-loopback network interface that has one.
func HardwareNode() NodeProvider {
	return NodeProviderFunc(func() ([6]byte, error) {
		var node [6]byte
		ifaces, err := net.Interfaces()
		if err != nil {
			return node, err
		}
		for _, iface := range ifaces {
			if iface.Flags&net.FlagUp == 0 || iface.Flags&net.FlagLoopback != 0 {
				continue
			}
			if len(iface.HardwareAddr) >= 6 {
				copy(node[:], iface.HardwareAddr)
				return node, nil
			}
		}
		return node, ErrNoHardwareAddress
	})
}

// StaticNode always returns the given identity. Useful for pinning a node
// identity assigned externally, for example by a coordination service.
func StaticNode(id [6]byte) NodeProvider {
	return NodeProviderFunc(func() ([6]byte, error) {
		return id, nil
	})
}

// RandomNode draws a fresh identity from r with the multicast bit set, the
// RFC 4122 convention marking node identities that are not MAC addresses.
func RandomNode(r io.Reader) NodeProvider {
	return NodeProviderFunc(func() ([6]byte, error) {
		return randomNodeID(r)
	})
}

func randomNodeID(r io.Reader) ([6]byte, error) {
	var node [6]byte
	if _, err := io.ReadFull(r, node[:]); err != nil {
		return node, err
	}
	node[0] |= 0x01
	return node, nil
}

package uuid

// GUID is a UUID carried in the Microsoft mixed-endian byte order: the three
// leading fields (4, 2 and 2 bytes) are byte-reversed little-endian while the
// trailing 8 bytes stay in network order. The textual form of a GUID is
// identical to the UUID's; only the binary layout differs.
type GUID [16]byte

// guidByteOrder maps canonical byte positions to their mixed-endian slots.
// The permutation is its own inverse, so one table serves both directions.
var guidByteOrder = [16]int{3, 2, 1, 0, 5, 4, 7, 6, 8, 9, 10, 11, 12, 13, 14, 15}

// swapGUID transposes the first three fields between the canonical and the
// mixed-endian layouts. Applying it twice returns the input.
func swapGUID(b [16]byte) [16]byte {
	var out [16]byte
	for dst, src := range guidByteOrder {
		out[dst] = b[src]
	}
	return out
}

// GUID re-encodes the UUID into the Microsoft mixed-endian layout. The result
// is a different bit pattern, not an alternative view: re-encoding an
// RFC-valid value deliberately moves its version and variant-adjacent bytes.
func (u UUID) GUID() GUID {
	return GUID(swapGUID(u))
}

// GUIDBytes returns the UUID's 16 bytes in the Microsoft mixed-endian layout.
func (u UUID) GUIDBytes() []byte {
	g := u.GUID()
	return g[:]
}

// UUID re-encodes the GUID back into the canonical network byte order.
func (g GUID) UUID() UUID {
	return UUID(swapGUID(g))
}

// Bytes returns the GUID's 16 bytes in the mixed-endian layout.
func (g GUID) Bytes() []byte {
	return g[:]
}

// String returns the canonical string form of the identifier. GUIDs and UUIDs
// share the same text; the byte-order difference is invisible here.
func (g GUID) String() string {
	return g.UUID().String()
}

// FromGUIDBytes creates a GUID from a 16-byte slice already in the
// mixed-endian layout. Use g.UUID() to obtain the canonical value.
func FromGUIDBytes(b []byte) (GUID, error) {
	var g GUID
	if len(b) != 16 {
		return g, ErrInvalidLength
	}
	copy(g[:], b)
	return g, nil
}

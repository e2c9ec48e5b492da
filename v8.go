package uuid

import "encoding/binary"

// NewV8 assembles a Version 8 (custom) UUID from three caller-supplied
// fields, 48, 12 and 62 bits wide. Excess high bits are masked off. The
// library stores the fields verbatim and assigns them no meaning.
func NewV8(a uint64, b uint16, c uint64) UUID {
	var uuid UUID
	binary.BigEndian.PutUint64(uuid[0:8], (a&0xffffffffffff)<<16)
	uuid[6] = 0x80 | byte(b>>8)&0x0f // version 8 + custom_b high
	uuid[7] = byte(b)
	binary.BigEndian.PutUint64(uuid[8:16], c&0x3fffffffffffffff)
	uuid[8] = (uuid[8] & 0x3f) | 0x80 // variant RFC 4122
	return uuid
}

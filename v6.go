package uuid

import (
	"encoding/binary"
	"time"
)

// NewV6 generates a Version 6 (ordered Gregorian time-based) UUID using the
// default generator.
func NewV6() (UUID, error) {
	return defaultGenerator.NewV6()
}

// NewV6 generates a Version 6 UUID at the generator's current clock reading.
func (g *Generator) NewV6() (UUID, error) {
	return g.NewV6At(g.clock.Now())
}

// NewV6At generates a Version 6 UUID for the given instant. Version 6 holds
// the same fields as Version 1 with the timestamp stored high bits first, so
// byte order equals time order.
func (g *Generator) NewV6At(t time.Time) (UUID, error) {
	ticks, seq, node, err := g.timeState(gregorianTicks(t))
	if err != nil {
		return Nil, err
	}

	var uuid UUID
	binary.BigEndian.PutUint32(uuid[0:4], uint32(ticks>>28))
	binary.BigEndian.PutUint16(uuid[4:6], uint16(ticks>>12))
	binary.BigEndian.PutUint16(uuid[6:8], uint16(ticks)&0x0fff)
	uuid[6] = (uuid[6] & 0x0f) | 0x60 // version 6

	uuid[8] = byte(seq>>8)&0x3f | 0x80 // variant + clock_seq_hi
	uuid[9] = byte(seq)
	copy(uuid[10:], node[:])
	return uuid, nil
}

package uuid

import (
	"encoding/binary"
	"time"
)

// NewV1 generates a Version 1 (Gregorian time-based) UUID using the default
// generator.
func NewV1() (UUID, error) {
	return defaultGenerator.NewV1()
}

// NewV1 generates a Version 1 UUID at the generator's current clock reading.
func (g *Generator) NewV1() (UUID, error) {
	return g.NewV1At(g.clock.Now())
}

// NewV1At generates a Version 1 UUID for the given instant. The instant is
// truncated to the 100ns grid; issuing for a past instant bumps the clock
// sequence like any other clock regression.
func (g *Generator) NewV1At(t time.Time) (UUID, error) {
	ticks, seq, node, err := g.timeState(gregorianTicks(t))
	if err != nil {
		return Nil, err
	}

	var uuid UUID
	// time_low, time_mid, time_hi walk the timestamp from its low bits up.
	binary.BigEndian.PutUint32(uuid[0:4], uint32(ticks))
	binary.BigEndian.PutUint16(uuid[4:6], uint16(ticks>>32))
	binary.BigEndian.PutUint16(uuid[6:8], uint16(ticks>>48)&0x0fff)
	uuid[6] = (uuid[6] & 0x0f) | 0x10 // version 1

	uuid[8] = byte(seq>>8)&0x3f | 0x80 // variant + clock_seq_hi
	uuid[9] = byte(seq)
	copy(uuid[10:], node[:])
	return uuid, nil
}

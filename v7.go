package uuid

import (
	"encoding/binary"
	"io"
	"time"
)

// New generates a new UUIDv7 using the default generator. Version 7 is the
// library's default because its values sort by creation time.
func New() (UUID, error) {
	return defaultGenerator.NewV7()
}

// NewV7 generates a Version 7 (Unix time-based, sortable) UUID using the
// default generator.
func NewV7() (UUID, error) {
	return defaultGenerator.NewV7()
}

// NewV7 generates a Version 7 UUID at the generator's current clock reading.
// Values generated within the same millisecond stay monotonic through a
// 12-bit counter in the rand_a field.
func (g *Generator) NewV7() (UUID, error) {
	return g.NewV7At(g.clock.Now())
}

// NewV7At generates a Version 7 UUID for the given instant.
// This method is thread-safe and ensures monotonic ordering.
func (g *Generator) NewV7At(t time.Time) (UUID, error) {
	var uuid UUID

	// Unix timestamp in milliseconds (48 bits)
	timestamp := uint64(t.UnixMilli())

	g.mu.Lock()
	defer g.mu.Unlock()

	// Handle monotonicity: if timestamp is same or earlier, increment counter
	if timestamp <= g.lastUnixMilli {
		g.unixSeq++
		// If counter overflows (> 12 bits), borrow the next millisecond
		if g.unixSeq > 0xFFF {
			g.unixSeq = 0
			timestamp = g.lastUnixMilli + 1
			g.lastUnixMilli = timestamp
		}
	} else {
		// New millisecond, reseed the counter with random data
		var randBytes [2]byte
		if _, err := io.ReadFull(g.rand, randBytes[:]); err != nil {
			return uuid, err
		}
		g.unixSeq = binary.BigEndian.Uint16(randBytes[:]) & 0xFFF // 12 bits
		g.lastUnixMilli = timestamp
	}

	// Encode timestamp (48 bits) - bytes 0-5
	binary.BigEndian.PutUint64(uuid[0:8], timestamp<<16)

	// Encode version (4 bits) and counter (12 bits) - bytes 6-7
	uuid[6] = byte(0x70 | (g.unixSeq >> 8)) // version + rand_a high
	uuid[7] = byte(g.unixSeq)               // rand_a low

	// Random data for bytes 8-15 (62 bits after the variant)
	if _, err := io.ReadFull(g.rand, uuid[8:]); err != nil {
		return uuid, err
	}

	// Set variant to RFC 4122 (10xx xxxx)
	uuid[8] = (uuid[8] & 0x3F) | 0x80

	return uuid, nil
}

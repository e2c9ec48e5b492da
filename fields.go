package uuid

import (
	"encoding/binary"
	"fmt"
	"time"
)

// Gregorian timestamps count 100ns ticks since 1582-10-15T00:00:00Z, the
// date of the Gregorian calendar reform. Unix time begins 12219292800
// seconds later.
const (
	gregorianToUnixSeconds = 12219292800
	ticksPerSecond         = 10000000

	// maxGregorianTicks is the largest value the 60-bit timestamp field can
	// hold, corresponding to 5236-03-31T21:21:00.684697Z.
	maxGregorianTicks = 1<<60 - 1
)

// Domain identifies the DCE Security namespace a version 2 local identifier
// belongs to.
type Domain byte

const (
	DomainPerson Domain = iota
	DomainGroup
	DomainOrg
)

// String returns the domain name.
func (d Domain) String() string {
	switch d {
	case DomainPerson:
		return "person"
	case DomainGroup:
		return "group"
	case DomainOrg:
		return "org"
	default:
		return fmt.Sprintf("domain(%d)", byte(d))
	}
}

// timeLayout selects how a version stores its timestamp inside the payload.
type timeLayout byte

const (
	timeNone timeLayout = iota
	timeGregorianSplit   // versions 1 and 2: low bytes 0-3, mid 4-5, high 6-7
	timeGregorianOrdered // version 6: high-to-low, contiguous
	timeUnixMilli        // version 7: 48-bit big-endian milliseconds
)

// layout is one row of the per-version field catalog. Offsets refer to the
// canonical big-endian payload. Moving a field between versions is a catalog
// change, not new decoding code.
type layout struct {
	time      timeLayout
	clockBits byte // 14 for versions 1 and 6, 6 for version 2, else 0
	node      bool // bytes 10-15 hold a 48-bit node identifier
	domain    bool // byte 9 holds a DCE Security domain
	localID   bool // bytes 0-3 hold a DCE Security local identifier
	custom    bool // payload holds opaque vendor-defined fields (version 8)
}

var layouts = map[Version]layout{
	VersionTimeBased:     {time: timeGregorianSplit, clockBits: 14, node: true},
	VersionDCESecurity:   {time: timeGregorianSplit, clockBits: 6, node: true, domain: true, localID: true},
	VersionNameBasedMD5:  {},
	VersionRandom:        {},
	VersionNameBasedSHA1: {},
	VersionTimeOrdered:   {time: timeGregorianOrdered, clockBits: 14, node: true},
	VersionTimeSorted:    {time: timeUnixMilli},
	VersionCustom:        {custom: true},
}

// layoutOf resolves the field catalog row for u. Only RFC 4122 values of a
// cataloged version have extractable fields; the sentinels have none.
func (u UUID) layoutOf() (layout, Version, error) {
	if u == Nil || u == Max {
		return layout{}, 0, ErrNoVersion
	}
	if variantOf(u[8]) != VariantRFC4122 {
		return layout{}, 0, fmt.Errorf("%w: fields are defined only for RFC 4122 values", ErrInvalidVariant)
	}
	v := Version(u[6] >> 4)
	l, ok := layouts[v]
	if !ok {
		return layout{}, v, fmt.Errorf("%w: version %s", ErrInvalidVersion, v)
	}
	return l, v, nil
}

// GregorianTicks returns the raw 60-bit timestamp of a version 1, 2 or 6
// UUID, counted in 100ns ticks since the Gregorian epoch. For version 2 the
// low 32 bits of the timestamp are displaced by the local identifier and
// read as zero.
func (u UUID) GregorianTicks() (uint64, error) {
	l, v, err := u.layoutOf()
	if err != nil {
		return 0, err
	}
	switch l.time {
	case timeGregorianSplit:
		ticks := uint64(binary.BigEndian.Uint16(u[6:8])&0x0fff)<<48 |
			uint64(binary.BigEndian.Uint16(u[4:6]))<<32 |
			uint64(binary.BigEndian.Uint32(u[0:4]))
		if l.localID {
			ticks &^= 0xffffffff
		}
		return ticks, nil
	case timeGregorianOrdered:
		ticks := uint64(binary.BigEndian.Uint32(u[0:4]))<<28 |
			uint64(binary.BigEndian.Uint16(u[4:6]))<<12 |
			uint64(binary.BigEndian.Uint16(u[6:8])&0x0fff)
		return ticks, nil
	default:
		return 0, fmt.Errorf("%w: version %s has no Gregorian timestamp", ErrInvalidVersion, v)
	}
}

// UnixMilli returns the 48-bit Unix millisecond timestamp of a version 7 UUID.
func (u UUID) UnixMilli() (int64, error) {
	l, v, err := u.layoutOf()
	if err != nil {
		return 0, err
	}
	if l.time != timeUnixMilli {
		return 0, fmt.Errorf("%w: version %s has no Unix timestamp", ErrInvalidVersion, v)
	}
	ms := uint64(u[0])<<40 |
		uint64(u[1])<<32 |
		uint64(u[2])<<24 |
		uint64(u[3])<<16 |
		uint64(u[4])<<8 |
		uint64(u[5])
	return int64(ms), nil
}

// Time returns the instant encoded in a version 1, 2, 6 or 7 UUID, in UTC.
// Gregorian timestamps are floored to whole microseconds. Version 2 carries
// only the upper timestamp bits and is accurate to roughly 7 minutes;
// version 7 is millisecond-precise.
func (u UUID) Time() (time.Time, error) {
	l, v, err := u.layoutOf()
	if err != nil {
		return time.Time{}, err
	}
	switch l.time {
	case timeGregorianSplit, timeGregorianOrdered:
		ticks, err := u.GregorianTicks()
		if err != nil {
			return time.Time{}, err
		}
		return gregorianTime(ticks), nil
	case timeUnixMilli:
		ms, err := u.UnixMilli()
		if err != nil {
			return time.Time{}, err
		}
		return time.UnixMilli(ms).UTC(), nil
	default:
		return time.Time{}, fmt.Errorf("%w: version %s has no timestamp", ErrInvalidVersion, v)
	}
}

// gregorianTime converts a 60-bit tick count to UTC, flooring to whole
// microseconds. Tick zero is 1582-10-15T00:00:00Z.
func gregorianTime(ticks uint64) time.Time {
	sec := int64(ticks/ticksPerSecond) - gregorianToUnixSeconds
	usec := int64(ticks%ticksPerSecond) / 10
	return time.Unix(sec, usec*1000).UTC()
}

// gregorianTicks converts an instant to the 60-bit tick count, truncating to
// the 100ns grid.
func gregorianTicks(t time.Time) uint64 {
	ticks := uint64(t.Unix()+gregorianToUnixSeconds)*ticksPerSecond +
		uint64(t.Nanosecond())/100
	return ticks & maxGregorianTicks
}

// ClockSequence returns the clock sequence of a version 1, 2 or 6 UUID.
// Versions 1 and 6 carry 14 bits; version 2 keeps only the upper 6, the rest
// being displaced by the domain byte.
func (u UUID) ClockSequence() (int, error) {
	l, v, err := u.layoutOf()
	if err != nil {
		return 0, err
	}
	switch l.clockBits {
	case 14:
		return int(u[8]&0x3f)<<8 | int(u[9]), nil
	case 6:
		return int(u[8] & 0x3f), nil
	default:
		return 0, fmt.Errorf("%w: version %s has no clock sequence", ErrInvalidVersion, v)
	}
}

// Node returns a copy of the 48-bit node identifier of a version 1, 2 or 6
// UUID, usually a MAC address or a random stand-in with the multicast bit set.
func (u UUID) Node() ([]byte, error) {
	l, v, err := u.layoutOf()
	if err != nil {
		return nil, err
	}
	if !l.node {
		return nil, fmt.Errorf("%w: version %s has no node identifier", ErrInvalidVersion, v)
	}
	node := make([]byte, 6)
	copy(node, u[10:16])
	return node, nil
}

// Domain returns the DCE Security domain of a version 2 UUID.
func (u UUID) Domain() (Domain, error) {
	l, v, err := u.layoutOf()
	if err != nil {
		return 0, err
	}
	if !l.domain {
		return 0, fmt.Errorf("%w: version %s has no domain", ErrInvalidVersion, v)
	}
	return Domain(u[9]), nil
}

// LocalID returns the DCE Security local identifier of a version 2 UUID:
// the POSIX uid for DomainPerson, the gid for DomainGroup.
func (u UUID) LocalID() (uint32, error) {
	l, v, err := u.layoutOf()
	if err != nil {
		return 0, err
	}
	if !l.localID {
		return 0, fmt.Errorf("%w: version %s has no local identifier", ErrInvalidVersion, v)
	}
	return binary.BigEndian.Uint32(u[0:4]), nil
}

// CustomFields returns the three opaque fields of a version 8 UUID as
// zero-padded lower-case hex strings, 48, 12 and 62 bits wide. Their meaning
// belongs to whoever minted the value.
func (u UUID) CustomFields() (a, b, c string, err error) {
	l, v, err := u.layoutOf()
	if err != nil {
		return "", "", "", err
	}
	if !l.custom {
		return "", "", "", fmt.Errorf("%w: version %s has no custom fields", ErrInvalidVersion, v)
	}
	customA := uint64(binary.BigEndian.Uint32(u[0:4]))<<16 | uint64(binary.BigEndian.Uint16(u[4:6]))
	customB := binary.BigEndian.Uint16(u[6:8]) & 0x0fff
	customC := binary.BigEndian.Uint64(u[8:16]) & 0x3fffffffffffffff
	return fmt.Sprintf("%012x", customA), fmt.Sprintf("%03x", customB), fmt.Sprintf("%016x", customC), nil
}

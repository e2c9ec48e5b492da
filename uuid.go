package uuid

import (
	"database/sql/driver"
	"encoding/hex"
	"fmt"
	"strings"
)

// UUID represents a Universally Unique Identifier as defined by RFC 4122 and RFC 9562.
// The UUID is a 128-bit (16 byte) value that is used to uniquely identify information.
// The zero value is the Nil UUID.
type UUID [16]byte

// Version represents the UUID version, encoded in the high nibble of byte 6.
type Version byte

const (
	_ Version = iota
	VersionTimeBased     // Version 1: Gregorian time-based
	VersionDCESecurity   // Version 2: DCE Security with embedded POSIX identifiers
	VersionNameBasedMD5  // Version 3: name-based, MD5 digest
	VersionRandom        // Version 4: random
	VersionNameBasedSHA1 // Version 5: name-based, SHA-1 digest
	VersionTimeOrdered   // Version 6: field-compatible reordering of version 1
	VersionTimeSorted    // Version 7: Unix epoch time-based, sortable
	VersionCustom        // Version 8: custom, vendor-defined fields
)

// String returns the decimal version number.
func (v Version) String() string {
	return fmt.Sprintf("%d", byte(v))
}

// Variant represents the UUID variant, encoded in the high bits of byte 8.
type Variant byte

const (
	VariantNCS Variant = iota
	VariantRFC4122
	VariantMicrosoft
	VariantFuture
)

// String returns the variant name.
func (v Variant) String() string {
	switch v {
	case VariantNCS:
		return "NCS"
	case VariantRFC4122:
		return "RFC4122"
	case VariantMicrosoft:
		return "Microsoft"
	case VariantFuture:
		return "Future"
	default:
		return fmt.Sprintf("Variant(%d)", byte(v))
	}
}

// Nil is the nil UUID (all bits zero).
var Nil UUID

// Max is the max UUID (all bits one), the RFC 9562 counterpart of Nil.
var Max = UUID{
	0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff,
	0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff,
}

// Version returns the version of the UUID.
//
// Nil and Max carry no version; requesting one is a programming error and
// panics with ErrNoVersion. Use IsNil and IsMax to detect the sentinels first.
func (u UUID) Version() Version {
	if u == Nil || u == Max {
		panic(ErrNoVersion)
	}
	return Version(u[6] >> 4)
}

// Variant returns the variant of the UUID. The Nil and Max sentinels report
// VariantRFC4122 regardless of their raw bit patterns.
func (u UUID) Variant() Variant {
	if u == Nil || u == Max {
		return VariantRFC4122
	}
	return variantOf(u[8])
}

// variantOf classifies the raw variant bits of byte 8, most specific mask first.
func variantOf(b byte) Variant {
	switch {
	case (b & 0xe0) == 0xe0:
		return VariantFuture
	case (b & 0xe0) == 0xc0:
		return VariantMicrosoft
	case (b & 0xc0) == 0x80:
		return VariantRFC4122
	default:
		return VariantNCS
	}
}

// ValidFor reports whether the UUID carries the RFC 4122 variant and version v.
// Nil and Max are never valid for any version; they are matched by exact byte
// equality instead.
func (u UUID) ValidFor(v Version) bool {
	if u == Nil || u == Max {
		return false
	}
	return variantOf(u[8]) == VariantRFC4122 && Version(u[6]>>4) == v
}

// checkVersion verifies the raw variant and version bits against v.
func (u UUID) checkVersion(v Version) error {
	if variantOf(u[8]) != VariantRFC4122 {
		return fmt.Errorf("%w: got %s", ErrInvalidVariant, variantOf(u[8]))
	}
	if got := Version(u[6] >> 4); got != v {
		return fmt.Errorf("%w: got version %s, want %s", ErrInvalidVersion, got, v)
	}
	return nil
}

// String returns the canonical string representation of the UUID
// in the format: xxxxxxxx-xxxx-xxxx-xxxx-xxxxxxxxxxxx
func (u UUID) String() string {
	var buf [36]byte
	encodeHex(buf[:], u)
	return string(buf[:])
}

// URN returns the RFC 2141 URN form of the UUID,
// urn:uuid:xxxxxxxx-xxxx-xxxx-xxxx-xxxxxxxxxxxx
func (u UUID) URN() string {
	return "urn:uuid:" + u.String()
}

// encodeHex encodes UUID to its canonical hex representation
func encodeHex(dst []byte, u UUID) {
	hex.Encode(dst[0:8], u[0:4])
	dst[8] = '-'
	hex.Encode(dst[9:13], u[4:6])
	dst[13] = '-'
	hex.Encode(dst[14:18], u[6:8])
	dst[18] = '-'
	hex.Encode(dst[19:23], u[8:10])
	dst[23] = '-'
	hex.Encode(dst[24:36], u[10:16])
}

// Parse parses a UUID from its string representation.
// It accepts the following formats:
//   - xxxxxxxx-xxxx-xxxx-xxxx-xxxxxxxxxxxx (canonical)
//   - urn:uuid:xxxxxxxx-xxxx-xxxx-xxxx-xxxxxxxxxxxx
//   - {xxxxxxxx-xxxx-xxxx-xxxx-xxxxxxxxxxxx}
//   - xxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxx (without hyphens)
//
// The urn:uuid: prefix and the braces are trimmed independently, in that
// order, so an unbalanced wrapper ("{xxx", "xxx}") is accepted while a URN
// inside braces is not.
//
// Hex digits may be upper or lower case; rendering always produces lower case.
func Parse(s string) (UUID, error) {
	var uuid UUID

	// Remove common prefixes and suffixes
	s = strings.TrimPrefix(s, "urn:uuid:")
	s = strings.TrimPrefix(s, "{")
	s = strings.TrimSuffix(s, "}")

	// Handle canonical format with hyphens
	if len(s) == 36 {
		if s[8] != '-' || s[13] != '-' || s[18] != '-' || s[23] != '-' {
			return uuid, ErrInvalidFormat
		}
		// Decode each segment
		if err := decodeHexSegment(uuid[0:4], s[0:8]); err != nil {
			return uuid, err
		}
		if err := decodeHexSegment(uuid[4:6], s[9:13]); err != nil {
			return uuid, err
		}
		if err := decodeHexSegment(uuid[6:8], s[14:18]); err != nil {
			return uuid, err
		}
		if err := decodeHexSegment(uuid[8:10], s[19:23]); err != nil {
			return uuid, err
		}
		if err := decodeHexSegment(uuid[10:16], s[24:36]); err != nil {
			return uuid, err
		}
		return uuid, nil
	}

	// Handle format without hyphens
	if len(s) == 32 {
		if _, err := hex.Decode(uuid[:], []byte(s)); err != nil {
			return uuid, ErrInvalidFormat
		}
		return uuid, nil
	}

	return uuid, ErrInvalidFormat
}

// ParseAs parses s like Parse and then verifies that the result carries the
// RFC 4122 variant and the expected version v. A well-formed string of the
// wrong version fails with ErrInvalidVersion, a non-RFC variant with
// ErrInvalidVariant. The sentinels never satisfy an expected version.
func ParseAs(s string, v Version) (UUID, error) {
	uuid, err := Parse(s)
	if err != nil {
		return Nil, err
	}
	if err := uuid.checkVersion(v); err != nil {
		return Nil, err
	}
	return uuid, nil
}

// MustParse is like Parse but panics if the string cannot be parsed.
// It simplifies safe initialization of global variables.
func MustParse(s string) UUID {
	uuid, err := Parse(s)
	if err != nil {
		panic(fmt.Sprintf("uuid: Parse(%q): %v", s, err))
	}
	return uuid
}

// decodeHexSegment decodes a hex string segment into a byte slice
func decodeHexSegment(dst []byte, src string) error {
	if _, err := hex.Decode(dst, []byte(src)); err != nil {
		return ErrInvalidFormat
	}
	return nil
}

// Bytes returns the UUID as a byte slice in canonical network byte order.
func (u UUID) Bytes() []byte {
	return u[:]
}

// IsNil returns true if the UUID is the nil UUID (all zeros)
func (u UUID) IsNil() bool {
	return u == Nil
}

// IsMax returns true if the UUID is the max UUID (all ones)
func (u UUID) IsMax() bool {
	return u == Max
}

// MarshalText implements the encoding.TextMarshaler interface
func (u UUID) MarshalText() ([]byte, error) {
	var buf [36]byte
	encodeHex(buf[:], u)
	return buf[:], nil
}

// UnmarshalText implements the encoding.TextUnmarshaler interface
func (u *UUID) UnmarshalText(data []byte) error {
	id, err := Parse(string(data))
	if err != nil {
		return err
	}
	*u = id
	return nil
}

// MarshalBinary implements the encoding.BinaryMarshaler interface
func (u UUID) MarshalBinary() ([]byte, error) {
	return u[:], nil
}

// UnmarshalBinary implements the encoding.BinaryUnmarshaler interface
func (u *UUID) UnmarshalBinary(data []byte) error {
	if len(data) != 16 {
		return ErrInvalidLength
	}
	copy(u[:], data)
	return nil
}

// Scan implements the sql.Scanner interface for database compatibility
func (u *UUID) Scan(src interface{}) error {
	switch src := src.(type) {
	case nil:
		return nil
	case string:
		id, err := Parse(src)
		if err != nil {
			return err
		}
		*u = id
		return nil
	case []byte:
		if len(src) == 16 {
			copy(u[:], src)
			return nil
		}
		if len(src) == 0 {
			return nil
		}
		id, err := Parse(string(src))
		if err != nil {
			return err
		}
		*u = id
		return nil
	default:
		return fmt.Errorf("uuid: cannot scan type %T into UUID", src)
	}
}

// Value implements the driver.Valuer interface for database compatibility
func (u UUID) Value() (driver.Value, error) {
	return u.String(), nil
}

// Compare returns an integer comparing two UUIDs lexicographically by their
// canonical bytes. The result is 0 if u==other, -1 if u < other, +1 if u > other.
// This order matches the lexical order of the canonical string forms.
func (u UUID) Compare(other UUID) int {
	for i := 0; i < 16; i++ {
		if u[i] < other[i] {
			return -1
		}
		if u[i] > other[i] {
			return 1
		}
	}
	return 0
}

// Equal returns true if u and other represent the same UUID
func (u UUID) Equal(other UUID) bool {
	return u == other
}

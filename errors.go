package uuid

import "errors"

var (
	// ErrInvalidFormat indicates that a textual UUID representation is malformed
	ErrInvalidFormat = errors.New("uuid: invalid UUID format")

	// ErrInvalidLength indicates that a UUID byte slice has incorrect length
	ErrInvalidLength = errors.New("uuid: invalid UUID length (expected 16 bytes)")

	// ErrInvalidVersion indicates that the UUID version does not match the expected one
	ErrInvalidVersion = errors.New("uuid: invalid or unexpected UUID version")

	// ErrInvalidVariant indicates that the UUID variant is not RFC 4122
	ErrInvalidVariant = errors.New("uuid: invalid UUID variant (expected RFC 4122)")

	// ErrRange indicates that an integer representation falls outside the
	// unsigned 128-bit range [0, 2^128-1]
	ErrRange = errors.New("uuid: integer outside the unsigned 128-bit range")

	// ErrNotComparable indicates that an operand handed to Compare or Equal
	// has a type the comparator does not recognize
	ErrNotComparable = errors.New("uuid: operand is not comparable to a UUID")

	// ErrNoVersion indicates that a version was requested from the Nil or Max
	// UUID, which carry no version semantics
	ErrNoVersion = errors.New("uuid: nil and max UUIDs carry no version")

	// ErrNoHardwareAddress indicates that no running network interface with a
	// usable hardware address was found; generators fall back to a random
	// node identity
	ErrNoHardwareAddress = errors.New("uuid: no usable hardware address")
)

package uuid

import "math/big"

// maxUint128 is 2^128 - 1, the largest value a UUID can hold.
var maxUint128 = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 128), big.NewInt(1))

// BigInt returns the UUID read as an unsigned big-endian 128-bit integer.
func (u UUID) BigInt() *big.Int {
	return new(big.Int).SetBytes(u[:])
}

// DecimalString returns the UUID as an unsigned decimal integer string with
// no leading zeros. The Nil UUID renders as "0" and Max as 2^128-1.
func (u UUID) DecimalString() string {
	return u.BigInt().String()
}

// FromBigInt creates a UUID from an unsigned integer. Values outside
// [0, 2^128-1], and nil, fail with ErrRange. The integer maps to the 16
// canonical bytes big-endian, zero-padded on the left.
func FromBigInt(n *big.Int) (UUID, error) {
	var uuid UUID
	if n == nil || n.Sign() < 0 || n.Cmp(maxUint128) > 0 {
		return uuid, ErrRange
	}
	n.FillBytes(uuid[:])
	return uuid, nil
}

// DecodeFromDecimal decodes an unsigned base-10 integer string to UUID.
// Non-numeric strings fail with ErrInvalidFormat, out-of-range values
// with ErrRange.
func DecodeFromDecimal(s string) (UUID, error) {
	if !isDecimal(s) {
		return Nil, ErrInvalidFormat
	}
	n, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return Nil, ErrInvalidFormat
	}
	return FromBigInt(n)
}

// isDecimal reports whether s is a non-empty run of ASCII digits.
func isDecimal(s string) bool {
	if len(s) == 0 {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

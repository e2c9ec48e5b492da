package uuid

import (
	"encoding"
	"fmt"
	"math/big"
	"strings"
)

// operandKind ranks the value classes the comparator accepts. Lower kinds
// sort before higher ones; identifier values and plain text share a rank and
// interleave lexically.
type operandKind int

const (
	operandAbsent operandKind = iota
	operandBool
	operandValue
	operandText
)

func (k operandKind) rank() int {
	if k == operandText {
		return int(operandValue)
	}
	return int(k)
}

// operand is a comparison input normalized to one of the rank classes.
type operand struct {
	kind operandKind
	u    UUID
	text string
	b    bool
}

// key returns the string an operand contributes to lexical comparison:
// the canonical form for identifier values, the raw text otherwise.
func (o operand) key() string {
	if o.kind == operandValue {
		return o.u.String()
	}
	return o.text
}

// Compare orders two operands of possibly different representations and
// returns -1, 0 or +1. The order is total and deterministic:
//
//   - nil operands (untyped nil, nil *UUID, nil *big.Int) sort first,
//   - booleans next, false before true,
//   - identifier values and unparseable strings last, interleaved by
//     comparing canonical strings lexically.
//
// Two identifier values order by their canonical bytes, which coincides with
// the lexical order of their canonical strings. Strings are recognized as
// identifiers in any parseable form, or as unsigned decimal integers up to
// 2^128-1; anything else compares as plain text. GUID operands are re-encoded
// to canonical byte order first. Foreign types are admitted through
// encoding.BinaryMarshaler (16-byte output) or fmt.Stringer; everything else
// fails with ErrNotComparable.
//
// The nil and boolean rules exist for compatibility with loosely-typed
// callers and are not part of any UUID standard.
func Compare(a, b any) (int, error) {
	oa, err := normalizeOperand(a)
	if err != nil {
		return 0, err
	}
	ob, err := normalizeOperand(b)
	if err != nil {
		return 0, err
	}
	return compareOperands(oa, ob), nil
}

// Equal reports whether Compare would order a and b as equal.
func Equal(a, b any) (bool, error) {
	c, err := Compare(a, b)
	if err != nil {
		return false, err
	}
	return c == 0, nil
}

func compareOperands(a, b operand) int {
	if ra, rb := a.kind.rank(), b.kind.rank(); ra != rb {
		if ra < rb {
			return -1
		}
		return 1
	}
	switch a.kind {
	case operandAbsent:
		return 0
	case operandBool:
		switch {
		case a.b == b.b:
			return 0
		case !a.b:
			return -1
		default:
			return 1
		}
	default:
		if a.kind == operandValue && b.kind == operandValue {
			return a.u.Compare(b.u)
		}
		return strings.Compare(a.key(), b.key())
	}
}

// normalizeOperand maps an arbitrary input to its rank class. The explicit
// cases run before the capability probes, so a UUID is never routed through
// its own Stringer.
func normalizeOperand(v any) (operand, error) {
	switch x := v.(type) {
	case nil:
		return operand{kind: operandAbsent}, nil
	case bool:
		return operand{kind: operandBool, b: x}, nil
	case UUID:
		return operand{kind: operandValue, u: x}, nil
	case *UUID:
		if x == nil {
			return operand{kind: operandAbsent}, nil
		}
		return operand{kind: operandValue, u: *x}, nil
	case GUID:
		return operand{kind: operandValue, u: x.UUID()}, nil
	case *GUID:
		if x == nil {
			return operand{kind: operandAbsent}, nil
		}
		return operand{kind: operandValue, u: x.UUID()}, nil
	case [16]byte:
		return operand{kind: operandValue, u: UUID(x)}, nil
	case []byte:
		u, err := FromBytes(x)
		if err != nil {
			return operand{}, fmt.Errorf("%w: []byte of length %d", ErrNotComparable, len(x))
		}
		return operand{kind: operandValue, u: u}, nil
	case string:
		return normalizeString(x), nil
	case *big.Int:
		if x == nil {
			return operand{kind: operandAbsent}, nil
		}
		u, err := FromBigInt(x)
		if err != nil {
			return operand{}, err
		}
		return operand{kind: operandValue, u: u}, nil
	case uint64:
		u, _ := FromBigInt(new(big.Int).SetUint64(x))
		return operand{kind: operandValue, u: u}, nil
	case int64:
		if x < 0 {
			return operand{}, fmt.Errorf("%w: negative integer %d", ErrRange, x)
		}
		u, _ := FromBigInt(big.NewInt(x))
		return operand{kind: operandValue, u: u}, nil
	case int:
		return normalizeOperand(int64(x))
	case uint:
		return normalizeOperand(uint64(x))
	}

	if m, ok := v.(encoding.BinaryMarshaler); ok {
		data, err := m.MarshalBinary()
		if err == nil && len(data) == 16 {
			u, _ := FromBytes(data)
			return operand{kind: operandValue, u: u}, nil
		}
	}
	if s, ok := v.(fmt.Stringer); ok {
		return normalizeString(s.String()), nil
	}
	return operand{}, fmt.Errorf("%w: %T", ErrNotComparable, v)
}

// normalizeString recognizes identifier strings in any parseable form, then
// unsigned decimal integers. Everything else, including digit runs beyond
// 2^128-1, falls back to plain text and the lexical rule.
func normalizeString(s string) operand {
	if u, err := Parse(s); err == nil {
		return operand{kind: operandValue, u: u}
	}
	if isDecimal(s) {
		if u, err := DecodeFromDecimal(s); err == nil {
			return operand{kind: operandValue, u: u}
		}
	}
	return operand{kind: operandText, text: s}
}

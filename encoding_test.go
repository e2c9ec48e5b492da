package uuid

import (
	"bytes"
	"crypto/rand"
	"errors"
	"io"
	"testing"
)

func TestUUID_EncodeToHex(t *testing.T) {
	uuid := UUID{0xf4, 0x7a, 0xc1, 0x0b, 0x58, 0xcc, 0x43, 0x72, 0xa5, 0x67, 0x0e, 0x02, 0xb2, 0xc3, 0xd4, 0x79}
	expected := "f47ac10b58cc4372a5670e02b2c3d479"

	got := uuid.EncodeToHex()
	if got != expected {
		t.Errorf("EncodeToHex() = %v, want %v", got, expected)
	}
}

func TestDecodeFromHex(t *testing.T) {
	input := "f47ac10b58cc4372a5670e02b2c3d479"
	expected := UUID{0xf4, 0x7a, 0xc1, 0x0b, 0x58, 0xcc, 0x43, 0x72, 0xa5, 0x67, 0x0e, 0x02, 0xb2, 0xc3, 0xd4, 0x79}

	got, err := DecodeFromHex(input)
	if err != nil {
		t.Fatalf("DecodeFromHex() error = %v", err)
	}

	if got != expected {
		t.Errorf("DecodeFromHex() = %v, want %v", got, expected)
	}
}

func TestDecodeFromHex_UpperCase(t *testing.T) {
	lower, err := DecodeFromHex("f47ac10b58cc4372a5670e02b2c3d479")
	if err != nil {
		t.Fatalf("DecodeFromHex() error = %v", err)
	}
	upper, err := DecodeFromHex("F47AC10B58CC4372A5670E02B2C3D479")
	if err != nil {
		t.Fatalf("DecodeFromHex() error = %v", err)
	}
	if lower != upper {
		t.Errorf("case changed the decoded value: %v != %v", lower, upper)
	}
}

func TestDecodeFromHex_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"too short", "f47ac10b58cc4372"},
		{"too long", "f47ac10b58cc4372a5670e02b2c3d479ff"},
		{"invalid hex", "g47ac10b58cc4372a5670e02b2c3d479"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeFromHex(tt.input)
			if err == nil {
				t.Errorf("DecodeFromHex() expected error for input %q", tt.input)
			}
		})
	}
}

func TestUUID_EncodeToBase64(t *testing.T) {
	uuid := UUID{0xf4, 0x7a, 0xc1, 0x0b, 0x58, 0xcc, 0x43, 0x72, 0xa5, 0x67, 0x0e, 0x02, 0xb2, 0xc3, 0xd4, 0x79}

	// Test URL-safe encoding
	b64 := uuid.EncodeToBase64()
	if len(b64) == 0 {
		t.Error("EncodeToBase64() returned empty string")
	}

	// Test standard encoding
	b64std := uuid.EncodeToBase64Std()
	if len(b64std) == 0 {
		t.Error("EncodeToBase64Std() returned empty string")
	}
}

func TestDecodeFromBase64(t *testing.T) {
	uuid := UUID{0xf4, 0x7a, 0xc1, 0x0b, 0x58, 0xcc, 0x43, 0x72, 0xa5, 0x67, 0x0e, 0x02, 0xb2, 0xc3, 0xd4, 0x79}

	// Encode
	b64 := uuid.EncodeToBase64()

	// Decode
	decoded, err := DecodeFromBase64(b64)
	if err != nil {
		t.Fatalf("DecodeFromBase64() error = %v", err)
	}

	if decoded != uuid {
		t.Errorf("DecodeFromBase64() = %v, want %v", decoded, uuid)
	}
}

func TestDecodeFromBase64Std(t *testing.T) {
	uuid := UUID{0xf4, 0x7a, 0xc1, 0x0b, 0x58, 0xcc, 0x43, 0x72, 0xa5, 0x67, 0x0e, 0x02, 0xb2, 0xc3, 0xd4, 0x79}

	// Encode
	b64 := uuid.EncodeToBase64Std()

	// Decode
	decoded, err := DecodeFromBase64Std(b64)
	if err != nil {
		t.Fatalf("DecodeFromBase64Std() error = %v", err)
	}

	if decoded != uuid {
		t.Errorf("DecodeFromBase64Std() = %v, want %v", decoded, uuid)
	}
}

func TestDecodeFromBase64_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"invalid base64", "!!!invalid!!!"},
		{"wrong length", "YWJj"}, // "abc" in base64, only 3 bytes
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeFromBase64(tt.input)
			if err == nil {
				t.Errorf("DecodeFromBase64() expected error for input %q", tt.input)
			}
		})
	}
}

func TestFromBytes(t *testing.T) {
	data := []byte{0xf4, 0x7a, 0xc1, 0x0b, 0x58, 0xcc, 0x43, 0x72, 0xa5, 0x67, 0x0e, 0x02, 0xb2, 0xc3, 0xd4, 0x79}
	expected := UUID{0xf4, 0x7a, 0xc1, 0x0b, 0x58, 0xcc, 0x43, 0x72, 0xa5, 0x67, 0x0e, 0x02, 0xb2, 0xc3, 0xd4, 0x79}

	got, err := FromBytes(data)
	if err != nil {
		t.Fatalf("FromBytes() error = %v", err)
	}

	if got != expected {
		t.Errorf("FromBytes() = %v, want %v", got, expected)
	}
}

func TestUUID_Bytes_LiteralPayload(t *testing.T) {
	uuid := MustParse("27433d43-011d-8a6a-9161-1550863792c9")
	want := []byte{0x27, 0x43, 0x3d, 0x43, 0x01, 0x1d, 0x8a, 0x6a, 0x91, 0x61, 0x15, 0x50, 0x86, 0x37, 0x92, 0xc9}

	if !bytes.Equal(uuid.Bytes(), want) {
		t.Errorf("Bytes() = %x, want %x", uuid.Bytes(), want)
	}

	back, err := FromBytes(want)
	if err != nil {
		t.Fatalf("FromBytes() error = %v", err)
	}
	if back != uuid {
		t.Errorf("FromBytes() = %v, want %v", back, uuid)
	}
}

func TestFromBytes_AnyPayloadIsValid(t *testing.T) {
	// 16 bytes are always a valid bytes-format input; content rules live in
	// the classifier, not the codec.
	var data [16]byte
	for i := range data {
		data[i] = 0xff
	}
	uuid, err := FromBytes(data[:])
	if err != nil {
		t.Fatalf("FromBytes() error = %v", err)
	}
	if !uuid.IsMax() {
		t.Errorf("FromBytes() = %v, want Max", uuid)
	}
}

func TestFromBytes_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		input []byte
	}{
		{"too short", []byte{0x01, 0x02, 0x03}},
		{"too long", make([]byte, 20)},
		{"empty", []byte{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := FromBytes(tt.input)
			if err != ErrInvalidLength {
				t.Errorf("FromBytes() error = %v, want %v", err, ErrInvalidLength)
			}
		})
	}
}

func TestFromBytesAs(t *testing.T) {
	v6 := MustParse("a6a011d2-7433-6d43-9161-1550863792c9")

	uuid, err := FromBytesAs(v6.Bytes(), VersionTimeOrdered)
	if err != nil {
		t.Fatalf("FromBytesAs() error = %v", err)
	}
	if uuid != v6 {
		t.Errorf("FromBytesAs() = %v, want %v", uuid, v6)
	}

	// Correct version nibble but Microsoft variant bits: the variant check
	// rejects the payload before the version is even considered.
	msBytes := v6
	msBytes[8] = (msBytes[8] & 0x1f) | 0xc0
	if _, err := FromBytesAs(msBytes.Bytes(), VersionTimeOrdered); !errors.Is(err, ErrInvalidVariant) {
		t.Errorf("FromBytesAs() error = %v, want %v", err, ErrInvalidVariant)
	}

	// Wrong version
	if _, err := FromBytesAs(v6.Bytes(), VersionRandom); !errors.Is(err, ErrInvalidVersion) {
		t.Errorf("FromBytesAs() error = %v, want %v", err, ErrInvalidVersion)
	}

	// Wrong length
	if _, err := FromBytesAs(v6.Bytes()[:8], VersionTimeOrdered); !errors.Is(err, ErrInvalidLength) {
		t.Errorf("FromBytesAs() error = %v, want %v", err, ErrInvalidLength)
	}
}

func TestMustFromBytes(t *testing.T) {
	data := []byte{0xf4, 0x7a, 0xc1, 0x0b, 0x58, 0xcc, 0x43, 0x72, 0xa5, 0x67, 0x0e, 0x02, 0xb2, 0xc3, 0xd4, 0x79}

	uuid := MustFromBytes(data)
	if uuid.IsNil() {
		t.Error("MustFromBytes() returned nil UUID")
	}

	// Test panic
	defer func() {
		if r := recover(); r == nil {
			t.Error("MustFromBytes() did not panic on invalid input")
		}
	}()
	MustFromBytes([]byte{0x01})
}

func TestRepresentationRoundTrips(t *testing.T) {
	// Any 16-byte payload must survive a round trip through every
	// representation unchanged, whatever its variant and version bits say.
	for i := 0; i < 50; i++ {
		var payload [16]byte
		if _, err := io.ReadFull(rand.Reader, payload[:]); err != nil {
			t.Fatalf("rand: %v", err)
		}
		uuid := UUID(payload)

		// Canonical string
		fromString, err := Parse(uuid.String())
		if err != nil {
			t.Fatalf("Parse(String()) error = %v", err)
		}
		if uuid != fromString {
			t.Errorf("string round-trip failed: got %v, want %v", fromString, uuid)
		}

		// Hex
		fromHex, err := DecodeFromHex(uuid.EncodeToHex())
		if err != nil {
			t.Fatalf("DecodeFromHex() error = %v", err)
		}
		if uuid != fromHex {
			t.Errorf("hex round-trip failed: got %v, want %v", fromHex, uuid)
		}

		// Bytes
		fromBytes, err := FromBytes(uuid.Bytes())
		if err != nil {
			t.Fatalf("FromBytes() error = %v", err)
		}
		if uuid != fromBytes {
			t.Errorf("bytes round-trip failed: got %v, want %v", fromBytes, uuid)
		}

		// Decimal integer
		fromInt, err := DecodeFromDecimal(uuid.DecimalString())
		if err != nil {
			t.Fatalf("DecodeFromDecimal() error = %v", err)
		}
		if uuid != fromInt {
			t.Errorf("integer round-trip failed: got %v, want %v", fromInt, uuid)
		}

		// Base64
		fromB64, err := DecodeFromBase64(uuid.EncodeToBase64())
		if err != nil {
			t.Fatalf("DecodeFromBase64() error = %v", err)
		}
		if uuid != fromB64 {
			t.Errorf("base64 round-trip failed: got %v, want %v", fromB64, uuid)
		}
	}
}

package geouuid

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// UUID is a 128-bit GeoTemporal identifier, 16 bytes big-endian. Byte-wise
// comparison orders UUIDs chronologically by their encoded timestamp.
type UUID [16]byte

// String returns the canonical lowercase 8-4-4-4-12 hex form.
func (u UUID) String() string { return uuid.UUID(u).String() }

// Bytes returns a copy of the raw 16-byte representation.
func (u UUID) Bytes() []byte { b := make([]byte, 16); copy(b, u[:]); return b }

// Compare returns -1, 0, 1 based on lexical comparison.
func (u UUID) Compare(other UUID) int { return bytes.Compare(u[:], other[:]) }

// Latitude returns the encoded latitude in degrees.
func (u UUID) Latitude() float64 {
	lat, _, _ := defaultCodec.Decode(u)
	return lat
}

// Longitude returns the encoded longitude in degrees.
func (u UUID) Longitude() float64 {
	_, lon, _ := defaultCodec.Decode(u)
	return lon
}

// Time returns the encoded instant in UTC, at millisecond resolution.
func (u UUID) Time() time.Time {
	_, _, t := defaultCodec.Decode(u)
	return t
}

// Version returns the UUID version nibble (bits 48-51), always 7 for values
// produced by this package.
func (u UUID) Version() int { return int(u[6] >> 4) }

// Variant returns the two variant bits (bits 64-65), always 0b10 for values
// produced by this package.
func (u UUID) Variant() int { return int(u[8] >> 6) }

// AsUUID converts to a github.com/google/uuid value for interop.
func (u UUID) AsUUID() uuid.UUID { return uuid.UUID(u) }

// FromUUID converts a github.com/google/uuid value. No validation is
// performed; decode is total over all bit patterns.
func FromUUID(id uuid.UUID) UUID { return UUID(id) }

// Parse converts the canonical 8-4-4-4-12 form or the ungrouped 32-hex-digit
// form into a UUID. Hyphens are stripped wherever they appear; anything that
// does not then clean up to exactly 32 hex digits fails with ErrMalformed.
func Parse(s string) (UUID, error) {
	clean := strings.ReplaceAll(s, "-", "")
	if len(clean) != 32 {
		return UUID{}, fmt.Errorf("%w: want 32 hex digits, got %d", ErrMalformed, len(clean))
	}
	b, err := hex.DecodeString(clean)
	if err != nil {
		return UUID{}, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	var u UUID
	copy(u[:], b)
	return u, nil
}

// MustParse is Parse but panics on malformed input.
func MustParse(s string) UUID {
	u, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return u
}

// FromBytes converts a raw 16-byte slice into a UUID.
func FromBytes(b []byte) (UUID, error) {
	if len(b) != 16 {
		return UUID{}, fmt.Errorf("%w: want 16 bytes, got %d", ErrMalformed, len(b))
	}
	var u UUID
	copy(u[:], b)
	return u, nil
}

// MarshalText implements encoding.TextMarshaler using the canonical string
// form.
func (u UUID) MarshalText() ([]byte, error) { return []byte(u.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler accepting the same forms
// as Parse.
func (u *UUID) UnmarshalText(b []byte) error {
	v, err := Parse(string(b))
	if err != nil {
		return err
	}
	*u = v
	return nil
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (u UUID) MarshalBinary() ([]byte, error) { return u.Bytes(), nil }

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (u *UUID) UnmarshalBinary(b []byte) error {
	v, err := FromBytes(b)
	if err != nil {
		return err
	}
	*u = v
	return nil
}

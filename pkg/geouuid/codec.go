package geouuid

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"time"
)

// Coordinate domains.
const (
	latMin, latMax = -90.0, 90.0
	lonMin, lonMax = -180.0, 180.0
)

// Codec encodes coordinates and timestamps into UUIDs and back. It is
// stateless apart from its injected clock and entropy source; a single
// Codec may be used from any number of goroutines provided its entropy
// reader is safe for concurrent use (crypto/rand.Reader, the default, is).
type Codec struct {
	layout  layout
	now     func() time.Time
	entropy io.Reader
}

// Option configures a Codec.
type Option func(*Codec)

// WithClock sets the time source used when Encode is called without an
// explicit timestamp.
func WithClock(now func() time.Time) Option {
	return func(c *Codec) { c.now = now }
}

// WithEntropy sets the source of random bits for the disambiguator field.
func WithEntropy(r io.Reader) Option {
	return func(c *Codec) { c.entropy = r }
}

// NewCodec creates a Codec. Defaults: time.Now and crypto/rand.Reader.
func NewCodec(opts ...Option) *Codec {
	c := &Codec{
		layout:  canonical,
		now:     time.Now,
		entropy: crand.Reader,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// defaultCodec backs the package-level convenience functions.
var defaultCodec = NewCodec()

// Encode builds a UUID for the given coordinate at the codec's current clock
// reading.
func (c *Codec) Encode(lat, lon float64) (UUID, error) {
	return c.EncodeAt(lat, lon, c.now())
}

// EncodeAt builds a UUID for the given coordinate and instant.
//
// The timestamp is truncated to the layout's 48-bit millisecond field;
// instants past the field's capacity (year ~10889) wrap rather than error.
func (c *Codec) EncodeAt(lat, lon float64, t time.Time) (UUID, error) {
	if lat < latMin || lat > latMax {
		return UUID{}, fmt.Errorf("%w: latitude %v not in [-90, 90]", ErrOutOfRange, lat)
	}
	if lon < lonMin || lon > lonMax {
		return UUID{}, fmt.Errorf("%w: longitude %v not in [-180, 180]", ErrOutOfRange, lon)
	}

	rnd, err := readBits(c.entropy, c.layout.widths[fieldRandom])
	if err != nil {
		return UUID{}, fmt.Errorf("read entropy: %w", err)
	}

	var vals fieldValues
	vals[fieldTimestamp] = uint64(t.UnixMilli()/c.layout.unitMillis) & mask(c.layout.widths[fieldTimestamp])
	vals[fieldLongitude] = quantize(lon, lonMin, lonMax, c.layout.widths[fieldLongitude])
	vals[fieldLatitude] = quantize(lat, latMin, latMax, c.layout.widths[fieldLatitude])
	vals[fieldRandom] = rnd
	return c.layout.pack(vals), nil
}

// Decode recovers the coordinate and instant a UUID encodes. It is total
// over all bit patterns: reserved bits are skipped, never validated, and
// every payload pattern maps to some triple. Latitude and longitude carry
// the quantization error documented in the package comment; the timestamp
// is exact.
func (c *Codec) Decode(u UUID) (lat, lon float64, t time.Time) {
	vals := c.layout.unpack(u)
	lat = dequantize(vals[fieldLatitude], latMin, latMax, c.layout.widths[fieldLatitude])
	lon = dequantize(vals[fieldLongitude], lonMin, lonMax, c.layout.widths[fieldLongitude])
	t = time.UnixMilli(int64(vals[fieldTimestamp]) * c.layout.unitMillis).UTC()
	return lat, lon, t
}

// New builds a UUID for the given coordinate at the current time using the
// default codec.
func New(lat, lon float64) (UUID, error) {
	return defaultCodec.Encode(lat, lon)
}

// NewAt builds a UUID for the given coordinate and instant using the default
// codec.
func NewAt(lat, lon float64, t time.Time) (UUID, error) {
	return defaultCodec.EncodeAt(lat, lon, t)
}

// Decode recovers the coordinate and instant a UUID encodes.
func Decode(u UUID) (lat, lon float64, t time.Time) {
	return defaultCodec.Decode(u)
}

// quantize maps v from the closed interval [min, max] onto a width-bit
// unsigned integer. Monotonic; rounding error is at most
// (max-min)/(2*(2^width-1)).
func quantize(v, min, max float64, width int) uint64 {
	steps := float64(mask(width))
	return uint64(math.Round((v - min) / (max - min) * steps))
}

// dequantize inverts quantize up to the rounding error.
func dequantize(q uint64, min, max float64, width int) float64 {
	steps := float64(mask(width))
	return float64(q)/steps*(max-min) + min
}

// readBits draws a uniformly distributed width-bit unsigned integer from r.
func readBits(r io.Reader, width int) (uint64, error) {
	var buf [8]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint64(buf[:]) & mask(width), nil
}

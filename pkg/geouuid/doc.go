// Package geouuid provides a 128-bit, lexicographically sortable identifier
// that encodes a geographic coordinate, a timestamp, and a random
// disambiguator.
//
// # Format
//
// The UUID is 16 bytes big-endian. Of its 128 bits, 6 are fixed markers
// (the standard UUID version nibble at absolute bits 48-51, value 0111, and
// the variant bits at 64-65, value 10); the remaining 122 bits are payload:
//
//   - 48-bit timestamp, milliseconds since the Unix epoch
//   - 25-bit longitude, linear fixed-point over [-180, 180]
//   - 24-bit latitude, linear fixed-point over [-90, 90]
//   - 25-bit random disambiguator
//
// Timestamp, longitude, and latitude are bit-interleaved round-robin,
// most-significant bit first, with each field's MSB aligned to the
// timestamp's MSB round. The random bits follow as a contiguous tail. The
// timestamp therefore dominates the identifier's most-significant bits, so
// byte-wise comparison of two UUIDs preserves chronological order.
//
// # Precision
//
// Latitude and longitude survive a round trip within range/(2^width-1)
// degrees (about 1e-5 degrees for both fields). The timestamp round-trips
// exactly at millisecond resolution. The random field carries no meaning
// and is re-drawn on every encode.
//
// Usage
//
//	u, err := geouuid.New(40.6892, -74.0445)
//	s := u.String()              // "0613c5b9-..." canonical 8-4-4-4-12 form
//	lat, lon, t := geouuid.Decode(u)
//
// For deterministic output, construct a Codec with a fixed clock and
// entropy source:
//
//	c := geouuid.NewCodec(
//	    geouuid.WithClock(func() time.Time { return fixed }),
//	    geouuid.WithEntropy(bytes.NewReader(seed)),
//	)
//	u, err := c.Encode(lat, lon)
package geouuid

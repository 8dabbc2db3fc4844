package geouuid_test

import (
	"errors"
	"math/rand"
	"testing"
	"time"

	"github.com/bitner/geotemporal-uuid/pkg/geouuid"
	"github.com/stretchr/testify/require"
)

// constEntropy fills every read with a single byte value.
type constEntropy byte

func (c constEntropy) Read(p []byte) (int, error) {
	for i := range p {
		p[i] = byte(c)
	}
	return len(p), nil
}

type failingEntropy struct{}

func (failingEntropy) Read([]byte) (int, error) { return 0, errors.New("entropy exhausted") }

// Quantization error bounds from the field widths.
const (
	latBound = 180.0 / float64(1<<24-1)
	lonBound = 360.0 / float64(1<<25-1)
)

func TestRoundTripScenario(t *testing.T) {
	at := time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC)
	u, err := geouuid.NewAt(40.6892, -74.0445, at)
	require.NoError(t, err)

	lat, lon, decoded := geouuid.Decode(u)
	require.InDelta(t, 40.6892, lat, 1e-4)
	require.InDelta(t, -74.0445, lon, 1e-4)
	require.True(t, decoded.Equal(at), "want %v, got %v", at, decoded)
}

func TestRoundTripQuantizationBound(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 500; i++ {
		lat := rng.Float64()*180 - 90
		lon := rng.Float64()*360 - 180
		ms := rng.Int63n(1 << 48)

		u, err := geouuid.NewAt(lat, lon, time.UnixMilli(ms))
		require.NoError(t, err)

		gotLat, gotLon, gotT := geouuid.Decode(u)
		require.InDelta(t, lat, gotLat, latBound)
		require.InDelta(t, lon, gotLon, lonBound)
		require.Equal(t, ms, gotT.UnixMilli())
	}
}

func TestBoundaryCoordinates(t *testing.T) {
	at := time.UnixMilli(1_600_000_000_000)
	for _, tc := range []struct{ lat, lon float64 }{
		{-90, -180},
		{90, 180},
		{-90, 180},
		{90, -180},
	} {
		u, err := geouuid.NewAt(tc.lat, tc.lon, at)
		require.NoError(t, err)
		lat, lon, _ := geouuid.Decode(u)
		require.InDelta(t, tc.lat, lat, latBound)
		require.InDelta(t, tc.lon, lon, lonBound)
	}
}

func TestTimeDominantOrdering(t *testing.T) {
	// Worst case for the random tail: the earlier instant gets all-ones
	// entropy, the later one all-zeros. The timestamp still dominates.
	earlier := geouuid.NewCodec(geouuid.WithEntropy(constEntropy(0xff)))
	later := geouuid.NewCodec(geouuid.WithEntropy(constEntropy(0x00)))

	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 200; i++ {
		lat := rng.Float64()*180 - 90
		lon := rng.Float64()*360 - 180
		t1 := rng.Int63n(1 << 47)
		t2 := t1 + 1 + rng.Int63n(1<<20)

		u1, err := earlier.EncodeAt(lat, lon, time.UnixMilli(t1))
		require.NoError(t, err)
		u2, err := later.EncodeAt(lat, lon, time.UnixMilli(t2))
		require.NoError(t, err)
		require.Negative(t, u1.Compare(u2), "t1=%d t2=%d", t1, t2)
	}
}

func TestRangeRejection(t *testing.T) {
	for _, tc := range []struct{ lat, lon float64 }{
		{91, 0},
		{-91, 0},
		{0, 181},
		{0, -181},
	} {
		_, err := geouuid.New(tc.lat, tc.lon)
		require.ErrorIs(t, err, geouuid.ErrOutOfRange, "lat=%v lon=%v", tc.lat, tc.lon)
	}
}

func TestGoldenExtremes(t *testing.T) {
	// All-zero payload: only the version and variant markers remain.
	c := geouuid.NewCodec(geouuid.WithEntropy(constEntropy(0x00)))
	u, err := c.EncodeAt(-90, -180, time.UnixMilli(0))
	require.NoError(t, err)
	require.Equal(t, "00000000-0000-7000-8000-000000000000", u.String())

	// All-one payload: everything set except the zero marker bits 48 and 65.
	c = geouuid.NewCodec(geouuid.WithEntropy(constEntropy(0xff)))
	u, err = c.EncodeAt(90, 180, time.UnixMilli(1<<48-1))
	require.NoError(t, err)
	require.Equal(t, "ffffffff-ffff-7fff-bfff-ffffffffffff", u.String())
}

func TestEncodeDeterministic(t *testing.T) {
	at := time.Date(2024, 6, 1, 12, 30, 0, 0, time.UTC)
	mk := func() geouuid.UUID {
		c := geouuid.NewCodec(
			geouuid.WithClock(func() time.Time { return at }),
			geouuid.WithEntropy(constEntropy(0xa5)),
		)
		u, err := c.Encode(51.5074, -0.1278)
		require.NoError(t, err)
		return u
	}
	require.Equal(t, mk(), mk())
}

func TestReservedBitsConstant(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for i := 0; i < 200; i++ {
		u, err := geouuid.NewAt(
			rng.Float64()*180-90,
			rng.Float64()*360-180,
			time.UnixMilli(rng.Int63n(1<<48)),
		)
		require.NoError(t, err)
		require.Equal(t, byte(0x7), u[6]>>4, "version nibble in %s", u)
		require.Equal(t, byte(0x2), u[8]>>6, "variant bits in %s", u)
		require.Equal(t, 7, u.Version())
		require.Equal(t, 2, u.Variant())
	}
}

func TestReservedBitsIgnoredOnDecode(t *testing.T) {
	u, err := geouuid.NewAt(40.6892, -74.0445, time.UnixMilli(1_609_459_200_000))
	require.NoError(t, err)
	lat, lon, at := geouuid.Decode(u)

	// Flip every reserved bit; the decoded triple must not move.
	tampered := u
	tampered[6] ^= 0xf0 // bits 48-51
	tampered[8] ^= 0xc0 // bits 64-65
	gotLat, gotLon, gotT := geouuid.Decode(tampered)
	require.Equal(t, lat, gotLat)
	require.Equal(t, lon, gotLon)
	require.True(t, gotT.Equal(at))
}

func TestTimestampWraps(t *testing.T) {
	// Instants past the 48-bit field truncate rather than error.
	u, err := geouuid.NewAt(0, 0, time.UnixMilli(1<<48+12345))
	require.NoError(t, err)
	_, _, at := geouuid.Decode(u)
	require.Equal(t, int64(12345), at.UnixMilli())
}

func TestDecodeTotal(t *testing.T) {
	rng := rand.New(rand.NewSource(4))
	for i := 0; i < 500; i++ {
		var u geouuid.UUID
		rng.Read(u[:])
		lat, lon, at := geouuid.Decode(u)
		require.GreaterOrEqual(t, lat, -90.0)
		require.LessOrEqual(t, lat, 90.0)
		require.GreaterOrEqual(t, lon, -180.0)
		require.LessOrEqual(t, lon, 180.0)
		require.False(t, at.IsZero())
	}
}

func TestEncodeEntropyFailure(t *testing.T) {
	c := geouuid.NewCodec(geouuid.WithEntropy(failingEntropy{}))
	_, err := c.Encode(0, 0)
	require.Error(t, err)
	require.NotErrorIs(t, err, geouuid.ErrOutOfRange)
}

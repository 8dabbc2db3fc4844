// Package timearg resolves the polymorphic time argument accepted at the
// CLI and host-embedding boundaries into a concrete time.Time. The codec
// itself only ever sees the resolved instant.
package timearg

import (
	"fmt"
	"strconv"
	"time"
)

// Parse interprets a non-empty time argument string. Two forms are accepted:
// an integer number of milliseconds since the Unix epoch, or an ISO-8601
// (RFC 3339) timestamp. The result is in UTC.
func Parse(s string) (time.Time, error) {
	if ms, err := strconv.ParseInt(s, 10, 64); err == nil {
		return time.UnixMilli(ms).UTC(), nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid time %q: want unix milliseconds or ISO-8601", s)
	}
	return t.UTC(), nil
}

// FromMillis converts a possibly fractional millisecond count (as a JS host
// hands it over) into a time.Time in UTC. Sub-millisecond precision is kept;
// the codec truncates to whole milliseconds when encoding.
func FromMillis(ms float64) time.Time {
	return time.Unix(0, int64(ms*float64(time.Millisecond))).UTC()
}

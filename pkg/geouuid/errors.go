package geouuid

import "errors"

var (
	// ErrOutOfRange reports a latitude or longitude outside its closed
	// domain. Raised only by encode.
	ErrOutOfRange = errors.New("coordinate out of range")

	// ErrMalformed reports input that is not a 16-byte value or a 32-hex-digit
	// string. Raised only when parsing; decoding a structurally valid UUID
	// never fails.
	ErrMalformed = errors.New("malformed geotemporal uuid")
)

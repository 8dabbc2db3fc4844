//go:build js && wasm

// The geouuid-wasm binary exposes the codec to a JavaScript host. It
// registers two functions on the global object:
//
//	generateUUID(lat, lon, time) -> string | Error
//	decodeUUID(str)              -> [lat, lon, time_ms] | Error
//
// The time argument may be undefined, null, a number of milliseconds, a
// numeric string of milliseconds, or an ISO-8601 string. Failures are
// returned as JS Error values so the host can throw them.
package main

import (
	"syscall/js"
	"time"

	"github.com/bitner/geotemporal-uuid/internal/timearg"
	"github.com/bitner/geotemporal-uuid/pkg/geouuid"
)

var codec = geouuid.NewCodec()

func main() {
	js.Global().Set("generateUUID", js.FuncOf(generateUUID))
	js.Global().Set("decodeUUID", js.FuncOf(decodeUUID))
	select {}
}

func generateUUID(_ js.Value, args []js.Value) any {
	if len(args) < 2 || args[0].Type() != js.TypeNumber || args[1].Type() != js.TypeNumber {
		return jsError("generateUUID(lat, lon, time?): lat and lon must be numbers")
	}
	lat := args[0].Float()
	lon := args[1].Float()

	var (
		at  time.Time
		err error
	)
	switch {
	case len(args) < 3 || args[2].IsNull() || args[2].IsUndefined():
		at = time.Now()
	case args[2].Type() == js.TypeNumber:
		at = timearg.FromMillis(args[2].Float())
	case args[2].Type() == js.TypeString:
		at, err = timearg.Parse(args[2].String())
		if err != nil {
			return jsError(err.Error())
		}
	default:
		return jsError("invalid time argument; expected number (ms), string (ISO/ms), null, or undefined")
	}

	u, err := codec.EncodeAt(lat, lon, at)
	if err != nil {
		return jsError(err.Error())
	}
	return u.String()
}

func decodeUUID(_ js.Value, args []js.Value) any {
	if len(args) < 1 || args[0].Type() != js.TypeString {
		return jsError("decodeUUID(str): str must be a string")
	}
	u, err := geouuid.Parse(args[0].String())
	if err != nil {
		return jsError(err.Error())
	}
	lat, lon, at := codec.Decode(u)
	return []any{lat, lon, float64(at.UnixMilli())}
}

func jsError(msg string) js.Value {
	return js.Global().Get("Error").New(msg)
}

package exif

import (
	"encoding/binary"
	"strings"

	"golang.org/x/text/encoding/charmap"
)

// decodeValue interprets one IFD entry's value. raw is the entry's 4-byte
// value-or-offset field exactly as it appears in the stream. Values whose
// total size fits in 4 bytes live inline in raw; larger values live at
// tiffStart+offset inside data.
//
// The boolean result is false when the entry cannot be decoded: unknown
// type code, truncated value bytes, or an offset outside the buffer. A
// failed value never aborts the surrounding IFD walk.
func decodeValue(order binary.ByteOrder, typ uint16, count uint32, raw []byte, data []byte, tiffStart int) (any, bool) {
	size := int64(typeWidth(typ)) * int64(count)

	var val []byte
	if size <= 4 {
		// Inline value: the first size bytes of the raw field. This is
		// byte-identical to re-packing the decoded u32 in stream order
		// and slicing, without the round trip.
		val = raw[:size]
	} else {
		start := int64(tiffStart) + int64(order.Uint32(raw))
		end := start + size
		if start < int64(tiffStart) || end > int64(len(data)) {
			return nil, false
		}
		val = data[start:end]
	}

	switch typ {
	case typeASCII:
		s, err := charmap.ISO8859_1.NewDecoder().String(string(val))
		if err != nil {
			return nil, false
		}
		return strings.Trim(s, "\x00"), true

	case typeShort:
		if len(val) < 2 {
			return nil, false
		}
		return order.Uint16(val[:2]), true

	case typeLong:
		if len(val) < 4 {
			return nil, false
		}
		return order.Uint32(val[:4]), true

	case typeRational:
		// Only the first rational pair is read, even when count > 1.
		// A multi-component value such as a degrees/minutes/seconds
		// triple therefore reports just its first component.
		if len(val) < 8 {
			return nil, false
		}
		num := order.Uint32(val[0:4])
		den := order.Uint32(val[4:8])
		if den == 0 {
			return float64(0), true
		}
		return float64(num) / float64(den), true
	}

	return nil, false
}

// meaningful reports whether a decoded value should be inserted into a
// record: empty strings and zero numbers are dropped rather than defaulted.
func meaningful(v any) bool {
	switch n := v.(type) {
	case string:
		return n != ""
	case uint16:
		return n != 0
	case uint32:
		return n != 0
	case float64:
		return n != 0
	}
	return v != nil
}

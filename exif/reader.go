// Package exif decodes the TIFF/EXIF tag structure embedded in JPEG and
// TIFF files: byte-order detection, the IFD0 walk, typed value decoding,
// and GPS coordinate resolution.
//
// The decoder is deliberately tolerant: structural mismatches (no APP1
// segment, wrong byte-order marker) produce empty results, and truncated
// or malformed entries abort only the smallest enclosing unit, surfacing
// as warnings rather than errors. Sub-IFDs and vendor makernotes are not
// followed; only tags listed in [Registry] and [GPSRegistry] are kept.
package exif

import (
	"bytes"
	"encoding/binary"
	"fmt"

	"github.com/tsawler/metaprobe/model"
)

// app1Marker starts a JPEG APP1 segment, the conventional EXIF carrier.
var app1Marker = []byte{0xFF, 0xE1}

// exifHeader identifies an APP1 segment as EXIF rather than XMP or other
// application data.
var exifHeader = []byte("Exif\x00\x00")

// ifdEntrySize is the fixed size of one IFD entry: tag (2), type (2),
// count (4), value-or-offset (4).
const ifdEntrySize = 12

// Decode walks the EXIF structure in data and returns the recognized EXIF
// and GPS fields in IFD entry order. It never fails: a buffer with no EXIF
// payload yields two empty sections and no warnings, while truncated input
// yields whatever decoded cleanly plus a warning per aborted unit.
func Decode(data []byte) (exifSec, gpsSec *model.Section, warnings []string) {
	exifSec = model.NewSection()
	gpsSec = model.NewSection()

	tiffStart, ok := findTIFF(data)
	if !ok {
		return exifSec, gpsSec, nil
	}

	if len(data) < tiffStart+8 {
		warnings = append(warnings, "truncated TIFF header")
		return exifSec, gpsSec, warnings
	}

	var order binary.ByteOrder
	switch {
	case data[tiffStart] == 'I' && data[tiffStart+1] == 'I':
		order = binary.LittleEndian
	case data[tiffStart] == 'M' && data[tiffStart+1] == 'M':
		order = binary.BigEndian
	default:
		// Not a TIFF stream after all; nothing to report.
		return exifSec, gpsSec, nil
	}

	ifdOffset := order.Uint32(data[tiffStart+4 : tiffStart+8])
	warnings = append(warnings, walkIFD(data, tiffStart, ifdOffset, order, exifSec, gpsSec)...)

	return exifSec, gpsSec, warnings
}

// findTIFF locates the start of the TIFF header inside data. A raw TIFF
// file carries the header at offset 0; a JPEG carries it 10 bytes after
// the APP1 marker (2 marker + 2 length + 6 identifier bytes).
func findTIFF(data []byte) (int, bool) {
	if len(data) >= 4 {
		le := data[0] == 'I' && data[1] == 'I' && data[2] == 42 && data[3] == 0
		be := data[0] == 'M' && data[1] == 'M' && data[2] == 0 && data[3] == 42
		if le || be {
			return 0, true
		}
	}

	idx := bytes.Index(data, app1Marker)
	if idx < 0 {
		return 0, false
	}
	if len(data) < idx+10 || !bytes.Equal(data[idx+4:idx+10], exifHeader) {
		return 0, false
	}
	return idx + 10, true
}

// walkIFD reads the entry count at tiffStart+ifdOffset and decodes that
// many fixed-size entries, routing recognized tags into the EXIF or GPS
// section. Out-of-bounds reads abort the walk; a bad single value only
// skips that entry.
func walkIFD(data []byte, tiffStart int, ifdOffset uint32, order binary.ByteOrder, exifSec, gpsSec *model.Section) []string {
	var warnings []string

	pos := int64(tiffStart) + int64(ifdOffset)
	if pos < 0 || pos+2 > int64(len(data)) {
		return []string{fmt.Sprintf("IFD offset %d outside buffer", ifdOffset)}
	}

	numEntries := int(order.Uint16(data[pos : pos+2]))
	for i := 0; i < numEntries; i++ {
		entryPos := pos + 2 + int64(i)*ifdEntrySize
		if entryPos+ifdEntrySize > int64(len(data)) {
			warnings = append(warnings, fmt.Sprintf("IFD truncated after %d of %d entries", i, numEntries))
			break
		}
		entry := data[entryPos : entryPos+ifdEntrySize]

		tag := order.Uint16(entry[0:2])
		typ := order.Uint16(entry[2:4])
		count := order.Uint32(entry[4:8])
		raw := entry[8:12]

		name, isGPS := "", false
		if n, ok := Registry[tag]; ok {
			name = n
		} else if n, ok := GPSRegistry[tag]; ok {
			name, isGPS = n, true
		} else {
			continue
		}

		value, ok := decodeValue(order, typ, count, raw, data, tiffStart)
		if !ok {
			warnings = append(warnings, fmt.Sprintf("unreadable value for tag %s (type %d, count %d)", name, typ, count))
			continue
		}
		if !meaningful(value) {
			continue
		}

		if isGPS {
			gpsSec.Set(name, value)
		} else {
			exifSec.Set(name, value)
		}
	}

	return warnings
}

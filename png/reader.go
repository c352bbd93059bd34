// Package png walks the chunk sequence of a PNG stream and extracts image
// header fields and textual key/value chunks. Chunk checksums are skipped,
// not validated.
package png

import (
	"bytes"
	"encoding/binary"
	"fmt"

	"golang.org/x/text/encoding/charmap"

	"github.com/tsawler/metaprobe/model"
)

// signature is the fixed 8-byte prefix of every PNG stream.
var signature = []byte{0x89, 'P', 'N', 'G', 0x0D, 0x0A, 0x1A, 0x0A}

// chunkOverhead is the per-chunk framing: 4 length + 4 type + 4 CRC bytes.
const chunkOverhead = 12

// Decode walks the chunks in data and returns the extracted fields: IHDR
// dimensions and color information, plus one field per tEXt chunk keyed by
// its Latin-1 key. It never fails: a buffer without the PNG signature
// yields an empty section, and a chunk extending past the buffer stops the
// walk with a warning, keeping everything parsed up to that point.
func Decode(data []byte) (*model.Section, []string) {
	sec := model.NewSection()

	if !bytes.HasPrefix(data, signature) {
		return sec, nil
	}

	var warnings []string
	pos := len(signature)

	for pos < len(data) {
		if pos+8 > len(data) {
			warnings = append(warnings, fmt.Sprintf("truncated chunk header at offset %d", pos))
			break
		}
		length := int64(binary.BigEndian.Uint32(data[pos : pos+4]))
		chunkType := string(data[pos+4 : pos+8])

		payloadEnd := int64(pos) + 8 + length
		if payloadEnd > int64(len(data)) {
			warnings = append(warnings, fmt.Sprintf("chunk %q at offset %d declares %d payload bytes past end of buffer", chunkType, pos, length))
			break
		}
		payload := data[pos+8 : payloadEnd]

		switch chunkType {
		case "IHDR":
			decodeIHDR(payload, sec, &warnings)
		case "tEXt":
			decodeTEXT(payload, sec)
		case "IEND":
			return sec, warnings
		}

		pos += chunkOverhead + int(length)
	}

	return sec, warnings
}

// decodeIHDR extracts width, height, bit depth and color type from an
// image header payload.
func decodeIHDR(payload []byte, sec *model.Section, warnings *[]string) {
	if len(payload) < 10 {
		*warnings = append(*warnings, fmt.Sprintf("IHDR payload too short (%d bytes)", len(payload)))
		return
	}
	sec.Set("width", binary.BigEndian.Uint32(payload[0:4]))
	sec.Set("height", binary.BigEndian.Uint32(payload[4:8]))
	sec.Set("bit_depth", payload[8])
	sec.Set("color_type", payload[9])
}

// decodeTEXT splits a tEXt payload at its first NUL into a Latin-1 key and
// value. Payloads without a keyed prefix are ignored.
func decodeTEXT(payload []byte, sec *model.Section) {
	null := bytes.IndexByte(payload, 0)
	if null <= 0 {
		return
	}
	key, err := charmap.ISO8859_1.NewDecoder().String(string(payload[:null]))
	if err != nil {
		return
	}
	value, err := charmap.ISO8859_1.NewDecoder().String(string(payload[null+1:]))
	if err != nil {
		return
	}
	sec.Set(key, value)
}

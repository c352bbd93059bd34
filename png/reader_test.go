package png

import (
	"bytes"
	"encoding/binary"
	"testing"
)

// chunk frames a payload as a PNG chunk with a garbage CRC; the decoder
// never validates checksums.
func chunk(t *testing.T, chunkType string, payload []byte) []byte {
	t.Helper()

	out := make([]byte, 0, len(payload)+12)
	length := make([]byte, 4)
	binary.BigEndian.PutUint32(length, uint32(len(payload)))
	out = append(out, length...)
	out = append(out, chunkType...)
	out = append(out, payload...)
	out = append(out, 0xDE, 0xAD, 0xBE, 0xEF)
	return out
}

// ihdrPayload builds an IHDR payload for the given geometry.
func ihdrPayload(width, height uint32, bitDepth, colorType byte) []byte {
	p := make([]byte, 13)
	binary.BigEndian.PutUint32(p[0:4], width)
	binary.BigEndian.PutUint32(p[4:8], height)
	p[8] = bitDepth
	p[9] = colorType
	return p
}

// buildPNG concatenates the PNG signature and the given chunks.
func buildPNG(t *testing.T, chunks ...[]byte) []byte {
	t.Helper()

	out := append([]byte(nil), signature...)
	for _, c := range chunks {
		out = append(out, c...)
	}
	return out
}

func TestDecode_IHDR(t *testing.T) {
	data := buildPNG(t,
		chunk(t, "IHDR", ihdrPayload(800, 600, 8, 2)),
		chunk(t, "IEND", nil),
	)

	sec, warnings := Decode(data)
	if len(warnings) != 0 {
		t.Fatalf("warnings = %v, want none", warnings)
	}

	tests := []struct {
		key  string
		want any
	}{
		{"width", uint32(800)},
		{"height", uint32(600)},
		{"bit_depth", byte(8)},
		{"color_type", byte(2)},
	}
	for _, tt := range tests {
		if got, _ := sec.Get(tt.key); got != tt.want {
			t.Errorf("%s = %v, want %v", tt.key, got, tt.want)
		}
	}
}

func TestDecode_TextChunks(t *testing.T) {
	data := buildPNG(t,
		chunk(t, "IHDR", ihdrPayload(1, 1, 8, 0)),
		chunk(t, "tEXt", []byte("Author\x00Ada Lovelace")),
		chunk(t, "tEXt", []byte("Software\x00metaprobe")),
		chunk(t, "tEXt", []byte("no separator here")), // ignored
		chunk(t, "tEXt", []byte("\x00leading nul")),   // ignored: empty key
		chunk(t, "IEND", nil),
	)

	sec, warnings := Decode(data)
	if len(warnings) != 0 {
		t.Fatalf("warnings = %v, want none", warnings)
	}

	if v, _ := sec.GetString("Author"); v != "Ada Lovelace" {
		t.Errorf("Author = %q, want %q", v, "Ada Lovelace")
	}
	if v, _ := sec.GetString("Software"); v != "metaprobe" {
		t.Errorf("Software = %q, want %q", v, "metaprobe")
	}
	if sec.Len() != 6 {
		t.Errorf("section has %d fields (%v), want 6", sec.Len(), sec.Keys())
	}
}

func TestDecode_Latin1Text(t *testing.T) {
	// 0xE9 is e-acute in Latin-1.
	data := buildPNG(t,
		chunk(t, "tEXt", append([]byte("Comment\x00caf"), 0xE9)),
		chunk(t, "IEND", nil),
	)

	sec, _ := Decode(data)
	if v, _ := sec.GetString("Comment"); v != "café" {
		t.Errorf("Comment = %q, want %q", v, "café")
	}
}

func TestDecode_NoSignature(t *testing.T) {
	tests := [][]byte{
		nil,
		[]byte("GIF89a"),
		[]byte{0x89, 'P', 'N', 'G'}, // too short
		bytes.Repeat([]byte{0}, 64),
	}
	for _, data := range tests {
		sec, warnings := Decode(data)
		if sec.Len() != 0 {
			t.Errorf("Decode(%q) produced fields %v, want none", data, sec.Keys())
		}
		if len(warnings) != 0 {
			t.Errorf("Decode(%q) warnings = %v, want none", data, warnings)
		}
	}
}

func TestDecode_StopsAtIEND(t *testing.T) {
	data := buildPNG(t,
		chunk(t, "IHDR", ihdrPayload(1, 2, 8, 0)),
		chunk(t, "IEND", nil),
		chunk(t, "tEXt", []byte("After\x00the end")),
	)

	sec, _ := Decode(data)
	if _, ok := sec.Get("After"); ok {
		t.Error("chunks after IEND must not be parsed")
	}
}

func TestDecode_TruncatedChunkKeepsEarlierChunks(t *testing.T) {
	overlong := chunk(t, "tEXt", []byte("Key\x00value"))
	// Inflate the declared length so the payload runs past the buffer.
	binary.BigEndian.PutUint32(overlong[0:4], 0xFFFF)

	data := buildPNG(t,
		chunk(t, "IHDR", ihdrPayload(800, 600, 8, 2)),
		overlong,
	)

	sec, warnings := Decode(data)
	if v, _ := sec.Get("width"); v != uint32(800) {
		t.Errorf("width = %v, want 800 (chunks before the truncation survive)", v)
	}
	if len(warnings) != 1 {
		t.Errorf("warnings = %v, want exactly one", warnings)
	}
}

func TestDecode_TruncatedHeader(t *testing.T) {
	data := buildPNG(t, chunk(t, "IHDR", ihdrPayload(1, 1, 8, 0)))
	// Leave 3 dangling bytes that cannot hold a chunk header.
	data = append(data, 0x00, 0x00, 0x00)

	sec, warnings := Decode(data)
	if sec.Len() != 4 {
		t.Errorf("section has %d fields, want the 4 IHDR fields", sec.Len())
	}
	if len(warnings) != 1 {
		t.Errorf("warnings = %v, want one for the dangling bytes", warnings)
	}
}

func TestDecode_ShortIHDR(t *testing.T) {
	data := buildPNG(t,
		chunk(t, "IHDR", []byte{0, 0, 0, 1}), // 4 bytes, far too short
		chunk(t, "IEND", nil),
	)

	sec, warnings := Decode(data)
	if sec.Len() != 0 {
		t.Errorf("fields = %v, want none from a short IHDR", sec.Keys())
	}
	if len(warnings) != 1 {
		t.Errorf("warnings = %v, want one", warnings)
	}
}

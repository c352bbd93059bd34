// Package id3 reads the ID3v2 header at the start of an MP3 stream.
// Only the version bytes are decoded; frame parsing is out of scope.
package id3

import (
	"bytes"
	"fmt"

	"github.com/tsawler/metaprobe/model"
)

// DefaultPrefix is how much of the file the reader inspects. The ID3v2
// header sits in the first ten bytes; the prefix is generous so callers
// can reuse a buffer they already read.
const DefaultPrefix = 4096

// magic identifies an ID3v2 tag block.
var magic = []byte("ID3")

// Scrape reads the ID3v2 version from the leading prefix bytes of data.
// A non-positive prefix falls back to DefaultPrefix. A buffer without
// the ID3 magic yields an empty section; a buffer cut off inside the
// header yields an empty section with a warning.
func Scrape(data []byte, prefix int) (*model.Section, []string) {
	sec := model.NewSection()

	if prefix <= 0 {
		prefix = DefaultPrefix
	}
	if len(data) > prefix {
		data = data[:prefix]
	}

	if !bytes.HasPrefix(data, magic) {
		return sec, nil
	}
	if len(data) < 5 {
		return sec, []string{"header truncated before version bytes"}
	}

	sec.Set("id3_version", fmt.Sprintf("2.%d.%d", data[3], data[4]))
	return sec, nil
}

// Package imageinfo probes dimensions of image formats that carry no
// tag/chunk metadata worth walking by hand (BMP, GIF, WebP). It decodes
// only the image header, never pixel data.
package imageinfo

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"

	"github.com/tsawler/metaprobe/model"
)

// Probe reads the image header from data and returns its dimensions and
// format name. An unrecognized stream yields an empty section without a
// warning; a recognized stream with a corrupt header yields an empty
// section and a warning.
func Probe(data []byte) (*model.Section, []string) {
	sec := model.NewSection()

	cfg, name, err := image.DecodeConfig(bytes.NewReader(data))
	if err == image.ErrFormat {
		return sec, nil
	}
	if err != nil {
		return sec, []string{fmt.Sprintf("reading header: %v", err)}
	}

	sec.Set("width", cfg.Width)
	sec.Set("height", cfg.Height)
	sec.Set("format", name)
	return sec, nil
}

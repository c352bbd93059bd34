// Package format provides file format detection for the metaprobe library.
package format

import (
	"archive/zip"
	"bytes"
	"path/filepath"
	"strings"
)

// Format represents a supported file format.
type Format int

const (
	// Unknown indicates an unrecognized format.
	Unknown Format = iota
	// JPEG indicates a JPEG image (EXIF carrier).
	JPEG
	// TIFF indicates a raw TIFF image (EXIF carrier).
	TIFF
	// PNG indicates a PNG image.
	PNG
	// PDF indicates a PDF document.
	PDF
	// MP3 indicates an MP3 audio file (ID3 carrier).
	MP3
	// DOCX indicates a Microsoft Word (.docx) document.
	DOCX
	// XLSX indicates a Microsoft Excel (.xlsx) document.
	XLSX
	// PPTX indicates a Microsoft PowerPoint (.pptx) document.
	PPTX
	// HTML indicates an HTML document.
	HTML
	// BMP indicates a Windows bitmap image.
	BMP
	// GIF indicates a GIF image.
	GIF
	// WEBP indicates a WebP image.
	WEBP
)

// String returns the string representation of the format.
func (f Format) String() string {
	switch f {
	case JPEG:
		return "JPEG"
	case TIFF:
		return "TIFF"
	case PNG:
		return "PNG"
	case PDF:
		return "PDF"
	case MP3:
		return "MP3"
	case DOCX:
		return "DOCX"
	case XLSX:
		return "XLSX"
	case PPTX:
		return "PPTX"
	case HTML:
		return "HTML"
	case BMP:
		return "BMP"
	case GIF:
		return "GIF"
	case WEBP:
		return "WEBP"
	default:
		return "Unknown"
	}
}

// Extension returns the typical file extension for the format.
func (f Format) Extension() string {
	switch f {
	case JPEG:
		return ".jpg"
	case TIFF:
		return ".tiff"
	case PNG:
		return ".png"
	case PDF:
		return ".pdf"
	case MP3:
		return ".mp3"
	case DOCX:
		return ".docx"
	case XLSX:
		return ".xlsx"
	case PPTX:
		return ".pptx"
	case HTML:
		return ".html"
	case BMP:
		return ".bmp"
	case GIF:
		return ".gif"
	case WEBP:
		return ".webp"
	default:
		return ""
	}
}

// Detect determines file format from filename extension.
func Detect(filename string) Format {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".jpg", ".jpeg":
		return JPEG
	case ".tif", ".tiff":
		return TIFF
	case ".png":
		return PNG
	case ".pdf":
		return PDF
	case ".mp3":
		return MP3
	case ".docx":
		return DOCX
	case ".xlsx":
		return XLSX
	case ".pptx":
		return PPTX
	case ".html", ".htm":
		return HTML
	case ".bmp":
		return BMP
	case ".gif":
		return GIF
	case ".webp":
		return WEBP
	default:
		return Unknown
	}
}

// pngSignature is the fixed 8-byte prefix of every PNG stream.
var pngSignature = []byte{0x89, 'P', 'N', 'G', 0x0D, 0x0A, 0x1A, 0x0A}

// DetectFromMagic checks leading magic bytes to determine format.
// This provides more reliable detection than extension-based detection
// when a file has a missing or misleading extension. ZIP-based formats
// (DOCX, XLSX, PPTX) need content inspection and resolve through
// detectZIPFormat; plain "PK" magic alone returns Unknown.
func DetectFromMagic(data []byte) Format {
	if len(data) < 4 {
		return Unknown
	}

	switch {
	case data[0] == 0xFF && data[1] == 0xD8 && data[2] == 0xFF:
		return JPEG
	case bytes.HasPrefix(data, []byte("II*\x00")) || bytes.HasPrefix(data, []byte("MM\x00*")):
		return TIFF
	case bytes.HasPrefix(data, pngSignature):
		return PNG
	case bytes.HasPrefix(data, []byte("%PDF")):
		return PDF
	case bytes.HasPrefix(data, []byte("ID3")):
		return MP3
	case bytes.HasPrefix(data, []byte("BM")):
		return BMP
	case bytes.HasPrefix(data, []byte("GIF8")):
		return GIF
	case len(data) >= 12 && bytes.HasPrefix(data, []byte("RIFF")) && bytes.Equal(data[8:12], []byte("WEBP")):
		return WEBP
	case data[0] == 0x50 && data[1] == 0x4B && data[2] == 0x03 && data[3] == 0x04:
		return detectZIPFormat(data)
	case detectHTMLMagic(data):
		return HTML
	}

	return Unknown
}

// detectHTMLMagic checks if the data looks like HTML content.
func detectHTMLMagic(data []byte) bool {
	// Trim leading whitespace
	start := 0
	for start < len(data) && (data[start] == ' ' || data[start] == '\t' || data[start] == '\n' || data[start] == '\r') {
		start++
	}
	if start >= len(data) {
		return false
	}
	data = data[start:]

	upper := strings.ToUpper(string(data))
	if strings.HasPrefix(upper, "<!DOCTYPE HTML") {
		return true
	}
	if strings.HasPrefix(upper, "<HTML") {
		return true
	}
	// XML declaration followed by html-like content could be XHTML
	if strings.HasPrefix(upper, "<?XML") && strings.Contains(upper[:min(500, len(upper))], "<HTML") {
		return true
	}

	return false
}

// detectZIPFormat inspects a ZIP archive held in memory to determine
// whether it is DOCX, XLSX, or PPTX.
func detectZIPFormat(data []byte) Format {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return Unknown
	}

	for _, f := range zr.File {
		switch {
		case strings.HasPrefix(f.Name, "word/"):
			return DOCX
		case strings.HasPrefix(f.Name, "xl/"):
			return XLSX
		case strings.HasPrefix(f.Name, "ppt/"):
			return PPTX
		}
	}

	return Unknown
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

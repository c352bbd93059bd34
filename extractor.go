package metaprobe

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tsawler/metaprobe/exif"
	"github.com/tsawler/metaprobe/format"
	"github.com/tsawler/metaprobe/htmldoc"
	"github.com/tsawler/metaprobe/id3"
	"github.com/tsawler/metaprobe/imageinfo"
	"github.com/tsawler/metaprobe/model"
	"github.com/tsawler/metaprobe/ocr"
	"github.com/tsawler/metaprobe/officedoc"
	"github.com/tsawler/metaprobe/pdfdoc"
	"github.com/tsawler/metaprobe/png"
)

// Extractor provides a fluent interface for extracting metadata from
// image, audio and document files. Each configuration method returns a
// new Extractor instance, making it safe for concurrent use and allowing
// method chaining.
type Extractor struct {
	// Source
	filename string
	data     []byte
	inMemory bool

	// Configuration
	options ExtractOptions

	// Accumulated error (fail-fast)
	err error
}

// clone creates a shallow copy of the Extractor with a copy of options.
// This ensures immutability - each chain method returns a new instance.
func (e *Extractor) clone() *Extractor {
	return &Extractor{
		filename: e.filename,
		data:     e.data,
		inMemory: e.inMemory,
		options:  e.options.clone(),
		err:      e.err,
	}
}

// ============================================================================
// Configuration Methods (return new Extractor instance)
// ============================================================================

// WithOCR enables optical character recognition for image formats. The
// recognized text is attached to the record as an additional "ocr"
// section. When the library was built without the ocr build tag, the
// extraction still succeeds and a warning reports that OCR is disabled.
//
// Example:
//
//	rec, warnings, err := metaprobe.Open("scan.png").WithOCR().Record()
func (e *Extractor) WithOCR() *Extractor {
	newExt := e.clone()
	newExt.options.withOCR = true
	return newExt
}

// OCRLanguage sets the language model used for OCR, in Tesseract
// notation ("eng", "eng+fra", ...). It implies WithOCR.
//
// Example:
//
//	rec, warnings, err := metaprobe.Open("scan.png").OCRLanguage("deu").Record()
func (e *Extractor) OCRLanguage(lang string) *Extractor {
	newExt := e.clone()
	newExt.options.withOCR = true
	newExt.options.ocrLanguage = lang
	return newExt
}

// PDFPrefix limits how many bytes from the start of a PDF are searched
// for the document information dictionary. Larger values find metadata
// buried deeper in the file at the cost of scanning more data.
//
// Example:
//
//	rec, warnings, err := metaprobe.Open("report.pdf").PDFPrefix(65536).Record()
func (e *Extractor) PDFPrefix(n int) *Extractor {
	newExt := e.clone()
	newExt.options.pdfPrefix = n
	return newExt
}

// MP3Prefix limits how many bytes from the start of an MP3 are examined
// for the ID3 header.
//
// Example:
//
//	rec, warnings, err := metaprobe.Open("track.mp3").MP3Prefix(1024).Record()
func (e *Extractor) MP3Prefix(n int) *Extractor {
	newExt := e.clone()
	newExt.options.mp3Prefix = n
	return newExt
}

// ============================================================================
// Terminal Methods (perform extraction)
// ============================================================================

// Record reads the file, dispatches it to the decoder matching its
// format and returns the extracted metadata record. Exactly one decoder
// runs per file; formats nothing claims yield a record with identity
// fields only.
//
// The error is non-nil only for file access problems. Malformed content
// inside a recognized file is reported through warnings instead, and the
// record retains whatever was readable.
func (e *Extractor) Record() (*model.Record, []Warning, error) {
	if e.err != nil {
		return nil, nil, e.err
	}

	data := e.data
	if !e.inMemory {
		var err error
		data, err = os.ReadFile(e.filename)
		if err != nil {
			return nil, nil, fmt.Errorf("reading %s: %w", e.filename, err)
		}
	}

	rec := model.NewRecord(
		filepath.Base(e.filename),
		e.filename,
		int64(len(data)),
		strings.ToLower(strings.TrimPrefix(filepath.Ext(e.filename), ".")),
	)

	f := format.Detect(e.filename)
	if f == format.Unknown {
		f = format.DetectFromMagic(data)
	}

	var warnings []Warning

	switch f {
	case format.JPEG, format.TIFF:
		exifSec, gpsSec, msgs := exif.Decode(data)
		rec.AddSection("exif", exifSec)
		rec.AddSection("gps", gpsSec)
		if gpsSec != nil && gpsSec.Len() > 0 {
			rec.AddCoordinates(exif.ResolveCoordinates(gpsSec))
		}
		warnings = append(warnings, wrapWarnings("exif", msgs)...)

	case format.PNG:
		sec, msgs := png.Decode(data)
		rec.AddSection("png", sec)
		warnings = append(warnings, wrapWarnings("png", msgs)...)

	case format.PDF:
		sec, msgs := pdfdoc.Scrape(data, e.options.pdfPrefix)
		rec.AddSection("pdf", sec)
		warnings = append(warnings, wrapWarnings("pdf", msgs)...)

	case format.MP3:
		sec, msgs := id3.Scrape(data, e.options.mp3Prefix)
		rec.AddSection("mp3", sec)
		warnings = append(warnings, wrapWarnings("mp3", msgs)...)

	case format.DOCX, format.XLSX, format.PPTX:
		sec, msgs := officedoc.Scrape(data)
		rec.AddSection("office", sec)
		warnings = append(warnings, wrapWarnings("office", msgs)...)

	case format.HTML:
		sec, msgs := htmldoc.Scrape(data)
		rec.AddSection("html", sec)
		warnings = append(warnings, wrapWarnings("html", msgs)...)

	case format.BMP, format.GIF, format.WEBP:
		sec, msgs := imageinfo.Probe(data)
		rec.AddSection("image", sec)
		warnings = append(warnings, wrapWarnings("image", msgs)...)
	}

	if e.options.withOCR && isImageFormat(f) {
		sec, msg := e.recognizeText(data)
		rec.AddSection("ocr", sec)
		if msg != "" {
			warnings = append(warnings, Warning{Decoder: "ocr", Message: msg})
		}
	}

	return rec, warnings, nil
}

// JSON runs the extraction and returns the record rendered as indented
// JSON. Identity fields come first, followed by the metadata sections in
// the order they were decoded.
//
// Example:
//
//	js, warnings, err := metaprobe.Open("photo.jpg").JSON()
func (e *Extractor) JSON() (string, []Warning, error) {
	rec, warnings, err := e.Record()
	if err != nil {
		return "", warnings, err
	}
	out, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return "", warnings, fmt.Errorf("encoding record: %w", err)
	}
	return string(out), warnings, nil
}

// recognizeText runs OCR over the image bytes. A failure never fails the
// extraction; it is reported as a warning message instead.
func (e *Extractor) recognizeText(data []byte) (*model.Section, string) {
	client, err := ocr.New()
	if err != nil {
		return nil, err.Error()
	}
	defer client.Close()

	if err := client.SetLanguage(e.options.ocrLanguage); err != nil {
		return nil, err.Error()
	}

	sec, err := client.Recognize(data)
	if err != nil {
		return nil, err.Error()
	}
	return sec, ""
}

// isImageFormat reports whether f is a raster image format OCR can read.
func isImageFormat(f format.Format) bool {
	switch f {
	case format.JPEG, format.TIFF, format.PNG, format.BMP, format.GIF, format.WEBP:
		return true
	}
	return false
}

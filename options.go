package metaprobe

import (
	"github.com/tsawler/metaprobe/id3"
	"github.com/tsawler/metaprobe/pdfdoc"
)

// ExtractOptions holds configuration for metadata extraction.
type ExtractOptions struct {
	// OCR
	withOCR     bool
	ocrLanguage string

	// Scraper prefix windows (bytes searched from the start of the file)
	pdfPrefix int
	mp3Prefix int
}

// defaultOptions returns the default extraction options.
func defaultOptions() ExtractOptions {
	return ExtractOptions{
		withOCR:     false,
		ocrLanguage: "eng",
		pdfPrefix:   pdfdoc.DefaultPrefix,
		mp3Prefix:   id3.DefaultPrefix,
	}
}

// clone creates a copy of ExtractOptions.
func (o ExtractOptions) clone() ExtractOptions {
	return ExtractOptions{
		withOCR:     o.withOCR,
		ocrLanguage: o.ocrLanguage,
		pdfPrefix:   o.pdfPrefix,
		mp3Prefix:   o.mp3Prefix,
	}
}

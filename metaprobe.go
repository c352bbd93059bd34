// Package metaprobe provides a fluent API for extracting embedded metadata
// (camera settings, GPS position, image dimensions, document properties)
// from binary and container file formats, by decoding their internal
// tag/chunk structures directly from raw bytes.
//
// Basic usage:
//
//	rec, warnings, err := metaprobe.Open("photo.jpg").Record()
//	if err != nil {
//	    // handle error
//	}
//	if len(warnings) > 0 {
//	    log.Println("Warnings:", metaprobe.FormatWarnings(warnings))
//	}
//	fmt.Println(rec.Section("exif"))
//
// With options:
//
//	js, _, err := metaprobe.Open("scan.png").
//	    WithOCR().
//	    OCRLanguage("eng+fra").
//	    JSON()
//
// For advanced use cases, the lower-level decoder packages (exif, png,
// pdfdoc, ...) are also available.
package metaprobe

// Open prepares an Extractor for the file at filename. The file is not
// touched until a terminal operation such as Record() or JSON() runs.
//
// Example:
//
//	rec, warnings, err := metaprobe.Open("photo.jpg").Record()
func Open(filename string) *Extractor {
	return &Extractor{
		filename: filename,
		options:  defaultOptions(),
	}
}

// FromBytes prepares an Extractor over a buffer already held in memory.
// The filename is used only for identity fields and extension dispatch;
// no file is opened.
//
// Example:
//
//	rec, warnings, err := metaprobe.FromBytes("photo.jpg", data).Record()
func FromBytes(filename string, data []byte) *Extractor {
	return &Extractor{
		filename: filename,
		data:     data,
		inMemory: true,
		options:  defaultOptions(),
	}
}

// Must is a helper that wraps a terminal call such as Record() or JSON()
// and panics if the error is non-nil. Warnings are discarded. It is
// intended for scripts and tests where error handling would be cumbersome.
//
// Example:
//
//	rec := metaprobe.Must(metaprobe.Open("photo.jpg").Record())
func Must[T any](val T, _ []Warning, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}

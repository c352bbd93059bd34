// Command metaprobe extracts embedded metadata from a file and prints it
// as a colorized summary, optionally writing the full record as JSON.
//
// Usage:
//
//	metaprobe [flags] FILE
//
// Flags:
//
//	-o FILE    write the full record as indented JSON to FILE
//	-json      print JSON to stdout instead of the summary
//	-ocr       run OCR over image files (requires an ocr-enabled build)
//	-lang      OCR language model (default "eng")
//	-no-color  disable ANSI colors in the summary
//	-demo      print a canned example record and exit
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/tsawler/metaprobe"
	"github.com/tsawler/metaprobe/model"
)

func main() {
	var (
		outFile   = flag.String("o", "", "write the record as JSON to `file`")
		asJSON    = flag.Bool("json", false, "print JSON instead of the summary")
		withOCR   = flag.Bool("ocr", false, "run OCR over image files")
		ocrLang   = flag.String("lang", "eng", "OCR language model")
		noColor   = flag.Bool("no-color", false, "disable ANSI colors")
		pdfPrefix = flag.Int("pdf-prefix", 0, "bytes of a PDF to search for metadata (0 = default)")
		demo      = flag.Bool("demo", false, "print a canned example record and exit")
	)
	flag.Usage = usage
	flag.Parse()

	if *demo {
		newPrinter(os.Stdout, !*noColor).printRecord(demoRecord())
		return
	}

	if flag.NArg() != 1 {
		usage()
		os.Exit(2)
	}

	ext := metaprobe.Open(flag.Arg(0))
	if *withOCR {
		ext = ext.OCRLanguage(*ocrLang)
	}
	if *pdfPrefix > 0 {
		ext = ext.PDFPrefix(*pdfPrefix)
	}

	rec, warnings, err := ext.Record()
	if err != nil {
		fmt.Fprintf(os.Stderr, "metaprobe: %v\n", err)
		os.Exit(1)
	}

	p := newPrinter(os.Stdout, !*noColor)

	js, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "metaprobe: %v\n", err)
		os.Exit(1)
	}

	if *asJSON {
		fmt.Println(string(js))
	} else {
		p.printRecord(rec)
	}

	if *outFile != "" {
		if err := os.WriteFile(*outFile, append(js, '\n'), 0o644); err != nil {
			fmt.Fprintf(os.Stderr, "metaprobe: writing %s: %v\n", *outFile, err)
			os.Exit(1)
		}
		p.printNote(fmt.Sprintf("record written to %s", *outFile))
	}

	for _, w := range warnings {
		p.printWarning(w.String())
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: metaprobe [flags] FILE\n\n")
	fmt.Fprintf(os.Stderr, "Extract embedded metadata (EXIF, GPS, PNG chunks, PDF/ID3/Office\n")
	fmt.Fprintf(os.Stderr, "properties) from FILE.\n\nFlags:\n")
	flag.PrintDefaults()
}

// demoRecord builds a sample record showing the summary layout without
// needing a file on disk.
func demoRecord() *model.Record {
	rec := model.NewRecord("sample.jpg", "/photos/sample.jpg", 245760, "jpg")

	exif := model.NewSection()
	exif.Set("Make", "Canon")
	exif.Set("Model", "EOS R5")
	exif.Set("DateTime", "2024:06:14 09:12:45")
	exif.Set("FNumber", 2.8)
	rec.AddSection("exif", exif)

	gps := model.NewSection()
	gps.Set("GPSLatitude", 48.8584)
	gps.Set("GPSLatitudeRef", "N")
	gps.Set("GPSLongitude", 2.2945)
	gps.Set("GPSLongitudeRef", "E")
	rec.AddSection("gps", gps)

	rec.AddCoordinates(&model.Coordinates{
		Latitude:  48.8584,
		Longitude: 2.2945,
		MapLink:   "https://www.google.com/maps?q=48.8584,2.2945",
	})
	return rec
}

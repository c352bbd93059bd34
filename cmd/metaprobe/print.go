package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/tsawler/metaprobe/model"
)

// ANSI escape sequences for the summary output.
const (
	ansiReset  = "\033[0m"
	ansiBold   = "\033[1m"
	ansiCyan   = "\033[36m"
	ansiGreen  = "\033[32m"
	ansiYellow = "\033[33m"
)

// printer renders a record as a human-readable summary. Colors can be
// switched off for pipes and logs.
type printer struct {
	w     io.Writer
	color bool
}

func newPrinter(w io.Writer, color bool) *printer {
	return &printer{w: w, color: color}
}

func (p *printer) paint(code, s string) string {
	if !p.color {
		return s
	}
	return code + s + ansiReset
}

func (p *printer) printRecord(rec *model.Record) {
	fmt.Fprintln(p.w, p.paint(ansiBold+ansiCyan, rec.Filename))
	fmt.Fprintf(p.w, "  %s %s\n", p.paint(ansiBold, "path:"), rec.Filepath)
	fmt.Fprintf(p.w, "  %s %s\n", p.paint(ansiBold, "size:"), formatSize(rec.Size))
	if rec.Extension != "" {
		fmt.Fprintf(p.w, "  %s %s\n", p.paint(ansiBold, "type:"), rec.Extension)
	}

	names := rec.SectionNames()
	if len(names) == 0 {
		fmt.Fprintln(p.w, p.paint(ansiYellow, "  no metadata found"))
		return
	}

	for _, name := range names {
		fmt.Fprintf(p.w, "\n%s\n", p.paint(ansiBold+ansiGreen, "["+name+"]"))
		if name == "coordinates" {
			if c := rec.Coordinates(); c != nil {
				fmt.Fprintf(p.w, "  %-24s %v\n", "latitude", c.Latitude)
				fmt.Fprintf(p.w, "  %-24s %v\n", "longitude", c.Longitude)
				fmt.Fprintf(p.w, "  %-24s %s\n", "google_maps", c.MapLink)
			}
			continue
		}
		sec := rec.Section(name)
		if sec == nil {
			continue
		}
		for _, key := range sec.Keys() {
			v, _ := sec.Get(key)
			fmt.Fprintf(p.w, "  %-24s %v\n", key, v)
		}
	}
}

func (p *printer) printWarning(msg string) {
	fmt.Fprintf(p.w, "%s %s\n", p.paint(ansiYellow, "warning:"), msg)
}

func (p *printer) printNote(msg string) {
	fmt.Fprintln(p.w, p.paint(ansiGreen, msg))
}

// formatSize renders a byte count in a human-friendly unit.
func formatSize(n int64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := int64(unit), 0
	for v := n / unit; v >= unit; v /= unit {
		div *= unit
		exp++
	}
	value := fmt.Sprintf("%.1f", float64(n)/float64(div))
	value = strings.TrimSuffix(value, ".0")
	return fmt.Sprintf("%s %ciB", value, "KMGTPE"[exp])
}

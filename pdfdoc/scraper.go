// Package pdfdoc scrapes document properties from the head of a PDF
// stream. It reads the header version and the literal-string entries of
// the Info dictionary with regular expressions; it is not a PDF parser
// and never follows cross-reference structures.
package pdfdoc

import (
	"bytes"
	"regexp"
	"strings"

	"golang.org/x/text/encoding/charmap"

	"github.com/tsawler/metaprobe/model"
)

// DefaultPrefix is how much of the file the scraper inspects. Info
// dictionaries written by common producers sit near the start of the file;
// anything beyond the prefix is ignored.
const DefaultPrefix = 10000

// header is the required PDF file signature.
var header = []byte("%PDF")

// infoPatterns maps Info-dictionary names to output field names. Only
// literal-string values (parenthesized, no escapes) are matched — the same
// simplification the regex form implies. Order fixes section field order.
var infoPatterns = []struct {
	re  *regexp.Regexp
	key string
}{
	{regexp.MustCompile(`/Title\s*\(([^)]+)\)`), "title"},
	{regexp.MustCompile(`/Author\s*\(([^)]+)\)`), "author"},
	{regexp.MustCompile(`/Subject\s*\(([^)]+)\)`), "subject"},
	{regexp.MustCompile(`/Creator\s*\(([^)]+)\)`), "creator"},
	{regexp.MustCompile(`/Producer\s*\(([^)]+)\)`), "producer"},
	{regexp.MustCompile(`/CreationDate\s*\(([^)]+)\)`), "creation_date"},
	{regexp.MustCompile(`/ModDate\s*\(([^)]+)\)`), "modification_date"},
}

// Scrape extracts the PDF version and Info-dictionary properties from
// the leading prefix bytes of data. A non-positive prefix falls back to
// DefaultPrefix. A buffer that does not start with the PDF header yields
// an empty section and no warnings.
func Scrape(data []byte, prefix int) (*model.Section, []string) {
	sec := model.NewSection()

	if prefix <= 0 {
		prefix = DefaultPrefix
	}
	if len(data) > prefix {
		data = data[:prefix]
	}

	if !bytes.HasPrefix(data, header) {
		return sec, nil
	}

	end := 8
	if len(data) < end {
		end = len(data)
	}
	if v := strings.TrimSpace(asciiOnly(data[:end])); v != "" {
		sec.Set("version", v)
	}

	for _, p := range infoPatterns {
		m := p.re.FindSubmatch(data)
		if m == nil {
			continue
		}
		value, err := charmap.ISO8859_1.NewDecoder().String(string(m[1]))
		if err != nil {
			continue
		}
		sec.Set(p.key, value)
	}

	return sec, nil
}

// asciiOnly drops non-ASCII bytes, mirroring a lossy ASCII decode of the
// version line.
func asciiOnly(b []byte) string {
	var sb strings.Builder
	for _, c := range b {
		if c < 0x80 {
			sb.WriteByte(c)
		}
	}
	return sb.String()
}

package pdfdoc

import (
	"strings"
	"testing"
)

func TestScrape_InfoDictionary(t *testing.T) {
	data := []byte("%PDF-1.7\n" +
		"1 0 obj\n<< /Title (Quarterly Report) /Author (Jordan Blake)\n" +
		"/Creator (LibreOffice Writer) /Producer (LibreOffice 7.4)\n" +
		"/CreationDate (D:20240115103045) >>\nendobj\n")

	sec, warnings := Scrape(data, DefaultPrefix)
	if len(warnings) != 0 {
		t.Fatalf("warnings = %v, want none", warnings)
	}

	tests := []struct {
		key, want string
	}{
		{"version", "%PDF-1.7"},
		{"title", "Quarterly Report"},
		{"author", "Jordan Blake"},
		{"creator", "LibreOffice Writer"},
		{"producer", "LibreOffice 7.4"},
		{"creation_date", "D:20240115103045"},
	}
	for _, tt := range tests {
		if got, _ := sec.GetString(tt.key); got != tt.want {
			t.Errorf("%s = %q, want %q", tt.key, got, tt.want)
		}
	}
	if _, ok := sec.Get("subject"); ok {
		t.Error("absent /Subject must not produce a field")
	}
}

func TestScrape_FieldOrderIsFixed(t *testing.T) {
	// Properties appear out of order in the stream but the section keeps
	// the canonical order.
	data := []byte("%PDF-1.4\n<< /Producer (p) /Title (t) /Author (a) >>")
	sec, _ := Scrape(data, DefaultPrefix)

	want := []string{"version", "title", "author", "producer"}
	got := sec.Keys()
	if len(got) != len(want) {
		t.Fatalf("keys = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("keys[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestScrape_NotAPDF(t *testing.T) {
	for _, data := range [][]byte{
		nil,
		[]byte("plain text"),
		[]byte("PDF without the percent"),
	} {
		sec, warnings := Scrape(data, DefaultPrefix)
		if sec.Len() != 0 {
			t.Errorf("Scrape(%q) fields = %v, want none", data, sec.Keys())
		}
		if len(warnings) != 0 {
			t.Errorf("Scrape(%q) warnings = %v, want none", data, warnings)
		}
	}
}

func TestScrape_ShortHeader(t *testing.T) {
	sec, _ := Scrape([]byte("%PDF"), DefaultPrefix)
	if v, _ := sec.GetString("version"); v != "%PDF" {
		t.Errorf("version = %q, want %q", v, "%PDF")
	}
}

func TestScrape_Latin1Value(t *testing.T) {
	data := append([]byte("%PDF-1.5\n/Author (Ren"), 0xE9)
	data = append(data, []byte(")")...)

	sec, _ := Scrape(data, DefaultPrefix)
	if v, _ := sec.GetString("author"); v != "René" {
		t.Errorf("author = %q, want %q", v, "René")
	}
}

func TestScrape_DeepTitleWithinPrefix(t *testing.T) {
	data := []byte("%PDF-1.6\n" + strings.Repeat("x", 2000) + "\n/Title (Deep Title)")
	sec, _ := Scrape(data, DefaultPrefix)
	if v, _ := sec.GetString("title"); v != "Deep Title" {
		t.Errorf("title = %q, want %q", v, "Deep Title")
	}
}

func TestScrape_IgnoresContentBeyondPrefix(t *testing.T) {
	data := []byte("%PDF-1.6\n" + strings.Repeat("x", 200) + "\n/Title (Out Of Reach)")
	sec, _ := Scrape(data, 100)
	if _, ok := sec.Get("title"); ok {
		t.Error("title beyond the prefix must not produce a field")
	}
	if v, _ := sec.GetString("version"); v != "%PDF-1.6" {
		t.Errorf("version = %q, want %q", v, "%PDF-1.6")
	}
}

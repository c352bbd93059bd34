package htmldoc

import "testing"

func TestScrape_TitleAndMeta(t *testing.T) {
	data := []byte(`<!DOCTYPE html>
<html>
<head>
  <title> Field Notes </title>
  <meta charset="utf-8">
  <meta name="author" content="Dana Fox">
  <meta name="description" content="Notes from the field">
  <meta property="og:title" content="Field Notes">
  <meta name="empty" content="">
</head>
<body><p>Hello</p></body>
</html>`)

	sec, warnings := Scrape(data)
	if len(warnings) != 0 {
		t.Fatalf("warnings = %v, want none", warnings)
	}

	tests := []struct {
		key, want string
	}{
		{"title", "Field Notes"},
		{"author", "Dana Fox"},
		{"description", "Notes from the field"},
		{"og:title", "Field Notes"},
	}
	for _, tt := range tests {
		if got, _ := sec.GetString(tt.key); got != tt.want {
			t.Errorf("%s = %q, want %q", tt.key, got, tt.want)
		}
	}

	if _, ok := sec.Get("empty"); ok {
		t.Error("meta tag with empty content must not produce a field")
	}
	if _, ok := sec.Get("charset"); ok {
		t.Error("charset meta has no name/content pair and must be skipped")
	}
}

func TestScrape_MalformedHTML(t *testing.T) {
	// The parser is error-correcting: an unclosed head still yields its
	// metadata.
	data := []byte(`<html><head><title>Broken</title><meta name="a" content="b">`)

	sec, warnings := Scrape(data)
	if len(warnings) != 0 {
		t.Fatalf("warnings = %v, want none", warnings)
	}
	if got, _ := sec.GetString("title"); got != "Broken" {
		t.Errorf("title = %q, want %q", got, "Broken")
	}
	if got, _ := sec.GetString("a"); got != "b" {
		t.Errorf("a = %q, want %q", got, "b")
	}
}

func TestScrape_NoHead(t *testing.T) {
	sec, warnings := Scrape([]byte("plain text, no markup at all"))
	if len(warnings) != 0 {
		t.Errorf("warnings = %v, want none", warnings)
	}
	// html.Parse synthesizes an empty head for bare text.
	if sec.Len() != 0 {
		t.Errorf("fields = %v, want none", sec.Keys())
	}
}

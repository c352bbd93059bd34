// Package htmldoc scrapes metadata from HTML documents: the title and the
// name/content pairs of head meta tags. Body content is never extracted.
package htmldoc

import (
	"bytes"
	"strings"

	"golang.org/x/net/html"

	"github.com/tsawler/metaprobe/model"
)

// Scrape parses data as HTML and returns the document title plus one
// field per <meta name=... content=...> or <meta property=... content=...>
// tag found in the head. The html parser is error-correcting, so malformed
// markup degrades to whatever metadata is still recoverable rather than a
// warning.
func Scrape(data []byte) (*model.Section, []string) {
	sec := model.NewSection()

	doc, err := html.Parse(bytes.NewReader(data))
	if err != nil {
		// html.Parse only fails on reader errors, which a bytes.Reader
		// never produces; keep the branch for safety.
		return sec, []string{"parsing document: " + err.Error()}
	}

	scrapeHead(doc, sec)
	return sec, nil
}

// scrapeHead walks the node tree looking for the head element and collects
// its title and meta tags.
func scrapeHead(n *html.Node, sec *model.Section) {
	if n.Type == html.ElementNode && n.Data == "head" {
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if c.Type != html.ElementNode {
				continue
			}
			switch c.Data {
			case "title":
				if title := strings.TrimSpace(textContent(c)); title != "" {
					sec.Set("title", title)
				}
			case "meta":
				name, content := "", ""
				for _, attr := range c.Attr {
					switch attr.Key {
					case "name", "property":
						name = attr.Val
					case "content":
						content = attr.Val
					}
				}
				if name != "" && content != "" {
					sec.Set(name, content)
				}
			}
		}
		return
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		scrapeHead(c, sec)
	}
}

// textContent returns the concatenated text of a node's subtree.
func textContent(n *html.Node) string {
	if n.Type == html.TextNode {
		return n.Data
	}
	var sb strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		sb.WriteString(textContent(c))
	}
	return sb.String()
}

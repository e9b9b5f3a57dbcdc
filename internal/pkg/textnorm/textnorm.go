// Package textnorm extracts readable plain text from markup documents.
package textnorm

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// chrome are element types that carry no document text.
var chrome = []string{"script", "style", "header", "footer", "nav"}

// Normalize strips markup and boilerplate from an HTML document and returns
// plain text: chrome elements removed, every line trimmed, runs of double
// spaces treated as phrase breaks, blank lines dropped. Extraction is
// best-effort; malformed markup never fails, and already-plain text passes
// through with only whitespace collapsing. The result is stable under
// repeated normalization.
func Normalize(html string) string {
	text := html
	if doc, err := goquery.NewDocumentFromReader(strings.NewReader(html)); err == nil {
		for _, sel := range chrome {
			doc.Find(sel).Remove()
		}
		text = doc.Text()
	}
	return collapse(text)
}

func collapse(text string) string {
	var out []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		for _, phrase := range strings.Split(line, "  ") {
			phrase = strings.TrimSpace(phrase)
			if phrase != "" {
				out = append(out, phrase)
			}
		}
	}
	return strings.Join(out, "\n")
}

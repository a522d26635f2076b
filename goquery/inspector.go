// Package goquery reads the metadata a page declares about itself.
// It backs classifier-free adds: when the user opts out of the external
// model, the page's own title and meta description fill the record.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/redhoddie/olc"
)

// Ensure Inspector implements olc.Inspector at compile time.
var _ olc.Inspector = (*Inspector)(nil)

// Inspector extracts title and description metadata from HTML.
type Inspector struct{}

// NewInspector creates a new Inspector.
func NewInspector() *Inspector {
	return &Inspector{}
}

// Inspect parses the HTML and returns the page's declared metadata.
// The description is taken from meta[name=description], falling back to
// the og:description property. Missing fields are returned empty.
func (i *Inspector) Inspect(rawHTML string) (*olc.PageMeta, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return nil, err
	}

	meta := &olc.PageMeta{
		Title: strings.TrimSpace(doc.Find("title").First().Text()),
	}

	if desc, ok := doc.Find(`meta[name="description"]`).Attr("content"); ok {
		meta.Description = strings.TrimSpace(desc)
	}
	if meta.Description == "" {
		if desc, ok := doc.Find(`meta[property="og:description"]`).Attr("content"); ok {
			meta.Description = strings.TrimSpace(desc)
		}
	}

	return meta, nil
}

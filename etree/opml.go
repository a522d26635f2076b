// Package etree exports the catalogue as an OPML outline, the common
// interchange format for link collections.
package etree

import (
	"io"
	"strings"
	"time"

	"github.com/beevik/etree"
	"github.com/redhoddie/olc"
)

// Exporter writes links as an OPML 2.0 document.
type Exporter struct{}

// NewExporter creates a new Exporter.
func NewExporter() *Exporter {
	return &Exporter{}
}

// Export writes one outline element per link. Record metadata that OPML
// has no attribute for (type, tags, rating) is carried in category and
// custom attributes so round-tripping tools keep it visible.
func (e *Exporter) Export(w io.Writer, links []*olc.Link) error {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	opml := doc.CreateElement("opml")
	opml.CreateAttr("version", "2.0")

	head := opml.CreateElement("head")
	head.CreateElement("title").SetText("OSINT Link Catalogue")
	head.CreateElement("dateModified").SetText(time.Now().UTC().Format(time.RFC1123Z))

	body := opml.CreateElement("body")
	for _, link := range links {
		outline := body.CreateElement("outline")
		outline.CreateAttr("text", link.Name)
		outline.CreateAttr("type", "link")
		outline.CreateAttr("url", link.URL)
		if link.Description != "" {
			outline.CreateAttr("description", link.Description)
		}
		if link.Type != "" {
			outline.CreateAttr("category", link.Type)
		}
		if len(link.Tags) > 0 {
			outline.CreateAttr("tags", strings.Join(link.Tags, ","))
		}
	}

	doc.Indent(2)
	_, err := doc.WriteTo(w)
	return err
}

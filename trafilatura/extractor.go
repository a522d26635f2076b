// Package trafilatura extracts the main readable content from fetched
// pages so classification prompts can be grounded in actual page text
// rather than the URL alone.
package trafilatura

import (
	"errors"
	"strings"

	"github.com/markusmobius/go-trafilatura"
	"github.com/redhoddie/olc"
)

// Ensure Extractor implements olc.Extractor at compile time.
var _ olc.Extractor = (*Extractor)(nil)

// Extractor wraps go-trafilatura to extract main content from HTML.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract processes raw HTML and returns the page title and main text.
func (e *Extractor) Extract(rawHTML string) (*olc.ExtractResult, error) {
	if rawHTML == "" {
		return nil, errors.New("empty HTML input")
	}

	opts := trafilatura.Options{
		EnableFallback: true,
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), opts)
	if err != nil {
		return nil, err
	}

	return &olc.ExtractResult{
		Title: result.Metadata.Title,
		Text:  strings.TrimSpace(result.ContentText),
	}, nil
}

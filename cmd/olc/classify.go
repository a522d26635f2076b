package main

import (
	"bufio"
	"strings"

	"github.com/redhoddie/olc"
)

// maxExcerptLen caps the page text embedded in a classification prompt.
const maxExcerptLen = 4000

// classifyWithExcerpt fetches the page behind url, extracts its main
// text, and classifies with the excerpt as grounding. Fetch and extract
// failures degrade to URL-only classification.
func classifyWithExcerpt(deps *Dependencies, url string) (*olc.Classification, error) {
	var excerpt string
	if deps.Fetcher != nil && deps.Extractor != nil {
		if html, err := deps.Fetcher.Fetch(deps.Ctx, url); err == nil {
			if extracted, err := deps.Extractor.Extract(html); err == nil {
				excerpt = extracted.Text
				if len(excerpt) > maxExcerptLen {
					excerpt = excerpt[:maxExcerptLen]
				}
			}
		}
	}
	return deps.Classifier.Classify(deps.Ctx, url, excerpt)
}

// readStdinLink returns the first non-empty line of piped input.
func readStdinLink(deps *Dependencies) string {
	if deps.Stdin == nil {
		return ""
	}
	scanner := bufio.NewScanner(deps.Stdin)
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			return line
		}
	}
	return ""
}

// buildLink assembles a record from a normalized URL and a
// classification with defaults already applied.
func buildLink(url string, c *olc.Classification) *olc.Link {
	return &olc.Link{
		URL:             url,
		Name:            c.Name,
		Description:     c.Description,
		Type:            c.Type,
		Subtypes:        c.Subtypes,
		Tags:            c.Tags,
		Roles:           c.Roles,
		Language:        c.Language,
		Cost:            c.Cost,
		RequiresAccount: c.RequiresAccount,
		DataTypes:       c.DataTypes,
		APIAvailable:    c.APIAvailable,
		Metrics:         c.Metrics,
	}
}

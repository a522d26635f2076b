package main

import (
	"fmt"

	"github.com/redhoddie/olc"
)

// Run executes the add command.
func (c *AddCmd) Run(deps *Dependencies) error {
	raw := c.Link
	if raw == "" {
		raw = readStdinLink(deps)
	}
	if raw == "" {
		fmt.Fprintln(deps.Stderr, "error: no domain or URL provided (use -l or pipe one in)")
		return olc.Errorf(olc.EINVALID, "link required")
	}

	url, err := olc.NormalizeURL(raw)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", olc.ErrorMessage(err))
		return err
	}
	host := olc.CanonicalHost(url)

	classification := &olc.Classification{}
	switch {
	case c.Name == "" && c.Desc == "" && c.Type == "" && !c.NoAI:
		if deps.Classifier == nil {
			fmt.Fprintln(deps.Stderr, "GEMINI_API_KEY environment variable not set. Get an API key at https://aistudio.google.com/apikey or pass --no-ai")
			return olc.Errorf(olc.EUNAUTHORIZED, "GEMINI_API_KEY not set")
		}
		fmt.Fprintf(deps.Stdout, "Analyzing %s with AI...\n", url)
		result, err := classifyWithExcerpt(deps, url)
		switch {
		case err == nil:
			classification = result
		case olc.ErrorCode(err) == olc.EINTERNAL:
			// Undecodable model output; keep the entry with defaults only.
			fmt.Fprintf(deps.Stderr, "warning: %s; using default metadata\n", olc.ErrorMessage(err))
		default:
			fmt.Fprintf(deps.Stderr, "error: %s\n", olc.ErrorMessage(err))
			return err
		}
	case c.NoAI && (c.Name == "" || c.Desc == ""):
		// Without the classifier, the page's own metadata is the next
		// best source for a name and description.
		if deps.Fetcher != nil && deps.Inspector != nil {
			if html, err := deps.Fetcher.Fetch(deps.Ctx, url); err == nil {
				if meta, err := deps.Inspector.Inspect(html); err == nil {
					classification.Name = meta.Title
					classification.Description = meta.Description
				}
			}
		}
	}

	if c.Name != "" {
		classification.Name = c.Name
	}
	if c.Desc != "" {
		classification.Description = c.Desc
	}
	if c.Type != "" {
		classification.Type = c.Type
	}
	if c.Sub != nil {
		classification.Subtypes = c.Sub
	}
	if c.Tags != nil {
		classification.Tags = c.Tags
	}
	if c.Roles != nil {
		classification.Roles = c.Roles
	}
	if c.Lang != "" {
		classification.Language = c.Lang
	}
	if c.Cost != "" {
		classification.Cost = c.Cost
	}
	if c.Account != nil {
		classification.RequiresAccount = *c.Account
	}
	if c.DataTypes != nil {
		classification.DataTypes = c.DataTypes
	}
	if c.API != nil {
		classification.APIAvailable = *c.API
	}
	if c.Rating != nil {
		classification.Metrics.Rating = *c.Rating
	}
	if c.RatingCount != nil {
		classification.Metrics.RatingCount = *c.RatingCount
	}
	classification.ApplyDefaults(host)

	link := buildLink(url, classification)
	if err := deps.Links.CreateLink(deps.Ctx, link); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", olc.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Added entry for %s\n", link.URL)
	return nil
}

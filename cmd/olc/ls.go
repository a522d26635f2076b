package main

import (
	"fmt"
	"strings"

	"github.com/redhoddie/olc"
)

// Run executes the ls command.
func (c *LsCmd) Run(deps *Dependencies) error {
	links, err := deps.Links.FindLinks(deps.Ctx, olc.LinkFilter{})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", olc.ErrorMessage(err))
		return err
	}

	if len(links) == 0 {
		fmt.Fprintln(deps.Stdout, "No entries found.")
		return nil
	}

	printLinkRows(deps, links)
	return nil
}

// printLinkRows renders one line per link, shared by ls and find.
func printLinkRows(deps *Dependencies, links []*olc.Link) {
	for _, l := range links {
		row := fmt.Sprintf("%-30s  %-40s  %s", truncate(l.Name, 30), truncate(l.URL, 40), l.Type)
		if len(l.Tags) > 0 {
			row += "  [" + strings.Join(l.Tags, ", ") + "]"
		}
		if l.Metrics.RatingCount > 0 {
			row += fmt.Sprintf("  %.1f (%d)", l.Metrics.Rating, l.Metrics.RatingCount)
		}
		fmt.Fprintln(deps.Stdout, row)
	}
}

// truncate shortens s to at most n characters, counting runes so
// multibyte names are never cut mid-character.
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-3]) + "..."
}

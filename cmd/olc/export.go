package main

import (
	"encoding/json"
	"fmt"

	"github.com/redhoddie/olc"
)

// Run executes the export command.
func (c *ExportCmd) Run(deps *Dependencies) error {
	links, err := deps.Links.FindLinks(deps.Ctx, olc.LinkFilter{})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", olc.ErrorMessage(err))
		return err
	}

	switch c.Format {
	case "opml":
		if err := deps.Exporter.Export(deps.Stdout, links); err != nil {
			return fmt.Errorf("failed to write OPML: %w", err)
		}
	default:
		data, err := json.MarshalIndent(links, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal links: %w", err)
		}
		fmt.Fprintf(deps.Stdout, "%s\n", data)
	}
	return nil
}

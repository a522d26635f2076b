package main

import (
	"fmt"

	"github.com/redhoddie/olc"
)

// Run executes the find command.
func (c *FindCmd) Run(deps *Dependencies) error {
	links, err := deps.Links.FindLinks(deps.Ctx, olc.LinkFilter{Term: c.Query})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", olc.ErrorMessage(err))
		return err
	}

	if len(links) == 0 {
		fmt.Fprintf(deps.Stdout, "No results for %q\n", c.Query)
		return nil
	}

	printLinkRows(deps, links)
	return nil
}

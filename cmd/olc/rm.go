package main

import (
	"fmt"

	"github.com/redhoddie/olc"
)

// Run executes the rm command.
func (c *RmCmd) Run(deps *Dependencies) error {
	raw := c.Link
	if raw == "" {
		raw = readStdinLink(deps)
	}
	if raw == "" {
		fmt.Fprintln(deps.Stderr, "error: no domain or URL provided (use -l or pipe one in)")
		return olc.Errorf(olc.EINVALID, "link required")
	}

	if err := deps.Links.DeleteLink(deps.Ctx, raw); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", olc.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Deleted entry for %s\n", raw)
	return nil
}

package main

import (
	"fmt"
	"strings"

	"github.com/redhoddie/olc"
)

// Run executes the view command.
func (c *ViewCmd) Run(deps *Dependencies) error {
	link, err := deps.Links.FindLinkByURL(deps.Ctx, c.Link)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", olc.ErrorMessage(err))
		return err
	}

	out := deps.Stdout
	fmt.Fprintf(out, "%s\n", link.Name)
	fmt.Fprintf(out, "%s\n\n", link.URL)
	fmt.Fprintf(out, "%s\n\n", link.Description)
	fmt.Fprintf(out, "Type:             %s\n", link.Type)
	fmt.Fprintf(out, "Subtypes:         %s\n", strings.Join(link.Subtypes, ", "))
	fmt.Fprintf(out, "Tags:             %s\n", strings.Join(link.Tags, ", "))
	fmt.Fprintf(out, "Roles:            %s\n", strings.Join(link.Roles, ", "))
	fmt.Fprintf(out, "Language:         %s\n", link.Language)
	fmt.Fprintf(out, "Cost:             %s\n", link.Cost)
	fmt.Fprintf(out, "Requires account: %t\n", link.RequiresAccount)
	fmt.Fprintf(out, "Data types:       %s\n", strings.Join(link.DataTypes, ", "))
	fmt.Fprintf(out, "API available:    %t\n", link.APIAvailable)
	fmt.Fprintf(out, "Rating:           %.1f (%d ratings)\n", link.Metrics.Rating, link.Metrics.RatingCount)
	fmt.Fprintf(out, "Collected:        %s\n", link.DateCollected.Format("2006-01-02"))
	fmt.Fprintf(out, "Updated:          %s\n", link.DateUpdated.Format("2006-01-02"))
	return nil
}

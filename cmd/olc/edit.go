package main

import (
	"fmt"

	"github.com/redhoddie/olc"
)

// Run executes the edit command.
func (c *EditCmd) Run(deps *Dependencies) error {
	upd := olc.LinkUpdate{
		Name:            c.Name,
		Description:     c.Desc,
		Type:            c.Type,
		Subtypes:        c.Sub,
		Tags:            c.Tags,
		Roles:           c.Roles,
		Language:        c.Lang,
		Cost:            c.Cost,
		RequiresAccount: c.Account,
		DataTypes:       c.DataTypes,
		APIAvailable:    c.API,
		Rating:          c.Rating,
		RatingCount:     c.RatingCount,
	}

	// No field flags means reclassify the link and overwrite every
	// classifier-fillable field.
	if upd == (olc.LinkUpdate{}) {
		if deps.Classifier == nil {
			fmt.Fprintln(deps.Stderr, "GEMINI_API_KEY environment variable not set. Get an API key at https://aistudio.google.com/apikey or pass field flags")
			return olc.Errorf(olc.EUNAUTHORIZED, "GEMINI_API_KEY not set")
		}

		link, err := deps.Links.FindLinkByURL(deps.Ctx, c.Link)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", olc.ErrorMessage(err))
			return err
		}

		fmt.Fprintf(deps.Stdout, "Reclassifying %s with AI...\n", link.URL)
		classification, err := classifyWithExcerpt(deps, link.URL)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", olc.ErrorMessage(err))
			return err
		}

		upd = olc.LinkUpdate{
			Name:            &classification.Name,
			Description:     &classification.Description,
			Type:            &classification.Type,
			Subtypes:        &classification.Subtypes,
			Tags:            &classification.Tags,
			Roles:           &classification.Roles,
			Language:        &classification.Language,
			Cost:            &classification.Cost,
			RequiresAccount: &classification.RequiresAccount,
			DataTypes:       &classification.DataTypes,
			APIAvailable:    &classification.APIAvailable,
			Rating:          &classification.Metrics.Rating,
			RatingCount:     &classification.Metrics.RatingCount,
		}
	}

	link, err := deps.Links.UpdateLink(deps.Ctx, c.Link, upd)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", olc.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Updated entry for %s\n", link.URL)
	return nil
}

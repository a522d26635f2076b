package olc

import (
	"context"
	"fmt"
	"strings"
)

// Classification holds the metadata fields a classifier can fill in for
// a link. Field names mirror the Link record; omitted fields are
// substituted with defaults via ApplyDefaults.
type Classification struct {
	Name            string   `json:"name"`
	Description     string   `json:"description"`
	Type            string   `json:"type"`
	Subtypes        []string `json:"subtypes"`
	Tags            []string `json:"tags"`
	Roles           []string `json:"roles"`
	Language        string   `json:"language"`
	Cost            string   `json:"cost"`
	RequiresAccount bool     `json:"requires_account"`
	DataTypes       []string `json:"data_types"`
	APIAvailable    bool     `json:"api_available"`
	Metrics         Metrics  `json:"metrics"`
}

// ApplyDefaults substitutes a default value for every field the
// classifier omitted. host is the canonical host of the link being
// classified. Cost values the provider spells as "paid,free" or
// "free,paid" are normalized to freemium.
func (c *Classification) ApplyDefaults(host string) {
	if c.Name == "" {
		c.Name = host
	}
	if c.Description == "" {
		c.Description = fmt.Sprintf("Website for %s", host)
	}
	if c.Type == "" {
		c.Type = "website"
	}
	if c.Subtypes == nil {
		c.Subtypes = []string{}
	}
	if c.Tags == nil {
		c.Tags = []string{}
	}
	if c.Roles == nil {
		c.Roles = []string{}
	}
	if c.Language == "" {
		c.Language = "en"
	}
	c.Cost = normalizeCost(c.Cost)
	if c.DataTypes == nil {
		c.DataTypes = []string{}
	}
	if c.Metrics.Rating < 0 || c.Metrics.Rating > 5 {
		c.Metrics.Rating = 0
	}
	if c.Metrics.RatingCount < 0 {
		c.Metrics.RatingCount = 0
	}
}

func normalizeCost(cost string) string {
	switch strings.ToLower(strings.TrimSpace(cost)) {
	case CostPaid:
		return CostPaid
	case CostFreemium, "paid,free", "free,paid":
		return CostFreemium
	default:
		return CostFree
	}
}

// Classifier produces metadata for a link by consulting an external
// model. excerpt is optional page text used to ground the answer; it may
// be empty, in which case the model classifies from the URL alone.
type Classifier interface {
	Classify(ctx context.Context, url string, excerpt string) (*Classification, error)
}

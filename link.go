package olc

import (
	"context"
	"strings"
	"time"
)

// Cost models a resource can have.
const (
	CostFree     = "free"
	CostPaid     = "paid"
	CostFreemium = "freemium"
)

// Metrics holds community rating data for a link.
type Metrics struct {
	Rating      float64 `json:"rating"`
	RatingCount int     `json:"rating_count"`
}

// Link represents one catalogued OSINT resource. The canonical host of
// URL is the uniqueness key across the store.
type Link struct {
	URL             string    `json:"link"`
	Name            string    `json:"name"`
	Description     string    `json:"description"`
	Type            string    `json:"type"`
	Subtypes        []string  `json:"subtypes"`
	Tags            []string  `json:"tags"`
	Roles           []string  `json:"roles"`
	Language        string    `json:"language"`
	Cost            string    `json:"cost"`
	RequiresAccount bool      `json:"requires_account"`
	DataTypes       []string  `json:"data_types"`
	APIAvailable    bool      `json:"api_available"`
	Metrics         Metrics   `json:"metrics"`
	DateCollected   time.Time `json:"date_collected"`
	DateUpdated     time.Time `json:"date_updated"`
}

// Validate returns an error if the link contains invalid fields.
func (l *Link) Validate() error {
	if l.URL == "" {
		return Errorf(EINVALID, "link URL required")
	}
	switch l.Cost {
	case "", CostFree, CostPaid, CostFreemium:
	default:
		return Errorf(EINVALID, "cost must be one of free, paid, freemium")
	}
	if l.Metrics.Rating < 0 || l.Metrics.Rating > 5 {
		return Errorf(EINVALID, "rating must be between 0 and 5")
	}
	if l.Metrics.RatingCount < 0 {
		return Errorf(EINVALID, "rating count must not be negative")
	}
	return nil
}

// Matches reports whether the link matches a case-insensitive substring
// search term across name, URL, canonical host, description, type,
// subtypes, tags, and roles.
func (l *Link) Matches(term string) bool {
	term = strings.ToLower(term)
	if term == "" {
		return true
	}
	fields := []string{
		l.Name,
		l.URL,
		CanonicalHost(l.URL),
		l.Description,
		l.Type,
		strings.Join(l.Subtypes, " "),
		strings.Join(l.Tags, " "),
		strings.Join(l.Roles, " "),
	}
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), term) {
			return true
		}
	}
	return false
}

// LinkService represents a service for managing catalogued links.
type LinkService interface {
	// CreateLink adds a new link to the catalogue.
	// Returns ECONFLICT if a link with the same canonical host exists.
	CreateLink(ctx context.Context, link *Link) error

	// FindLinkByURL retrieves the link matching the canonical host of the
	// given (possibly unnormalized) URL or bare domain.
	// Returns ENOTFOUND if no such link exists.
	FindLinkByURL(ctx context.Context, rawURL string) (*Link, error)

	// FindLinks retrieves links matching the filter in insertion order.
	// An empty filter returns the whole catalogue.
	FindLinks(ctx context.Context, filter LinkFilter) ([]*Link, error)

	// UpdateLink applies the provided fields to an existing link and
	// refreshes its DateUpdated timestamp.
	// Returns ENOTFOUND if no such link exists.
	UpdateLink(ctx context.Context, rawURL string, upd LinkUpdate) (*Link, error)

	// DeleteLink permanently removes a link.
	// Returns ENOTFOUND if no such link exists.
	DeleteLink(ctx context.Context, rawURL string) error
}

// LinkFilter represents a filter for FindLinks.
type LinkFilter struct {
	// Term is matched case-insensitively against the searchable fields
	// of each link (see Link.Matches).
	Term string

	Offset int
	Limit  int
}

// LinkUpdate represents fields that can be updated on a link.
// Nil fields are left untouched.
type LinkUpdate struct {
	Name            *string
	Description     *string
	Type            *string
	Subtypes        *[]string
	Tags            *[]string
	Roles           *[]string
	Language        *string
	Cost            *string
	RequiresAccount *bool
	DataTypes       *[]string
	APIAvailable    *bool
	Rating          *float64
	RatingCount     *int
}

// Apply copies the non-nil update fields onto the link.
func (u LinkUpdate) Apply(l *Link) {
	if u.Name != nil {
		l.Name = *u.Name
	}
	if u.Description != nil {
		l.Description = *u.Description
	}
	if u.Type != nil {
		l.Type = *u.Type
	}
	if u.Subtypes != nil {
		l.Subtypes = *u.Subtypes
	}
	if u.Tags != nil {
		l.Tags = *u.Tags
	}
	if u.Roles != nil {
		l.Roles = *u.Roles
	}
	if u.Language != nil {
		l.Language = *u.Language
	}
	if u.Cost != nil {
		l.Cost = *u.Cost
	}
	if u.RequiresAccount != nil {
		l.RequiresAccount = *u.RequiresAccount
	}
	if u.DataTypes != nil {
		l.DataTypes = *u.DataTypes
	}
	if u.APIAvailable != nil {
		l.APIAvailable = *u.APIAvailable
	}
	if u.Rating != nil {
		l.Metrics.Rating = *u.Rating
	}
	if u.RatingCount != nil {
		l.Metrics.RatingCount = *u.RatingCount
	}
}

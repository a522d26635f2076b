package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redhoddie/olc"
)

// Compile-time interface verification.
var _ olc.LinkService = (*LinkService)(nil)

// LinkService implements olc.LinkService using SQLite.
type LinkService struct {
	db *DB
}

// NewLinkService creates a new LinkService.
func NewLinkService(db *DB) *LinkService {
	return &LinkService{db: db}
}

const linkColumns = `canonical_host, url, name, description, type, subtypes, tags, roles,
	language, cost, requires_account, data_types, api_available,
	rating, rating_count, date_collected, date_updated`

// CreateLink adds a new link to the catalogue.
func (s *LinkService) CreateLink(ctx context.Context, link *olc.Link) error {
	normalized, err := olc.NormalizeURL(link.URL)
	if err != nil {
		return err
	}
	link.URL = normalized

	if err := link.Validate(); err != nil {
		return err
	}

	host := olc.CanonicalHost(link.URL)

	var exists int
	err = s.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM links WHERE canonical_host = ?", host).Scan(&exists)
	if err != nil {
		return err
	}
	if exists > 0 {
		return olc.Errorf(olc.ECONFLICT, "entry for %s already exists", host)
	}

	now := time.Now().UTC()
	link.DateCollected = now
	link.DateUpdated = now

	subtypes, tags, roles, dataTypes, err := encodeLists(link)
	if err != nil {
		return err
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO links (`+linkColumns+`, position)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?,
			(SELECT COALESCE(MAX(position), 0) + 1 FROM links))
	`, host, link.URL, link.Name, link.Description, link.Type,
		subtypes, tags, roles, link.Language, link.Cost,
		link.RequiresAccount, dataTypes, link.APIAvailable,
		link.Metrics.Rating, link.Metrics.RatingCount,
		link.DateCollected.Format(time.RFC3339), link.DateUpdated.Format(time.RFC3339))

	return err
}

// FindLinkByURL retrieves the link matching the canonical host of rawURL.
func (s *LinkService) FindLinkByURL(ctx context.Context, rawURL string) (*olc.Link, error) {
	host := olc.CanonicalHost(rawURL)
	if host == "" {
		return nil, olc.Errorf(olc.EINVALID, "no domain or URL provided")
	}

	row := s.db.QueryRowContext(ctx,
		"SELECT "+linkColumns+" FROM links WHERE canonical_host = ?", host)

	link, err := scanLink(row)
	if err == sql.ErrNoRows {
		return nil, olc.Errorf(olc.ENOTFOUND, "no entry found for %s", host)
	}
	if err != nil {
		return nil, err
	}
	return link, nil
}

// FindLinks retrieves links matching the filter in insertion order.
// Term matching reuses the domain's Matches logic so both backends
// search identically.
func (s *LinkService) FindLinks(ctx context.Context, filter olc.LinkFilter) ([]*olc.Link, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT "+linkColumns+" FROM links ORDER BY position ASC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var links []*olc.Link
	for rows.Next() {
		link, err := scanLink(rows)
		if err != nil {
			return nil, err
		}
		if link.Matches(filter.Term) {
			links = append(links, link)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if filter.Offset > 0 {
		if filter.Offset >= len(links) {
			return []*olc.Link{}, nil
		}
		links = links[filter.Offset:]
	}
	if filter.Limit > 0 && filter.Limit < len(links) {
		links = links[:filter.Limit]
	}
	if links == nil {
		links = []*olc.Link{}
	}

	return links, nil
}

// UpdateLink applies the provided fields to an existing link.
func (s *LinkService) UpdateLink(ctx context.Context, rawURL string, upd olc.LinkUpdate) (*olc.Link, error) {
	link, err := s.FindLinkByURL(ctx, rawURL)
	if err != nil {
		return nil, err
	}

	upd.Apply(link)
	if err := link.Validate(); err != nil {
		return nil, err
	}
	link.DateUpdated = time.Now().UTC()

	subtypes, tags, roles, dataTypes, err := encodeLists(link)
	if err != nil {
		return nil, err
	}

	_, err = s.db.ExecContext(ctx, `
		UPDATE links
		SET name = ?, description = ?, type = ?, subtypes = ?, tags = ?, roles = ?,
			language = ?, cost = ?, requires_account = ?, data_types = ?,
			api_available = ?, rating = ?, rating_count = ?, date_updated = ?
		WHERE canonical_host = ?
	`, link.Name, link.Description, link.Type, subtypes, tags, roles,
		link.Language, link.Cost, link.RequiresAccount, dataTypes,
		link.APIAvailable, link.Metrics.Rating, link.Metrics.RatingCount,
		link.DateUpdated.Format(time.RFC3339), olc.CanonicalHost(link.URL))

	if err != nil {
		return nil, err
	}

	return link, nil
}

// DeleteLink permanently removes a link.
func (s *LinkService) DeleteLink(ctx context.Context, rawURL string) error {
	host := olc.CanonicalHost(rawURL)
	if host == "" {
		return olc.Errorf(olc.EINVALID, "no domain or URL provided")
	}

	result, err := s.db.ExecContext(ctx, "DELETE FROM links WHERE canonical_host = ?", host)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return olc.Errorf(olc.ENOTFOUND, "no entry found for %s", host)
	}

	return nil
}

// scanner abstracts *sql.Row and *sql.Rows for scanLink.
type scanner interface {
	Scan(dest ...any) error
}

func scanLink(row scanner) (*olc.Link, error) {
	var link olc.Link
	var host, subtypes, tags, roles, dataTypes string
	var dateCollected, dateUpdated string

	err := row.Scan(&host, &link.URL, &link.Name, &link.Description, &link.Type,
		&subtypes, &tags, &roles, &link.Language, &link.Cost,
		&link.RequiresAccount, &dataTypes, &link.APIAvailable,
		&link.Metrics.Rating, &link.Metrics.RatingCount,
		&dateCollected, &dateUpdated)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal([]byte(subtypes), &link.Subtypes); err != nil {
		return nil, fmt.Errorf("failed to decode subtypes: %w", err)
	}
	if err := json.Unmarshal([]byte(tags), &link.Tags); err != nil {
		return nil, fmt.Errorf("failed to decode tags: %w", err)
	}
	if err := json.Unmarshal([]byte(roles), &link.Roles); err != nil {
		return nil, fmt.Errorf("failed to decode roles: %w", err)
	}
	if err := json.Unmarshal([]byte(dataTypes), &link.DataTypes); err != nil {
		return nil, fmt.Errorf("failed to decode data_types: %w", err)
	}

	if link.DateCollected, err = time.Parse(time.RFC3339, dateCollected); err != nil {
		return nil, fmt.Errorf("failed to parse date_collected: %w", err)
	}
	if link.DateUpdated, err = time.Parse(time.RFC3339, dateUpdated); err != nil {
		return nil, fmt.Errorf("failed to parse date_updated: %w", err)
	}

	return &link, nil
}

func encodeLists(link *olc.Link) (subtypes, tags, roles, dataTypes string, err error) {
	encode := func(v []string) (string, error) {
		if v == nil {
			v = []string{}
		}
		b, err := json.Marshal(v)
		return string(b), err
	}

	if subtypes, err = encode(link.Subtypes); err != nil {
		return
	}
	if tags, err = encode(link.Tags); err != nil {
		return
	}
	if roles, err = encode(link.Roles); err != nil {
		return
	}
	dataTypes, err = encode(link.DataTypes)
	return
}

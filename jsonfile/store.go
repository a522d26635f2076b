// Package jsonfile provides the default storage backend for olc: a single
// JSON document holding an array of link records, loaded wholesale into
// memory and rewritten atomically on every mutation.
package jsonfile

import (
	"context"
	"encoding/json"
	"os"
	"regexp"
	"time"

	"github.com/redhoddie/olc"
)

// trailingComma matches a comma directly before a closing brace or
// bracket. Hand-edited catalogue files accumulate these; they are
// stripped before decoding instead of rejecting the whole store.
var trailingComma = regexp.MustCompile(`,\s*([}\]])`)

// Ensure Store implements olc.LinkService at compile time.
var _ olc.LinkService = (*Store)(nil)

// Store implements olc.LinkService backed by a JSON document on disk.
// It is not safe for concurrent use by multiple processes: the document
// is rewritten wholesale, so the last writer wins.
type Store struct {
	path    string
	links   []*olc.Link
	corrupt bool
}

// NewStore creates a Store for the JSON document at path.
// Call Open before using the service methods.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Open loads the document into memory. A missing file yields an empty
// catalogue. A file that cannot be decoded also yields an empty
// catalogue rather than an error; Corrupted reports that this happened
// so callers can warn before the next save overwrites the file.
func (s *Store) Open() error {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		s.links = nil
		return nil
	}
	if err != nil {
		return err
	}

	if len(data) == 0 {
		s.links = nil
		return nil
	}

	data = trailingComma.ReplaceAll(data, []byte("$1"))

	var links []*olc.Link
	if err := json.Unmarshal(data, &links); err != nil {
		s.links = nil
		s.corrupt = true
		return nil
	}

	s.links = links
	return nil
}

// Corrupted reports whether Open found an undecodable document and fell
// back to an empty catalogue.
func (s *Store) Corrupted() bool {
	return s.corrupt
}

// Path returns the location of the backing document.
func (s *Store) Path() string {
	return s.path
}

// save rewrites the whole document. The write is atomic: data goes to a
// temp file in the same directory, is synced, then renamed over the
// target, so a crash leaves either the old or the new complete file.
func (s *Store) save() error {
	links := s.links
	if links == nil {
		links = []*olc.Link{}
	}

	data, err := json.MarshalIndent(links, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')

	if err := atomicWriteFile(s.path, data, 0644); err != nil {
		return err
	}

	s.corrupt = false
	return nil
}

// CreateLink adds a new link to the catalogue.
func (s *Store) CreateLink(ctx context.Context, link *olc.Link) error {
	normalized, err := olc.NormalizeURL(link.URL)
	if err != nil {
		return err
	}
	link.URL = normalized

	if err := link.Validate(); err != nil {
		return err
	}

	host := olc.CanonicalHost(link.URL)
	for _, existing := range s.links {
		if olc.CanonicalHost(existing.URL) == host {
			return olc.Errorf(olc.ECONFLICT, "entry for %s already exists", host)
		}
	}

	now := time.Now().UTC()
	link.DateCollected = now
	link.DateUpdated = now

	s.links = append(s.links, cloneLink(link))
	if err := s.save(); err != nil {
		s.links = s.links[:len(s.links)-1]
		return err
	}
	return nil
}

// FindLinkByURL retrieves the link matching the canonical host of rawURL.
func (s *Store) FindLinkByURL(ctx context.Context, rawURL string) (*olc.Link, error) {
	host := olc.CanonicalHost(rawURL)
	if host == "" {
		return nil, olc.Errorf(olc.EINVALID, "no domain or URL provided")
	}
	for _, link := range s.links {
		if olc.CanonicalHost(link.URL) == host {
			return cloneLink(link), nil
		}
	}
	return nil, olc.Errorf(olc.ENOTFOUND, "no entry found for %s", host)
}

// FindLinks retrieves links matching the filter in insertion order.
func (s *Store) FindLinks(ctx context.Context, filter olc.LinkFilter) ([]*olc.Link, error) {
	matched := make([]*olc.Link, 0, len(s.links))
	for _, link := range s.links {
		if link.Matches(filter.Term) {
			matched = append(matched, cloneLink(link))
		}
	}

	if filter.Offset > 0 {
		if filter.Offset >= len(matched) {
			return []*olc.Link{}, nil
		}
		matched = matched[filter.Offset:]
	}
	if filter.Limit > 0 && filter.Limit < len(matched) {
		matched = matched[:filter.Limit]
	}

	return matched, nil
}

// UpdateLink applies the provided fields to an existing link.
func (s *Store) UpdateLink(ctx context.Context, rawURL string, upd olc.LinkUpdate) (*olc.Link, error) {
	host := olc.CanonicalHost(rawURL)
	if host == "" {
		return nil, olc.Errorf(olc.EINVALID, "no domain or URL provided")
	}

	for i, link := range s.links {
		if olc.CanonicalHost(link.URL) != host {
			continue
		}

		updated := cloneLink(link)
		upd.Apply(updated)
		if err := updated.Validate(); err != nil {
			return nil, err
		}
		updated.DateUpdated = time.Now().UTC()

		s.links[i] = updated
		if err := s.save(); err != nil {
			s.links[i] = link
			return nil, err
		}
		return cloneLink(updated), nil
	}

	return nil, olc.Errorf(olc.ENOTFOUND, "no entry found for %s", host)
}

// DeleteLink permanently removes a link.
func (s *Store) DeleteLink(ctx context.Context, rawURL string) error {
	host := olc.CanonicalHost(rawURL)
	if host == "" {
		return olc.Errorf(olc.EINVALID, "no domain or URL provided")
	}

	for i, link := range s.links {
		if olc.CanonicalHost(link.URL) != host {
			continue
		}

		removed := link
		s.links = append(s.links[:i], s.links[i+1:]...)
		if err := s.save(); err != nil {
			s.links = append(s.links[:i], append([]*olc.Link{removed}, s.links[i:]...)...)
			return err
		}
		return nil
	}

	return olc.Errorf(olc.ENOTFOUND, "no entry found for %s", host)
}

// cloneLink returns an independent copy so callers cannot mutate store
// state through returned pointers.
func cloneLink(l *olc.Link) *olc.Link {
	c := *l
	c.Subtypes = append([]string(nil), l.Subtypes...)
	c.Tags = append([]string(nil), l.Tags...)
	c.Roles = append([]string(nil), l.Roles...)
	c.DataTypes = append([]string(nil), l.DataTypes...)
	return &c
}

// Package mock provides function-field mock implementations of the olc
// interfaces for testing.
package mock

import (
	"context"

	"github.com/redhoddie/olc"
)

var _ olc.LinkService = (*LinkService)(nil)

// LinkService is a mock implementation of olc.LinkService.
type LinkService struct {
	CreateLinkFn    func(ctx context.Context, link *olc.Link) error
	FindLinkByURLFn func(ctx context.Context, rawURL string) (*olc.Link, error)
	FindLinksFn     func(ctx context.Context, filter olc.LinkFilter) ([]*olc.Link, error)
	UpdateLinkFn    func(ctx context.Context, rawURL string, upd olc.LinkUpdate) (*olc.Link, error)
	DeleteLinkFn    func(ctx context.Context, rawURL string) error
}

func (s *LinkService) CreateLink(ctx context.Context, link *olc.Link) error {
	return s.CreateLinkFn(ctx, link)
}

func (s *LinkService) FindLinkByURL(ctx context.Context, rawURL string) (*olc.Link, error) {
	return s.FindLinkByURLFn(ctx, rawURL)
}

func (s *LinkService) FindLinks(ctx context.Context, filter olc.LinkFilter) ([]*olc.Link, error) {
	return s.FindLinksFn(ctx, filter)
}

func (s *LinkService) UpdateLink(ctx context.Context, rawURL string, upd olc.LinkUpdate) (*olc.Link, error) {
	return s.UpdateLinkFn(ctx, rawURL, upd)
}

func (s *LinkService) DeleteLink(ctx context.Context, rawURL string) error {
	return s.DeleteLinkFn(ctx, rawURL)
}

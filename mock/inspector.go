package mock

import "github.com/redhoddie/olc"

var _ olc.Inspector = (*Inspector)(nil)

// Inspector is a mock implementation of olc.Inspector.
type Inspector struct {
	InspectFn func(rawHTML string) (*olc.PageMeta, error)
}

func (i *Inspector) Inspect(rawHTML string) (*olc.PageMeta, error) {
	return i.InspectFn(rawHTML)
}

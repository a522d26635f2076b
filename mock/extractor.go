package mock

import "github.com/redhoddie/olc"

var _ olc.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of olc.Extractor.
type Extractor struct {
	ExtractFn func(rawHTML string) (*olc.ExtractResult, error)
}

func (e *Extractor) Extract(rawHTML string) (*olc.ExtractResult, error) {
	return e.ExtractFn(rawHTML)
}

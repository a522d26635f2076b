package mock

import (
	"context"

	"github.com/redhoddie/olc"
)

var _ olc.Classifier = (*Classifier)(nil)

// Classifier is a mock implementation of olc.Classifier.
type Classifier struct {
	ClassifyFn func(ctx context.Context, url string, excerpt string) (*olc.Classification, error)
}

func (c *Classifier) Classify(ctx context.Context, url string, excerpt string) (*olc.Classification, error) {
	return c.ClassifyFn(ctx, url, excerpt)
}

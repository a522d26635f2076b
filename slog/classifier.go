// Package slog provides logging decorators for olc interfaces.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/redhoddie/olc"
)

// Ensure LoggingClassifier implements olc.Classifier.
var _ olc.Classifier = (*LoggingClassifier)(nil)

// LoggingClassifier wraps a Classifier with debug logging for each
// outbound classification call.
type LoggingClassifier struct {
	next   olc.Classifier
	logger *slog.Logger
}

// NewLoggingClassifier creates a new LoggingClassifier.
func NewLoggingClassifier(next olc.Classifier, logger *slog.Logger) *LoggingClassifier {
	return &LoggingClassifier{next: next, logger: logger}
}

// Classify delegates to the wrapped classifier and logs the call.
func (c *LoggingClassifier) Classify(ctx context.Context, url string, excerpt string) (*olc.Classification, error) {
	begin := time.Now()
	classification, err := c.next.Classify(ctx, url, excerpt)
	if err != nil {
		c.logger.Error("classification failed",
			"url", url,
			"duration", time.Since(begin),
			"error", err,
		)
		return nil, err
	}
	c.logger.Info("classification",
		"url", url,
		"type", classification.Type,
		"excerpt_len", len(excerpt),
		"duration", time.Since(begin),
	)
	return classification, nil
}

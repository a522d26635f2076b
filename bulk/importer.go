// Package bulk provides concurrent catalogue import: many URLs are
// classified in parallel while records are written to the store one at
// a time, preserving the single-writer model of the backing document.
package bulk

import (
	"context"

	"github.com/google/uuid"
	"github.com/redhoddie/olc"
	"golang.org/x/sync/errgroup"
)

// maxExcerptLen caps the page text embedded in a classification prompt.
const maxExcerptLen = 4000

// Importer orchestrates a bulk import run.
type Importer struct {
	Links      olc.LinkService
	Classifier olc.Classifier

	// Fetcher and Extractor are optional; when set, page text grounds
	// each classification. Fetch or extract failures degrade to
	// URL-only classification rather than failing the import.
	Fetcher   olc.Fetcher
	Extractor olc.Extractor

	RateLimiter *HostLimiter
	Concurrency int
}

// Result holds the outcome of an import run.
type Result struct {
	// RunID tags all log lines of one import run.
	RunID   string
	Added   int
	Skipped int
	Failed  int
}

// ProgressType indicates the type of progress event.
type ProgressType int

// Progress event types.
const (
	ProgressStarted ProgressType = iota
	ProgressAdded
	ProgressSkipped
	ProgressFailed
	ProgressFinished
)

// ProgressEvent reports progress during an import run.
type ProgressEvent struct {
	Type      ProgressType
	Completed int
	Total     int
	URL       string
	Error     error
}

// ProgressFunc is a callback for reporting import progress.
type ProgressFunc func(event ProgressEvent)

// importResult holds the outcome of classifying a single URL.
type importResult struct {
	position int
	url      string
	link     *olc.Link
	err      error
}

// ImportAll classifies every URL concurrently and adds the resulting
// records to the catalogue. URLs whose canonical host is already
// catalogued (or repeated within the input) are skipped, not fatal.
// Returns an error only when the run as a whole cannot proceed.
func (im *Importer) ImportAll(ctx context.Context, rawURLs []string, progress ProgressFunc) (*Result, error) {
	result := &Result{RunID: uuid.New().String()}

	// Drop input duplicates up front so workers never race to add the
	// same host.
	seen := make(map[string]bool)
	var urls []string
	for _, raw := range rawURLs {
		normalized, err := olc.NormalizeURL(raw)
		if err != nil {
			result.Failed++
			if progress != nil {
				progress(ProgressEvent{Type: ProgressFailed, URL: raw, Error: err})
			}
			continue
		}
		host := olc.CanonicalHost(normalized)
		if seen[host] {
			result.Skipped++
			if progress != nil {
				progress(ProgressEvent{Type: ProgressSkipped, URL: normalized})
			}
			continue
		}
		seen[host] = true
		urls = append(urls, normalized)
	}

	total := len(urls)
	if progress != nil {
		progress(ProgressEvent{Type: ProgressStarted, Total: total})
	}
	if total == 0 {
		if progress != nil {
			progress(ProgressEvent{Type: ProgressFinished, Total: total})
		}
		return result, nil
	}

	concurrency := im.Concurrency
	if concurrency <= 0 {
		concurrency = 4
	}

	resultCh := make(chan importResult, total)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	go func() {
		for i, url := range urls {
			i, url := i, url
			g.Go(func() error {
				resultCh <- im.classifyURL(gctx, i, url)
				return nil
			})
		}
		_ = g.Wait()
		close(resultCh)
	}()

	// Collect classifications, then write sequentially: the store is a
	// single-writer document.
	results := make([]importResult, total)
	for r := range resultCh {
		results[r.position] = r
	}
	if err := ctx.Err(); err != nil {
		return result, err
	}

	completed := 0
	for _, r := range results {
		completed++
		if r.err != nil {
			result.Failed++
			if progress != nil {
				progress(ProgressEvent{Type: ProgressFailed, Completed: completed, Total: total, URL: r.url, Error: r.err})
			}
			continue
		}

		err := im.Links.CreateLink(ctx, r.link)
		switch {
		case err == nil:
			result.Added++
			if progress != nil {
				progress(ProgressEvent{Type: ProgressAdded, Completed: completed, Total: total, URL: r.url})
			}
		case olc.ErrorCode(err) == olc.ECONFLICT:
			result.Skipped++
			if progress != nil {
				progress(ProgressEvent{Type: ProgressSkipped, Completed: completed, Total: total, URL: r.url})
			}
		default:
			result.Failed++
			if progress != nil {
				progress(ProgressEvent{Type: ProgressFailed, Completed: completed, Total: total, URL: r.url, Error: err})
			}
		}
	}

	if progress != nil {
		progress(ProgressEvent{Type: ProgressFinished, Completed: completed, Total: total})
	}
	return result, nil
}

// classifyURL produces a fully populated link record for one URL.
func (im *Importer) classifyURL(ctx context.Context, position int, url string) importResult {
	res := importResult{position: position, url: url}
	host := olc.CanonicalHost(url)

	if im.RateLimiter != nil {
		if err := im.RateLimiter.Wait(ctx, host); err != nil {
			res.err = err
			return res
		}
	}

	var excerpt string
	if im.Fetcher != nil && im.Extractor != nil {
		if html, err := im.Fetcher.Fetch(ctx, url); err == nil {
			if extracted, err := im.Extractor.Extract(html); err == nil {
				excerpt = extracted.Text
				if len(excerpt) > maxExcerptLen {
					excerpt = excerpt[:maxExcerptLen]
				}
			}
		}
	}

	classification, err := im.Classifier.Classify(ctx, url, excerpt)
	if err != nil {
		if olc.ErrorCode(err) == olc.EINTERNAL {
			// Unparsable response: fall back to a defaults-only record.
			classification = &olc.Classification{}
			classification.ApplyDefaults(host)
		} else {
			res.err = err
			return res
		}
	}

	res.link = &olc.Link{
		URL:             url,
		Name:            classification.Name,
		Description:     classification.Description,
		Type:            classification.Type,
		Subtypes:        classification.Subtypes,
		Tags:            classification.Tags,
		Roles:           classification.Roles,
		Language:        classification.Language,
		Cost:            classification.Cost,
		RequiresAccount: classification.RequiresAccount,
		DataTypes:       classification.DataTypes,
		APIAvailable:    classification.APIAvailable,
		Metrics:         classification.Metrics,
	}
	return res
}

package main

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/redhoddie/olc"
	"github.com/redhoddie/olc/bulk"
)

// Run executes the import command.
func (c *ImportCmd) Run(deps *Dependencies) error {
	if deps.Stdin == nil {
		fmt.Fprintln(deps.Stderr, "error: no input; pipe URLs in, one per line")
		return olc.Errorf(olc.EINVALID, "no input piped")
	}

	var urls []string
	scanner := bufio.NewScanner(deps.Stdin)
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			urls = append(urls, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}

	importer := &bulk.Importer{
		Links:       deps.Links,
		Classifier:  deps.Classifier,
		Fetcher:     deps.Fetcher,
		Extractor:   deps.Extractor,
		RateLimiter: bulk.NewHostLimiter(c.RPS),
		Concurrency: c.Concurrency,
	}

	result, err := importer.ImportAll(deps.Ctx, urls, func(event bulk.ProgressEvent) {
		switch event.Type {
		case bulk.ProgressStarted:
			fmt.Fprintf(deps.Stdout, "Importing %d links...\n", event.Total)
		case bulk.ProgressAdded:
			fmt.Fprintf(deps.Stdout, "  added %s\n", event.URL)
		case bulk.ProgressSkipped:
			fmt.Fprintf(deps.Stdout, "  skipped %s (already catalogued)\n", event.URL)
		case bulk.ProgressFailed:
			fmt.Fprintf(deps.Stderr, "  failed %s: %s\n", event.URL, olc.ErrorMessage(event.Error))
		}
	})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", olc.ErrorMessage(err))
		return err
	}

	deps.Logger.Debug("import finished",
		"run_id", result.RunID,
		"added", result.Added,
		"skipped", result.Skipped,
		"failed", result.Failed,
	)

	fmt.Fprintf(deps.Stdout, "Imported %d links (%d skipped, %d failed)\n", result.Added, result.Skipped, result.Failed)
	return nil
}

package olc

// ExtractResult holds the readable content of a fetched page.
type ExtractResult struct {
	Title string
	Text  string
}

// Extractor extracts the main readable content from raw HTML.
// The result is used as an excerpt to ground classification prompts.
type Extractor interface {
	Extract(rawHTML string) (*ExtractResult, error)
}

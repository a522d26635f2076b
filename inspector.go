package olc

// PageMeta holds the metadata a page declares about itself.
type PageMeta struct {
	Title       string
	Description string
}

// Inspector reads a page's own metadata (title, meta description).
// It backs classifier-free adds, where the page describes itself instead
// of an external model.
type Inspector interface {
	Inspect(rawHTML string) (*PageMeta, error)
}

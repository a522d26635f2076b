package trafilatura_test

import (
	"testing"

	"github.com/redhoddie/olc/trafilatura"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractor_Extract(t *testing.T) {
	t.Parallel()

	t.Run("extracts title and main text", func(t *testing.T) {
		t.Parallel()

		html := `<!DOCTYPE html>
<html>
<head><title>Shodan - Search Engine</title></head>
<body>
<article>
<h1>Shodan</h1>
<p>Shodan is a search engine for internet-connected devices. It lets
researchers discover exposed services, webcams, and industrial control
systems across the public internet.</p>
<p>Results include banners, open ports, and geolocation data for every
indexed host.</p>
</article>
</body>
</html>`

		extractor := trafilatura.NewExtractor()

		result, err := extractor.Extract(html)
		require.NoError(t, err)
		assert.Contains(t, result.Title, "Shodan")
		assert.Contains(t, result.Text, "internet-connected devices")
	})

	t.Run("returns error for empty input", func(t *testing.T) {
		t.Parallel()

		extractor := trafilatura.NewExtractor()

		_, err := extractor.Extract("")
		require.Error(t, err)
	})
}

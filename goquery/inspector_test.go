package goquery_test

import (
	"testing"

	"github.com/redhoddie/olc/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInspector_Inspect(t *testing.T) {
	t.Parallel()

	t.Run("reads title and meta description", func(t *testing.T) {
		t.Parallel()

		html := `<html><head>
<title>  Have I Been Pwned  </title>
<meta name="description" content="Check if your email has been compromised in a data breach.">
</head><body></body></html>`

		inspector := goquery.NewInspector()

		meta, err := inspector.Inspect(html)
		require.NoError(t, err)
		assert.Equal(t, "Have I Been Pwned", meta.Title)
		assert.Equal(t, "Check if your email has been compromised in a data breach.", meta.Description)
	})

	t.Run("falls back to og:description", func(t *testing.T) {
		t.Parallel()

		html := `<html><head>
<title>Example</title>
<meta property="og:description" content="Open graph description.">
</head><body></body></html>`

		inspector := goquery.NewInspector()

		meta, err := inspector.Inspect(html)
		require.NoError(t, err)
		assert.Equal(t, "Open graph description.", meta.Description)
	})

	t.Run("missing metadata returns empty fields", func(t *testing.T) {
		t.Parallel()

		inspector := goquery.NewInspector()

		meta, err := inspector.Inspect("<html><body><p>no head</p></body></html>")
		require.NoError(t, err)
		assert.Empty(t, meta.Title)
		assert.Empty(t, meta.Description)
	})
}

package gemini_test

import (
	"context"
	"testing"

	"github.com/redhoddie/olc"
	"github.com/redhoddie/olc/gemini"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifier_Classify_ReturnsErrorWhenURLEmpty(t *testing.T) {
	t.Parallel()

	classifier := gemini.NewClassifier(nil) // nil client ok for this test

	_, err := classifier.Classify(context.Background(), "", "")

	require.Error(t, err)
	assert.Equal(t, olc.EINVALID, olc.ErrorCode(err))
	assert.Contains(t, olc.ErrorMessage(err), "url required")
}

func TestBuildConfig_SetsLowTemperature(t *testing.T) {
	t.Parallel()

	config := gemini.BuildConfig()

	require.NotNil(t, config.Temperature)
	assert.InDelta(t, 0.3, float64(*config.Temperature), 0.001)
	require.NotNil(t, config.SystemInstruction)
	require.Len(t, config.SystemInstruction.Parts, 1)
	assert.Contains(t, config.SystemInstruction.Parts[0].Text, "classifier")
}

func TestBuildPrompt(t *testing.T) {
	t.Parallel()

	t.Run("contains URL and schema rules", func(t *testing.T) {
		t.Parallel()

		prompt := gemini.BuildPrompt("https://shodan.io", "")

		assert.Contains(t, prompt, "https://shodan.io")
		assert.Contains(t, prompt, "rating_count must be 0")
		assert.Contains(t, prompt, `"api_available": false`)
		assert.NotContains(t, prompt, "<page_excerpt>")
	})

	t.Run("embeds page excerpt when provided", func(t *testing.T) {
		t.Parallel()

		prompt := gemini.BuildPrompt("https://shodan.io", "Search engine for internet-connected devices.")

		assert.Contains(t, prompt, "<page_excerpt>")
		assert.Contains(t, prompt, "internet-connected devices")
	})
}

func TestDecodeClassification(t *testing.T) {
	t.Parallel()

	t.Run("decodes a plain JSON object", func(t *testing.T) {
		t.Parallel()

		c, err := gemini.DecodeClassification(`{
			"name": "shodan",
			"type": "search-engine",
			"tags": ["api", "network"],
			"cost": "freemium",
			"requires_account": true,
			"api_available": true,
			"metrics": {"rating": 4.5, "rating_count": 0}
		}`)

		require.NoError(t, err)
		assert.Equal(t, "shodan", c.Name)
		assert.Equal(t, "search-engine", c.Type)
		assert.Equal(t, []string{"api", "network"}, c.Tags)
		assert.Equal(t, olc.CostFreemium, c.Cost)
		assert.True(t, c.RequiresAccount)
		assert.True(t, c.APIAvailable)
		assert.Equal(t, 4.5, c.Metrics.Rating)
	})

	t.Run("extracts JSON from markdown fences and prose", func(t *testing.T) {
		t.Parallel()

		response := "Here is the classification you asked for:\n```json\n" +
			`{"name": "example", "type": "website"}` +
			"\n```\nLet me know if you need anything else."

		c, err := gemini.DecodeClassification(response)

		require.NoError(t, err)
		assert.Equal(t, "example", c.Name)
		assert.Equal(t, "website", c.Type)
	})

	t.Run("returns EINTERNAL when no JSON object present", func(t *testing.T) {
		t.Parallel()

		_, err := gemini.DecodeClassification("I cannot classify this website.")

		require.Error(t, err)
		assert.Equal(t, olc.EINTERNAL, olc.ErrorCode(err))
	})

	t.Run("returns EINTERNAL for malformed JSON", func(t *testing.T) {
		t.Parallel()

		_, err := gemini.DecodeClassification(`{"name": "broken`)

		require.Error(t, err)
		assert.Equal(t, olc.EINTERNAL, olc.ErrorCode(err))
	})
}

package olc_test

import (
	"testing"

	"github.com/redhoddie/olc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLink_Validate(t *testing.T) {
	t.Parallel()

	t.Run("valid link", func(t *testing.T) {
		t.Parallel()

		link := &olc.Link{URL: "https://example.com", Cost: olc.CostFree}
		assert.NoError(t, link.Validate())
	})

	t.Run("missing URL", func(t *testing.T) {
		t.Parallel()

		err := (&olc.Link{}).Validate()
		require.Error(t, err)
		assert.Equal(t, olc.EINVALID, olc.ErrorCode(err))
	})

	t.Run("unknown cost", func(t *testing.T) {
		t.Parallel()

		err := (&olc.Link{URL: "https://example.com", Cost: "subscription"}).Validate()
		require.Error(t, err)
		assert.Equal(t, olc.EINVALID, olc.ErrorCode(err))
	})

	t.Run("rating out of range", func(t *testing.T) {
		t.Parallel()

		err := (&olc.Link{URL: "https://example.com", Metrics: olc.Metrics{Rating: 5.5}}).Validate()
		require.Error(t, err)
		assert.Equal(t, olc.EINVALID, olc.ErrorCode(err))
	})
}

func TestLink_Matches(t *testing.T) {
	t.Parallel()

	link := &olc.Link{
		URL:         "https://shodan.io",
		Name:        "Shodan",
		Description: "Search engine for internet-connected devices",
		Type:        "search-engine",
		Subtypes:    []string{"device-search"},
		Tags:        []string{"api", "network"},
		Roles:       []string{"pentester"},
	}

	tests := []struct {
		name string
		term string
		want bool
	}{
		{"matches name case-insensitively", "SHODAN", true},
		{"matches tag", "api", true},
		{"matches role", "pentester", true},
		{"matches description substring", "devices", true},
		{"matches canonical host", "shodan.io", true},
		{"matches type", "search-engine", true},
		{"empty term matches everything", "", true},
		{"no match", "satellite", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, link.Matches(tt.term))
		})
	}
}

func TestLinkUpdate_Apply(t *testing.T) {
	t.Parallel()

	t.Run("applies only non-nil fields", func(t *testing.T) {
		t.Parallel()

		link := &olc.Link{
			URL:         "https://example.com",
			Name:        "Example",
			Description: "original",
			Tags:        []string{"one"},
			Metrics:     olc.Metrics{Rating: 3.5, RatingCount: 7},
		}

		rating := 5.0
		olc.LinkUpdate{Rating: &rating}.Apply(link)

		assert.Equal(t, 5.0, link.Metrics.Rating)
		assert.Equal(t, 7, link.Metrics.RatingCount)
		assert.Equal(t, "Example", link.Name)
		assert.Equal(t, "original", link.Description)
		assert.Equal(t, []string{"one"}, link.Tags)
	})

	t.Run("replaces list fields wholesale", func(t *testing.T) {
		t.Parallel()

		link := &olc.Link{URL: "https://example.com", Tags: []string{"one"}}

		tags := []string{"two", "three"}
		olc.LinkUpdate{Tags: &tags}.Apply(link)

		assert.Equal(t, []string{"two", "three"}, link.Tags)
	})
}

func TestClassification_ApplyDefaults(t *testing.T) {
	t.Parallel()

	t.Run("fills every omitted field", func(t *testing.T) {
		t.Parallel()

		c := &olc.Classification{}
		c.ApplyDefaults("example.com")

		assert.Equal(t, "example.com", c.Name)
		assert.Equal(t, "Website for example.com", c.Description)
		assert.Equal(t, "website", c.Type)
		assert.Equal(t, "en", c.Language)
		assert.Equal(t, olc.CostFree, c.Cost)
		assert.Empty(t, c.Subtypes)
		assert.NotNil(t, c.Subtypes)
		assert.NotNil(t, c.Tags)
		assert.NotNil(t, c.Roles)
		assert.NotNil(t, c.DataTypes)
		assert.Zero(t, c.Metrics.Rating)
		assert.Zero(t, c.Metrics.RatingCount)
	})

	t.Run("keeps fields the classifier provided", func(t *testing.T) {
		t.Parallel()

		c := &olc.Classification{
			Name: "Shodan",
			Type: "search-engine",
			Tags: []string{"api"},
			Cost: olc.CostPaid,
		}
		c.ApplyDefaults("shodan.io")

		assert.Equal(t, "Shodan", c.Name)
		assert.Equal(t, "search-engine", c.Type)
		assert.Equal(t, []string{"api"}, c.Tags)
		assert.Equal(t, olc.CostPaid, c.Cost)
	})

	t.Run("normalizes combined cost to freemium", func(t *testing.T) {
		t.Parallel()

		c := &olc.Classification{Cost: "paid,free"}
		c.ApplyDefaults("example.com")

		assert.Equal(t, olc.CostFreemium, c.Cost)
	})

	t.Run("clamps out-of-range rating", func(t *testing.T) {
		t.Parallel()

		c := &olc.Classification{Metrics: olc.Metrics{Rating: 11, RatingCount: -2}}
		c.ApplyDefaults("example.com")

		assert.Zero(t, c.Metrics.Rating)
		assert.Zero(t, c.Metrics.RatingCount)
	})
}

package main_test

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/redhoddie/olc"
	main "github.com/redhoddie/olc/cmd/olc"
	"github.com/redhoddie/olc/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestViewCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("shows the full record", func(t *testing.T) {
		t.Parallel()

		links := &mock.LinkService{
			FindLinkByURLFn: func(_ context.Context, rawURL string) (*olc.Link, error) {
				assert.Equal(t, "shodan.io", rawURL)
				return &olc.Link{
					URL:             "https://shodan.io",
					Name:            "Shodan",
					Description:     "Search engine for Internet-connected devices",
					Type:            "search-engine",
					Subtypes:        []string{"device-search"},
					Tags:            []string{"iot", "scanning"},
					Roles:           []string{"pentester"},
					Language:        "en",
					Cost:            olc.CostFreemium,
					RequiresAccount: true,
					DataTypes:       []string{"ip", "banner"},
					APIAvailable:    true,
					Metrics:         olc.Metrics{Rating: 4.5, RatingCount: 120},
					DateCollected:   time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC),
					DateUpdated:     time.Date(2025, 6, 15, 9, 0, 0, 0, time.UTC),
				}, nil
			},
		}

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: stderr,
			Links:  links,
		}

		cmd := &main.ViewCmd{Link: "shodan.io"}

		err := cmd.Run(deps)

		require.NoError(t, err)

		output := stdout.String()
		assert.Contains(t, output, "Shodan")
		assert.Contains(t, output, "https://shodan.io")
		assert.Contains(t, output, "Search engine for Internet-connected devices")
		assert.Contains(t, output, "device-search")
		assert.Contains(t, output, "iot, scanning")
		assert.Contains(t, output, "freemium")
		assert.Contains(t, output, "4.5 (120 ratings)")
		assert.Contains(t, output, "2025-03-01")
		assert.Contains(t, output, "2025-06-15")
	})

	t.Run("returns error when the link does not exist", func(t *testing.T) {
		t.Parallel()

		links := &mock.LinkService{
			FindLinkByURLFn: func(_ context.Context, rawURL string) (*olc.Link, error) {
				return nil, olc.Errorf(olc.ENOTFOUND, "link not found")
			},
		}

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: stderr,
			Links:  links,
		}

		cmd := &main.ViewCmd{Link: "nonexistent.com"}

		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Equal(t, olc.ENOTFOUND, olc.ErrorCode(err))
		assert.Contains(t, stderr.String(), "error:")
	})
}

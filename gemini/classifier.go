// Package gemini implements the olc.Classifier interface using Google
// Gemini. It is a thin pass-through: the prompt asks the model for the
// full record schema as JSON and the response is decoded into typed
// fields with per-field default substitution.
package gemini

import (
	"context"
	"fmt"
	"strings"

	"github.com/redhoddie/olc"
	"google.golang.org/genai"
)

const model = "gemini-2.5-flash"

// Ensure Classifier implements olc.Classifier at compile time.
var _ olc.Classifier = (*Classifier)(nil)

// Classifier implements olc.Classifier using Google Gemini.
type Classifier struct {
	client *genai.Client
}

// NewClassifier creates a new Classifier.
func NewClassifier(client *genai.Client) *Classifier {
	return &Classifier{client: client}
}

// Classify asks the model to describe the website behind url and decodes
// the answer into a Classification with defaults substituted for every
// omitted field. Transport and provider failures return EUNAVAILABLE; a
// response with no decodable JSON object returns EINTERNAL so callers
// can fall back to a defaults-only record.
func (c *Classifier) Classify(ctx context.Context, url string, excerpt string) (*olc.Classification, error) {
	if url == "" {
		return nil, olc.Errorf(olc.EINVALID, "url required")
	}

	prompt := BuildPrompt(url, excerpt)
	config := BuildConfig()

	result, err := c.client.Models.GenerateContent(ctx, model,
		[]*genai.Content{{
			Parts: []*genai.Part{{Text: prompt}},
		}},
		config,
	)
	if err != nil {
		return nil, olc.Errorf(olc.EUNAVAILABLE, "classifier request failed: %v", err)
	}
	if result == nil {
		return nil, olc.Errorf(olc.EUNAVAILABLE, "classifier returned empty result")
	}

	classification, err := DecodeClassification(result.Text())
	if err != nil {
		return nil, err
	}

	classification.ApplyDefaults(olc.CanonicalHost(url))
	return classification, nil
}

// BuildConfig returns the GenerateContentConfig for classification calls.
// The temperature is kept low so repeated runs classify consistently.
func BuildConfig() *genai.GenerateContentConfig {
	temp := float32(0.3)
	return &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{
				Text: "You are a website classifier and OSINT metadata formatter. Always answer with a single JSON object and nothing else.",
			}},
		},
		Temperature: &temp,
	}
}

// BuildPrompt builds the classification prompt for a URL. excerpt is
// optional page text embedded to ground the answer; pass "" to classify
// from the URL alone.
func BuildPrompt(url string, excerpt string) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Analyze this website: %s\n\n", url)
	if excerpt != "" {
		sb.WriteString("<page_excerpt>\n")
		sb.WriteString(excerpt)
		sb.WriteString("\n</page_excerpt>\n\n")
	}
	sb.WriteString(`Return a structured JSON object with these rules:
1. Replace spaces in values with dashes.
2. rating_count must be 0.
3. cost must be "free", "paid", or "freemium".
4. api_available must be true or false.
5. Use lowercase for all values.
6. Include relevant user roles.

Format:
` + "```json" + `
{
  "name": "<name>",
  "description": "<description>",
  "type": "<main-type>",
  "subtypes": ["subtype1"],
  "tags": ["tag1"],
  "roles": ["role1"],
  "language": "en",
  "cost": "free",
  "requires_account": true,
  "data_types": ["data-type"],
  "api_available": false,
  "metrics": {"rating": 0.0, "rating_count": 0}
}
` + "```")
	return sb.String()
}

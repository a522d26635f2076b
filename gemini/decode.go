package gemini

import (
	"encoding/json"
	"strings"

	"github.com/redhoddie/olc"
)

// DecodeClassification extracts the JSON object from a model response
// and decodes it. Models wrap answers in prose or markdown fences, so
// the decoder takes the window between the first "{" and the last "}".
// Returns EINTERNAL when the response contains no decodable object.
func DecodeClassification(text string) (*olc.Classification, error) {
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start == -1 || end == -1 || end < start {
		return nil, olc.Errorf(olc.EINTERNAL, "classifier response contains no JSON object")
	}

	var c olc.Classification
	if err := json.Unmarshal([]byte(text[start:end+1]), &c); err != nil {
		return nil, olc.Errorf(olc.EINTERNAL, "classifier response is not valid JSON: %v", err)
	}

	return &c, nil
}

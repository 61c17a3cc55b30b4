package gemini

import (
	"encoding/json"
	"strings"

	"github.com/Mr2-hex/quivo-backend/errs"
)

// ParseTitleCandidates parses model output as a strict JSON array of
// non-empty strings. Anything else fails with an inference-format
// error; there is no heuristic recovery of quoted fragments, so a
// misbehaving model is visible instead of silently guessed around.
func ParseTitleCandidates(raw string) ([]string, error) {
	clean := cleanJSON(raw)

	var titles []string
	if err := json.Unmarshal([]byte(clean), &titles); err != nil {
		return nil, errs.Wrap(errs.KindInferenceFormat, "model output is not a JSON string array", err)
	}
	if len(titles) == 0 {
		return nil, errs.New(errs.KindInferenceFormat, "model returned an empty title list")
	}

	for i, title := range titles {
		title = strings.TrimSpace(title)
		if title == "" {
			return nil, errs.Newf(errs.KindInferenceFormat, "model returned an empty title at index %d", i)
		}
		titles[i] = title
	}
	return titles, nil
}

// cleanJSON strips markdown code fences the model sometimes wraps its
// answer in. This is transport framing, not content recovery; the
// payload inside still has to be a valid JSON array.
func cleanJSON(text string) string {
	text = strings.TrimSpace(text)
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(text, "```")
	return strings.TrimSpace(text)
}

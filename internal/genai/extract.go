package genai

import (
	"fmt"
	"strings"
)

// ExtractJSONArray pulls the first JSON array out of free-form model output.
// Models emit surrounding commentary and markdown fences despite prompt
// instructions, so the text between the first '[' and the last ']' is taken
// as the array. Returns an error when no bracket pair exists.
func ExtractJSONArray(raw string) (string, error) {
	text := strings.TrimSpace(raw)
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(text, "```")

	start := strings.Index(text, "[")
	end := strings.LastIndex(text, "]")
	if start == -1 || end == -1 || end < start {
		return "", fmt.Errorf("no JSON array found in output")
	}
	return text[start : end+1], nil
}

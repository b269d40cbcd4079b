package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
)

// GenerateJSON is the single structured-generation operation shared by the
// challenge, checkpoint and quiz pipelines: build the request, walk the
// model fallback list, parse the JSON response into out. Fallback content
// policy stays with the caller.
func (c *Client) GenerateJSON(ctx context.Context, parts []Part, cfg *GenerationConfig, out interface{}) error {
	text, err := c.GenerateWithFallback(ctx, parts, cfg)
	if err != nil {
		return err
	}
	if err := json.Unmarshal([]byte(extractJSON(text)), out); err != nil {
		return fmt.Errorf("parse model response: %w", err)
	}
	return nil
}

// extractJSON strips markdown code fences that some models wrap around
// JSON output even when a JSON MIME type is requested.
func extractJSON(content string) string {
	content = strings.TrimSpace(content)

	if strings.HasPrefix(content, "```") {
		content = strings.TrimPrefix(content, "```json")
		content = strings.TrimPrefix(content, "```")
		if idx := strings.LastIndex(content, "```"); idx >= 0 {
			content = content[:idx]
		}
		content = strings.TrimSpace(content)
	}

	return content
}

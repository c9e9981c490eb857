// Package gemini adapts the Gemini API into the importer's Classifier
// interface. The model is a best-effort hint: every failure mode (missing
// key, network error, malformed response) degrades to an empty
// classification and the importer's local fallbacks take over.
package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"google.golang.org/genai"

	"github.com/rohanmehta-dev/spendbook/internal/category"
	"github.com/rohanmehta-dev/spendbook/internal/importer"
)

type Classifier struct {
	apiKey  string
	model   string
	timeout time.Duration
}

func NewClassifier(apiKey, model string, timeout time.Duration) *Classifier {
	return &Classifier{
		apiKey:  apiKey,
		model:   model,
		timeout: timeout,
	}
}

// Classify sends one batch of raw tokens to the model and parses its
// mapping. The batch is capped; tokens beyond the cap are dropped silently
// and resolve through local heuristics instead.
func (c *Classifier) Classify(ctx context.Context, tokens []string, existing []category.Category) importer.Classification {
	if len(tokens) == 0 {
		return importer.Classification{}
	}

	if len(tokens) > importer.MaxClassifyTokens {
		tokens = tokens[:importer.MaxClassifyTokens]
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:      c.apiKey,
		HTTPOptions: genai.HTTPOptions{APIVersion: "v1"},
	})
	if err != nil {
		slog.Warn("classifier client init failed", "error", err)
		return importer.Classification{Failed: true}
	}

	contents := []*genai.Content{
		{
			Role:  "user",
			Parts: []*genai.Part{{Text: buildPrompt(tokens, existing)}},
		},
	}

	resp, err := client.Models.GenerateContent(ctx, c.model, contents, nil)
	if err != nil {
		slog.Warn("classifier call failed", "error", err)
		return importer.Classification{Failed: true}
	}

	mapping, err := parseMapping(resp.Text())
	if err != nil {
		slog.Warn("classifier returned malformed mapping", "error", err)
		return importer.Classification{Failed: true}
	}

	return importer.Classification{Mapping: mapping}
}

// buildPrompt asks for a strict JSON object mapping each raw token to an
// existing category id or the "NEW" sentinel.
func buildPrompt(tokens []string, existing []category.Category) string {
	var b strings.Builder

	b.WriteString("You map raw bank-statement category tokens to expense categories.\n\n")
	b.WriteString("Existing categories (id: name):\n")

	for _, cat := range existing {
		fmt.Fprintf(&b, "- %s: %s\n", cat.ID, cat.Name)
	}

	if len(existing) == 0 {
		b.WriteString("- (none)\n")
	}

	b.WriteString("\nTokens to classify:\n")

	for _, token := range tokens {
		fmt.Fprintf(&b, "- %s\n", token)
	}

	b.WriteString("\nRules:\n")
	b.WriteString("- Output STRICT JSON only: one object mapping every token to a value.\n")
	b.WriteString("- The value must be the id of the best-fitting existing category, or the literal string \"NEW\" if none fits.\n")
	b.WriteString("- Use the token text EXACTLY as given for the keys.\n")
	b.WriteString("- Do NOT wrap the response in code fences or any Markdown.\n")
	b.WriteString("- Output must begin with \"{\" and end with \"}\".\n")

	return b.String()
}

// parseMapping decodes the model output, tolerating the Markdown fences
// models add despite instructions.
func parseMapping(raw string) (map[string]string, error) {
	clean := stripFences(raw)
	if clean == "" {
		return nil, fmt.Errorf("empty response")
	}

	var mapping map[string]string
	if err := json.Unmarshal([]byte(clean), &mapping); err != nil {
		return nil, fmt.Errorf("unmarshal mapping: %w", err)
	}

	return mapping, nil
}

func stripFences(raw string) string {
	s := strings.TrimSpace(raw)

	if strings.HasPrefix(s, "```") {
		if idx := strings.Index(s, "\n"); idx != -1 {
			s = s[idx+1:]
		}

		if idx := strings.LastIndex(s, "```"); idx != -1 {
			s = s[:idx]
		}
	}

	return strings.TrimSpace(s)
}

package intent

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"catholic-discovery-be/internal/pkg/logger"
	"catholic-discovery-be/pkg/discovery/category"
	"catholic-discovery-be/pkg/llm"
)

// Classifier resolves a raw user query into a Classification. The primary
// path is a deterministic-temperature LLM call; any failure on that path
// falls through to the keyword classifier, never to an error.
type Classifier struct {
	llmProvider llm.LLMProvider
	logger      logger.ILogger
	llmOpts     []llm.Option
}

func NewClassifier(llmProvider llm.LLMProvider, log logger.ILogger, opts ...llm.Option) *Classifier {
	return &Classifier{
		llmProvider: llmProvider,
		logger:      log,
		llmOpts:     opts,
	}
}

// Classify analyzes the user query. This is a pure classification call, no
// record access and no answer generation.
func (c *Classifier) Classify(ctx context.Context, query string) *Classification {
	prompt := c.buildPrompt(query)

	opts := append([]llm.Option{llm.WithTemperature(0.0)}, c.llmOpts...)
	response, err := c.llmProvider.Generate(ctx, prompt, opts...)
	if err != nil {
		c.logger.Warn("intent", "llm classification failed, using fallback", map[string]interface{}{
			"error": err.Error(),
		})
		return ClassifyFallback(query)
	}

	classification, err := c.parseClassification(response)
	if err != nil {
		c.logger.Warn("intent", "classification parsing failed, using fallback", map[string]interface{}{
			"error": err.Error(),
		})
		return ClassifyFallback(query)
	}

	c.logger.Debug("intent", "query classified", map[string]interface{}{
		"intent":     classification.Intent,
		"categories": classification.Categories,
		"location":   classification.Location,
	})
	return classification
}

func (c *Classifier) buildPrompt(query string) string {
	var prompt strings.Builder

	prompt.WriteString("<system>\n")
	prompt.WriteString("You are a query classifier for a Catholic resource directory.\n")
	prompt.WriteString("Your ONLY job is to classify the user's query. You do NOT answer it.\n")
	prompt.WriteString("</system>\n\n")

	prompt.WriteString("<user_query>\n")
	prompt.WriteString(query)
	prompt.WriteString("\n</user_query>\n\n")

	prompt.WriteString("<categories>\n")
	prompt.WriteString("Pick up to 3 categories the query is about, most relevant first:\n")
	for _, cat := range category.All {
		prompt.WriteString(fmt.Sprintf("  %s: %s\n", cat, cat.DisplayName()))
	}
	prompt.WriteString("Greetings and small talk get an empty list.\n")
	prompt.WriteString("</categories>\n\n")

	prompt.WriteString("<intents>\n")
	prompt.WriteString("discover: user wants resource suggestions on a topic\n")
	prompt.WriteString("nearby: user asks for resources close to a place or to themselves\n")
	prompt.WriteString("schedule: user asks about mass times or service schedules\n")
	prompt.WriteString("events: user asks about upcoming events or activities\n")
	prompt.WriteString("learn_more: user asks about one specific named resource\n")
	prompt.WriteString("general: greeting or small talk, no resource lookup needed\n")
	prompt.WriteString("</intents>\n\n")

	prompt.WriteString("<output_format>\n")
	prompt.WriteString("Respond with ONLY valid JSON:\n")
	prompt.WriteString("{\n")
	prompt.WriteString("  \"experts\": [\"church\"],\n")
	prompt.WriteString("  \"intent\": \"discover|nearby|schedule|events|learn_more|general\",\n")
	prompt.WriteString("  \"location\": \"city name if mentioned, otherwise empty\",\n")
	prompt.WriteString("  \"entity_name\": \"the specific resource name if intent is learn_more, otherwise empty\"\n")
	prompt.WriteString("}\n")
	prompt.WriteString("</output_format>")

	return prompt.String()
}

// classificationWire is the raw LLM output shape. Experts stays raw so a
// non-array value coerces to empty instead of failing the unmarshal.
type classificationWire struct {
	Experts    json.RawMessage `json:"experts"`
	Intent     string          `json:"intent"`
	Location   string          `json:"location"`
	EntityName string          `json:"entity_name"`
}

func (c *Classifier) parseClassification(response string) (*Classification, error) {
	jsonContent := extractJSON(response)
	if jsonContent == "" {
		return nil, fmt.Errorf("no JSON found in response")
	}

	var wire classificationWire
	if err := json.Unmarshal([]byte(jsonContent), &wire); err != nil {
		return nil, fmt.Errorf("JSON unmarshal failed: %w", err)
	}

	classification := &Classification{
		Intent:     Intent(strings.ToLower(strings.TrimSpace(wire.Intent))),
		Location:   strings.TrimSpace(wire.Location),
		EntityName: strings.TrimSpace(wire.EntityName),
	}

	var tags []string
	if len(wire.Experts) > 0 {
		// Anything that is not a string array coerces to no categories.
		_ = json.Unmarshal(wire.Experts, &tags)
	}
	for _, tag := range tags {
		classification.Categories = append(classification.Categories,
			category.Category(strings.ToLower(strings.TrimSpace(tag))))
	}

	classification.normalize()
	return classification, nil
}

func extractJSON(response string) string {
	startIdx := strings.Index(response, "{")
	endIdx := strings.LastIndex(response, "}")

	if startIdx == -1 || endIdx == -1 || endIdx <= startIdx {
		return ""
	}

	return response[startIdx : endIdx+1]
}

package intent

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"catholic-discovery-be/internal/pkg/logger"
	"catholic-discovery-be/pkg/discovery/category"
	"catholic-discovery-be/pkg/llm"
)

type fakeLLM struct {
	response string
	err      error
}

func (f *fakeLLM) Chat(ctx context.Context, history []llm.Message, options ...llm.Option) (string, error) {
	return f.response, f.err
}

func (f *fakeLLM) Generate(ctx context.Context, prompt string, options ...llm.Option) (string, error) {
	return f.response, f.err
}

func TestClassifyParsesStructuredResponse(t *testing.T) {
	provider := &fakeLLM{response: `{"experts": ["school"], "intent": "nearby", "location": "denver", "entity_name": ""}`}
	classifier := NewClassifier(provider, logger.NewNopLogger())

	got := classifier.Classify(context.Background(), "Catholic high schools near Denver")

	assert.Equal(t, []category.Category{category.School}, got.Categories)
	assert.Equal(t, IntentNearby, got.Intent)
	assert.Equal(t, "denver", got.Location)
}

func TestClassifyExtractsJSONFromProse(t *testing.T) {
	provider := &fakeLLM{response: "Sure, here is the classification:\n```json\n{\"experts\": [\"retreat\"], \"intent\": \"discover\", \"location\": \"\", \"entity_name\": \"\"}\n```"}
	classifier := NewClassifier(provider, logger.NewNopLogger())

	got := classifier.Classify(context.Background(), "silent retreats")

	assert.Equal(t, []category.Category{category.Retreat}, got.Categories)
	assert.Equal(t, IntentDiscover, got.Intent)
}

func TestClassifyCoercesNonArrayExperts(t *testing.T) {
	provider := &fakeLLM{response: `{"experts": "church", "intent": "discover", "location": "", "entity_name": ""}`}
	classifier := NewClassifier(provider, logger.NewNopLogger())

	got := classifier.Classify(context.Background(), "find a parish")

	// Coerced to empty, then the non-general intent pulls in the default.
	assert.Equal(t, []category.Category{category.Default}, got.Categories)
}

func TestClassifyDropsUnknownTagsAndTruncates(t *testing.T) {
	provider := &fakeLLM{response: `{"experts": ["church", "hospital", "school", "retreat", "campus"], "intent": "discover", "location": "", "entity_name": ""}`}
	classifier := NewClassifier(provider, logger.NewNopLogger())

	got := classifier.Classify(context.Background(), "everything catholic")

	assert.Equal(t, []category.Category{category.Church, category.School, category.Retreat}, got.Categories)
}

func TestClassifyUnknownIntentBecomesDiscover(t *testing.T) {
	provider := &fakeLLM{response: `{"experts": ["church"], "intent": "explore", "location": "", "entity_name": ""}`}
	classifier := NewClassifier(provider, logger.NewNopLogger())

	got := classifier.Classify(context.Background(), "parishes")

	assert.Equal(t, IntentDiscover, got.Intent)
}

func TestClassifyFallsBackOnProviderError(t *testing.T) {
	provider := &fakeLLM{err: errors.New("upstream timeout")}
	classifier := NewClassifier(provider, logger.NewNopLogger())

	got := classifier.Classify(context.Background(), "Catholic schools near Denver")

	assert.Equal(t, []category.Category{category.School}, got.Categories)
	assert.Equal(t, IntentNearby, got.Intent)
	assert.Equal(t, "denver", got.Location)
}

func TestClassifyFallsBackOnMalformedJSON(t *testing.T) {
	provider := &fakeLLM{response: "I think the user wants churches."}
	classifier := NewClassifier(provider, logger.NewNopLogger())

	got := classifier.Classify(context.Background(), "churches in Philadelphia")

	assert.Equal(t, []category.Category{category.Church}, got.Categories)
	assert.Equal(t, "philadelphia", got.Location)
}

func TestClassifyFallback(t *testing.T) {
	tests := []struct {
		name       string
		query      string
		categories []category.Category
		intent     Intent
		location   string
		entityName string
	}{
		{
			name:       "schools near a city",
			query:      "Catholic high schools near Denver",
			categories: []category.Category{category.School},
			intent:     IntentNearby,
			location:   "denver",
		},
		{
			name:       "near me",
			query:      "parishes near me",
			categories: []category.Category{category.Church},
			intent:     IntentNearby,
		},
		{
			name:       "greeting",
			query:      "Hello!",
			categories: []category.Category{},
			intent:     IntentGeneral,
		},
		{
			name:       "mass schedule",
			query:      "what are the mass times at the cathedral",
			categories: []category.Category{category.Church},
			intent:     IntentSchedule,
		},
		{
			name:       "events",
			query:      "any events this weekend",
			categories: []category.Category{category.Default},
			intent:     IntentEvents,
		},
		{
			name:       "learn more",
			query:      "tell me more about St Mary Parish",
			categories: []category.Category{category.Church},
			intent:     IntentLearnMore,
			entityName: "st mary parish",
		},
		{
			name:       "no keyword defaults to church",
			query:      "where can I go on Sunday",
			categories: []category.Category{category.Default},
			intent:     IntentDiscover,
		},
		{
			name:       "city alias",
			query:      "retreats around nyc",
			categories: []category.Category{category.Retreat},
			intent:     IntentNearby,
			location:   "nyc",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ClassifyFallback(tt.query)
			assert.Equal(t, tt.categories, got.Categories, "categories")
			assert.Equal(t, tt.intent, got.Intent, "intent")
			assert.Equal(t, tt.location, got.Location, "location")
			assert.Equal(t, tt.entityName, got.EntityName, "entity name")
		})
	}
}

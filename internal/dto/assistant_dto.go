package dto

import (
	"catholic-discovery-be/pkg/discovery/category"
	"catholic-discovery-be/pkg/discovery/intent"
	"catholic-discovery-be/pkg/discovery/recommend"
)

type AssistantQueryRequest struct {
	ConversationId string   `json:"conversation_id"`
	Query          string   `json:"query"`
	Latitude       *float64 `json:"latitude"`
	Longitude      *float64 `json:"longitude"`
}

type AssistantQueryResponse struct {
	ConversationId string                 `json:"conversation_id"`
	Text           string                 `json:"text"`
	Suggestions    []recommend.Suggestion `json:"suggestions"`
	Intent         intent.Intent          `json:"intent"`
	Categories     []category.Category    `json:"categories"`
	FollowUp       bool                   `json:"follow_up"`
}

type ConversationCreateResponse struct {
	ConversationId string `json:"conversation_id"`
}

package dto

import "time"

type ResourceSubmitRequest struct {
	Collection string                 `json:"collection"`
	Attributes map[string]interface{} `json:"attributes"`
}

type ResourceSubmitResponse struct {
	Id         string `json:"id"`
	Collection string `json:"collection"`
}

type CacheStatsResponse struct {
	LoadedAt           time.Time      `json:"loaded_at"`
	RecordsPerCategory map[string]int `json:"records_per_category"`
}

// ResourceSubmittedMessage is the internal bus payload that triggers a cache
// invalidation.
type ResourceSubmittedMessage struct {
	ResourceId string `json:"resource_id"`
	Collection string `json:"collection"`
}

package implementation

import (
	"context"
	"encoding/json"
	"fmt"

	"catholic-discovery-be/internal/repository/contract"
	"catholic-discovery-be/pkg/discovery/records"
)

// RecordSource adapts the resource repository to the engine's bulk-read
// contract. Documents with unparseable attributes are skipped, not fatal;
// one bad import must not poison a whole collection.
type RecordSource struct {
	repo contract.ResourceRepository
}

func NewRecordSource(repo contract.ResourceRepository) *RecordSource {
	return &RecordSource{repo: repo}
}

func (s *RecordSource) ReadCollection(ctx context.Context, collection string) ([]records.Record, error) {
	docs, err := s.repo.FindAllByCollection(ctx, collection)
	if err != nil {
		return nil, fmt.Errorf("read collection %s: %w", collection, err)
	}

	recs := make([]records.Record, 0, len(docs))
	for _, doc := range docs {
		var fields map[string]interface{}
		if err := json.Unmarshal(doc.Attributes, &fields); err != nil {
			continue
		}
		recs = append(recs, records.Record{
			ID:         doc.Id.String(),
			Collection: doc.Collection,
			Fields:     fields,
		})
	}
	return recs, nil
}

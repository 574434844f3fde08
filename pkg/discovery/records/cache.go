package records

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"catholic-discovery-be/internal/pkg/logger"
	"catholic-discovery-be/pkg/discovery/category"
)

// DefaultTTL bounds how long a warmed snapshot is served without reloading.
const DefaultTTL = 10 * time.Minute

// Cache holds one process-wide snapshot of every category's records. Warm is
// request-coalesced: N concurrent callers during a load share one bulk-read
// batch, so a burst of queries never issues N redundant bulk reads.
type Cache struct {
	source Source
	ttl    time.Duration
	logger logger.ILogger

	group singleflight.Group

	mu       sync.RWMutex
	data     ByCategory
	loadedAt time.Time
}

func NewCache(source Source, ttl time.Duration, log logger.ILogger) *Cache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Cache{
		source: source,
		ttl:    ttl,
		logger: log,
	}
}

// Warm returns the cached record map, loading it from the source when the
// snapshot is missing or older than the TTL. Concurrent calls during a load
// all await the same in-flight batch.
func (c *Cache) Warm(ctx context.Context) (ByCategory, error) {
	c.mu.RLock()
	if c.data != nil && time.Since(c.loadedAt) < c.ttl {
		data := c.data
		c.mu.RUnlock()
		return data, nil
	}
	c.mu.RUnlock()

	result, err, _ := c.group.Do("warm", func() (interface{}, error) {
		// Another coalesced caller may have finished the load already.
		c.mu.RLock()
		if c.data != nil && time.Since(c.loadedAt) < c.ttl {
			data := c.data
			c.mu.RUnlock()
			return data, nil
		}
		c.mu.RUnlock()

		// The load is shared by every coalesced caller and its result is
		// stamped process-wide, so it must not die with the triggering
		// request. A client disconnect mid-warm would otherwise fail every
		// collection read and pin an all-empty snapshot for a full TTL.
		data := c.load(context.WithoutCancel(ctx))

		c.mu.Lock()
		c.data = data
		c.loadedAt = time.Now()
		c.mu.Unlock()

		return data, nil
	})
	if err != nil {
		return nil, err
	}

	return result.(ByCategory), nil
}

// load issues one bulk read per backing collection in parallel. A failing
// collection yields an empty list for its category and a WARN log; it never
// fails the whole warm.
func (c *Cache) load(ctx context.Context) ByCategory {
	type collectionResult struct {
		category category.Category
		records  []Record
	}

	var wg sync.WaitGroup
	results := make(chan collectionResult)

	for _, cat := range category.All {
		for _, collection := range cat.Collections() {
			wg.Add(1)
			go func(cat category.Category, collection string) {
				defer wg.Done()
				recs, err := c.source.ReadCollection(ctx, collection)
				if err != nil {
					c.logger.Warn("records", "collection read failed", map[string]interface{}{
						"collection": collection,
						"error":      err.Error(),
					})
					results <- collectionResult{category: cat}
					return
				}
				results <- collectionResult{category: cat, records: recs}
			}(cat, collection)
		}
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	data := make(ByCategory, len(category.All))
	for _, cat := range category.All {
		data[cat] = []Record{}
	}
	for res := range results {
		data[res.category] = append(data[res.category], res.records...)
	}

	total := 0
	for _, recs := range data {
		total += len(recs)
	}
	c.logger.Info("records", "cache warmed", map[string]interface{}{
		"total_records": total,
		"categories":    len(data),
	})

	return data
}

// Invalidate clears the snapshot unconditionally; the next Warm reloads.
func (c *Cache) Invalidate() {
	c.mu.Lock()
	c.data = nil
	c.loadedAt = time.Time{}
	c.mu.Unlock()
}

// Stats describes the current snapshot for operability endpoints.
type Stats struct {
	LoadedAt           time.Time      `json:"loaded_at"`
	RecordsPerCategory map[string]int `json:"records_per_category"`
}

func (c *Cache) Stats() Stats {
	c.mu.RLock()
	defer c.mu.RUnlock()

	stats := Stats{
		LoadedAt:           c.loadedAt,
		RecordsPerCategory: make(map[string]int),
	}
	for cat, recs := range c.data {
		stats.RecordsPerCategory[string(cat)] = len(recs)
	}
	return stats
}

package records

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"catholic-discovery-be/internal/pkg/logger"
	"catholic-discovery-be/pkg/discovery/category"
)

// fakeSource counts whole warm batches by counting reads of one sentinel
// collection that every batch touches exactly once.
type fakeSource struct {
	mu       sync.Mutex
	reads    map[string]int
	batches  int32
	failing  map[string]bool
	delay    time.Duration
	perCount int
}

func newFakeSource() *fakeSource {
	return &fakeSource{
		reads:    make(map[string]int),
		failing:  make(map[string]bool),
		perCount: 3,
	}
}

func (f *fakeSource) ReadCollection(ctx context.Context, collection string) ([]Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if f.delay > 0 {
		time.Sleep(f.delay)
	}

	f.mu.Lock()
	f.reads[collection]++
	if collection == "Parishes" {
		atomic.AddInt32(&f.batches, 1)
	}
	failing := f.failing[collection]
	f.mu.Unlock()

	if failing {
		return nil, errors.New("store unavailable")
	}

	recs := make([]Record, f.perCount)
	for i := range recs {
		recs[i] = Record{
			ID:         collection + "-rec",
			Collection: collection,
			Fields:     map[string]interface{}{"name": collection},
		}
	}
	return recs, nil
}

func (f *fakeSource) batchCount() int {
	return int(atomic.LoadInt32(&f.batches))
}

func TestWarmCoalescesConcurrentCalls(t *testing.T) {
	source := newFakeSource()
	source.delay = 20 * time.Millisecond
	cache := NewCache(source, time.Minute, logger.NewNopLogger())

	const callers = 8
	var wg sync.WaitGroup
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := cache.Warm(context.Background()); err != nil {
				t.Errorf("Warm returned error: %v", err)
			}
		}()
	}
	wg.Wait()

	if got := source.batchCount(); got != 1 {
		t.Errorf("concurrent warms triggered %d bulk-read batches, want 1", got)
	}
}

func TestWarmReusesSnapshotWithinTTL(t *testing.T) {
	source := newFakeSource()
	cache := NewCache(source, time.Minute, logger.NewNopLogger())

	for i := 0; i < 3; i++ {
		if _, err := cache.Warm(context.Background()); err != nil {
			t.Fatalf("Warm returned error: %v", err)
		}
	}

	if got := source.batchCount(); got != 1 {
		t.Errorf("sequential warms within TTL triggered %d batches, want 1", got)
	}
}

func TestInvalidateForcesReload(t *testing.T) {
	source := newFakeSource()
	cache := NewCache(source, time.Minute, logger.NewNopLogger())

	if _, err := cache.Warm(context.Background()); err != nil {
		t.Fatalf("Warm returned error: %v", err)
	}
	cache.Invalidate()
	if _, err := cache.Warm(context.Background()); err != nil {
		t.Fatalf("Warm returned error: %v", err)
	}

	if got := source.batchCount(); got != 2 {
		t.Errorf("invalidate+warm triggered %d batches, want 2", got)
	}
}

func TestWarmIsolatesCollectionFailures(t *testing.T) {
	source := newFakeSource()
	source.failing["Schools"] = true
	cache := NewCache(source, time.Minute, logger.NewNopLogger())

	data, err := cache.Warm(context.Background())
	if err != nil {
		t.Fatalf("Warm returned error: %v", err)
	}

	if len(data[category.School]) != 0 {
		t.Errorf("failing collection yielded %d records, want 0", len(data[category.School]))
	}
	if len(data[category.Church]) == 0 {
		t.Error("healthy collection yielded no records")
	}
}

func TestWarmSurvivesCallerCancellation(t *testing.T) {
	source := newFakeSource()
	cache := NewCache(source, time.Minute, logger.NewNopLogger())

	cancelled, cancel := context.WithCancel(context.Background())
	cancel()

	// A warm triggered by an already-dead request must not stamp an empty
	// snapshot that healthy requests then share for the whole TTL.
	if _, err := cache.Warm(cancelled); err != nil {
		t.Fatalf("Warm returned error: %v", err)
	}

	data, err := cache.Warm(context.Background())
	if err != nil {
		t.Fatalf("Warm returned error: %v", err)
	}
	if len(data[category.Church]) == 0 {
		t.Error("cancelled-context warm poisoned the snapshot: healthy caller got no records")
	}
}

func TestWarmMergesCollectionsIntoCategory(t *testing.T) {
	source := newFakeSource()
	cache := NewCache(source, time.Minute, logger.NewNopLogger())

	data, err := cache.Warm(context.Background())
	if err != nil {
		t.Fatalf("Warm returned error: %v", err)
	}

	// Retreats and RetreatCenters both feed the retreat category.
	want := source.perCount * len(category.Retreat.Collections())
	if got := len(data[category.Retreat]); got != want {
		t.Errorf("retreat category has %d records, want %d", got, want)
	}
}

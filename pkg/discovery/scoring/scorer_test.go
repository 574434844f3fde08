package scoring

import (
	"fmt"
	"testing"

	"catholic-discovery-be/pkg/discovery/category"
	"catholic-discovery-be/pkg/discovery/geo"
	"catholic-discovery-be/pkg/discovery/records"
)

func parish(id, name, city, region string, lat, lng float64) records.Record {
	return records.Record{
		ID:         id,
		Collection: "Parishes",
		Fields: map[string]interface{}{
			"name":  name,
			"city":  city,
			"state": region,
			"location": map[string]interface{}{
				"latitude":  lat,
				"longitude": lng,
			},
		},
	}
}

func philadelphia() *geo.Center {
	return &geo.Center{Lat: 39.9526, Lng: -75.1652, Region: "PA"}
}

func TestScoreCategoryOrdersNearbyFirst(t *testing.T) {
	recs := []records.Record{
		parish("far", "St. Mary Parish", "Pittsburgh", "PA", 40.4406, -79.9959),
		parish("near", "St. Mary Parish", "Philadelphia", "PA", 39.9500, -75.1600),
	}

	out := ScoreCategory(category.Church, recs, "parishes near philadelphia", philadelphia())

	if len(out) != 2 {
		t.Fatalf("got %d candidates, want 2", len(out))
	}
	if out[0].ID != "near" {
		t.Errorf("nearest record ranked %q first, want %q", out[0].ID, "near")
	}
	if out[0].Score <= out[1].Score {
		t.Errorf("nearby score %d not above distant score %d", out[0].Score, out[1].Score)
	}
}

func TestScoreCategoryDistanceMonotonic(t *testing.T) {
	// Same name and text, moving further from the center step by step.
	// Score must never increase with distance.
	steps := []float64{39.95, 40.05, 40.20, 40.40, 41.00, 42.00}
	prev := -1
	for i, lat := range steps {
		rec := parish(fmt.Sprintf("p%d", i), "Holy Cross Parish", "", "PA", lat, -75.1652)
		out := ScoreCategory(category.Church, []records.Record{rec}, "holy cross parish", philadelphia())
		if len(out) != 1 {
			t.Fatalf("step %d: got %d candidates, want 1", i, len(out))
		}
		if prev >= 0 && out[0].Score > prev {
			t.Errorf("step %d: score rose from %d to %d as distance grew", i, prev, out[0].Score)
		}
		prev = out[0].Score
	}
}

func TestScoreCategoryEliminatesWrongRegion(t *testing.T) {
	recs := []records.Record{
		parish("pa", "St. Joseph Parish", "Philadelphia", "PA", 39.95, -75.16),
		parish("nj", "St. Joseph Parish", "Camden", "NJ", 39.93, -75.12),
	}

	out := ScoreCategory(category.Church, recs, "st joseph parish", philadelphia())

	if len(out) != 1 {
		t.Fatalf("got %d candidates, want 1 after region elimination", len(out))
	}
	if out[0].ID != "pa" {
		t.Errorf("surviving candidate is %q, want %q", out[0].ID, "pa")
	}
}

func TestScoreCategoryFloorKeepsActivatedCategoryNonEmpty(t *testing.T) {
	rec := parish("p1", "Our Lady of Lourdes", "Philadelphia", "PA", 39.95, -75.16)

	out := ScoreCategory(category.Church, []records.Record{rec}, "zzzz qqqq", nil)

	if len(out) != 1 {
		t.Fatalf("got %d candidates, want 1", len(out))
	}
	if out[0].Score < 1 {
		t.Errorf("score %d below the floor of 1", out[0].Score)
	}
}

func TestScoreCategoryCapsResults(t *testing.T) {
	var recs []records.Record
	for i := 0; i < 40; i++ {
		recs = append(recs, parish(fmt.Sprintf("p%d", i), fmt.Sprintf("Parish %d", i), "Philadelphia", "PA", 39.95, -75.16))
	}

	out := ScoreCategory(category.Church, recs, "parish", philadelphia())

	if len(out) != category.Church.MaxResults() {
		t.Errorf("got %d candidates, want cap of %d", len(out), category.Church.MaxResults())
	}
}

func TestScoreCategoryBoostsRicherRecords(t *testing.T) {
	plain := parish("plain", "St. Agnes Parish", "Philadelphia", "PA", 39.95, -75.16)
	rich := parish("rich", "St. Agnes Parish", "Philadelphia", "PA", 39.95, -75.16)
	rich.Fields["unlocked"] = true
	rich.Fields["massSchedule"] = map[string]interface{}{"sunday": "9:00 AM"}
	rich.Fields["upcomingEvents"] = []interface{}{map[string]interface{}{"title": "Parish Picnic"}}

	out := ScoreCategory(category.Church, []records.Record{plain, rich}, "st agnes", philadelphia())

	if len(out) != 2 {
		t.Fatalf("got %d candidates, want 2", len(out))
	}
	if out[0].ID != "rich" {
		t.Errorf("richer record ranked %q first, want %q", out[0].ID, "rich")
	}
	if diff := out[0].Score - out[1].Score; diff != unlockedBonus+scheduleBonus+eventsBonus {
		t.Errorf("boost delta = %d, want %d", diff, unlockedBonus+scheduleBonus+eventsBonus)
	}
}

func TestScoreCategorySkipsNamelessRecords(t *testing.T) {
	recs := []records.Record{
		{ID: "blank", Collection: "Parishes", Fields: map[string]interface{}{"city": "Philadelphia"}},
		parish("ok", "St. Rita Parish", "Philadelphia", "PA", 39.95, -75.16),
	}

	out := ScoreCategory(category.Church, recs, "parish", nil)

	if len(out) != 1 || out[0].ID != "ok" {
		t.Errorf("got %v, want only the named record", out)
	}
}

func TestScoreCategoryIsDeterministic(t *testing.T) {
	recs := []records.Record{
		parish("a", "St. Mary Parish", "Philadelphia", "PA", 39.95, -75.16),
		parish("b", "Holy Trinity Parish", "Philadelphia", "PA", 39.96, -75.17),
		parish("c", "St. Mark Parish", "Norristown", "PA", 40.12, -75.34),
	}

	first := ScoreCategory(category.Church, recs, "parishes in philadelphia", philadelphia())
	second := ScoreCategory(category.Church, recs, "parishes in philadelphia", philadelphia())

	if len(first) != len(second) {
		t.Fatalf("run lengths differ: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i].ID != second[i].ID || first[i].Score != second[i].Score {
			t.Errorf("position %d differs between runs: %+v vs %+v", i, first[i], second[i])
		}
	}
}

func TestScoreAllCoversRequestedCategories(t *testing.T) {
	data := records.ByCategory{
		category.Church: {parish("p1", "St. Mary Parish", "Philadelphia", "PA", 39.95, -75.16)},
		category.School: {},
	}

	out := ScoreAll([]category.Category{category.Church, category.School}, data, "parish", nil)

	if len(out[category.Church]) != 1 {
		t.Errorf("church category has %d candidates, want 1", len(out[category.Church]))
	}
	if got, ok := out[category.School]; !ok || len(got) != 0 {
		t.Errorf("school category = %v, want present and empty", got)
	}
}

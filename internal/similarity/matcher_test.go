package similarity

import (
	"math"
	"testing"
	"time"

	"kurator/internal/catalog"
	"kurator/internal/entity"
)

func eventAt(title, locationName string, lat, lon float64) catalog.Event {
	return catalog.Event{
		Title: title,
		Location: &entity.Location{
			Name: locationName,
			Lat:  lat,
			Lon:  lon,
		},
		StartTime: time.Date(2026, 3, 14, 19, 0, 0, 0, time.UTC),
		Source:    "vhs",
	}
}

func TestHaversineKnownDistance(t *testing.T) {
	// Hof to Munich is roughly 240 km.
	d := Haversine(50.3167, 11.9167, 48.1374, 11.5755)
	if d < 230 || d > 260 {
		t.Errorf("Hof-Munich distance: got %.1f km", d)
	}

	if d := Haversine(50.32, 11.918, 50.32, 11.918); d != 0 {
		t.Errorf("identical coordinates should be 0 km apart: %v", d)
	}
}

func TestPerfectMatchScoresFull(t *testing.T) {
	candidate := eventAt("Jazz Night", "Theater Hof", 50.32, 11.918)
	historical := []catalog.Event{eventAt("Jazz Night", "Theater Hof", 50.32, 11.918)}

	results := New(0.3).FindSimilar(&candidate, historical)
	if len(results) != 1 {
		t.Fatalf("expected one result, got %d", len(results))
	}
	if math.Abs(results[0].Score-1.0) > 1e-9 {
		t.Errorf("perfect match score: got %v, want 1.0", results[0].Score)
	}
	f := results[0].Factors
	if f.Title != 0.6 || f.Location != 0.3 || f.Proximity != 0.1 {
		t.Errorf("factor breakdown: %+v", f)
	}
}

func TestDisjointEventsExcluded(t *testing.T) {
	candidate := eventAt("Jazz Night", "Theater Hof", 50.32, 11.918)
	historical := []catalog.Event{eventAt("Flohmarkt", "Rathausplatz", 48.14, 11.58)}

	if results := New(0.3).FindSimilar(&candidate, historical); len(results) != 0 {
		t.Errorf("disjoint events should score 0 and be excluded: %+v", results)
	}
}

func TestPartialTitleOverlap(t *testing.T) {
	// 2 shared tokens of max(3, 2) tokens → 2/3 * 0.6 = 0.4; plus location.
	candidate := eventAt("Jazz Night Special", "Theater Hof", 50.32, 11.918)
	historical := []catalog.Event{eventAt("Jazz Night", "Somewhere Else", 0, 0)}

	results := New(0.3).FindSimilar(&candidate, historical)
	if len(results) != 1 {
		t.Fatalf("expected one result, got %d", len(results))
	}
	if math.Abs(results[0].Factors.Title-0.4) > 1e-9 {
		t.Errorf("title factor: got %v, want 0.4", results[0].Factors.Title)
	}
	if results[0].Factors.Proximity != 0 {
		t.Error("missing/zero coordinates must contribute nothing")
	}
}

func TestLocationSubstringAndWordMatch(t *testing.T) {
	if got := locationMatch("Theater Hof", "Theater Hof - Studiobühne"); got != 1 {
		t.Errorf("containment should score full: %v", got)
	}
	if got := locationMatch("Theater Hof", "Freiheitshalle Hof"); got != 0.5 {
		t.Errorf("shared word should score half: %v", got)
	}
	if got := locationMatch("Theater Hof", "Rathausplatz"); got != 0 {
		t.Errorf("unrelated names should score 0: %v", got)
	}
	if got := locationMatch("", "Theater Hof"); got != 0 {
		t.Errorf("empty name should score 0: %v", got)
	}
}

func TestResultsSortedDescendingStable(t *testing.T) {
	candidate := eventAt("Jazz Night", "Theater Hof", 50.32, 11.918)
	historical := []catalog.Event{
		eventAt("Jazz Night", "Elsewhere", 0, 0),    // title only: 0.6
		eventAt("Jazz Night", "Theater Hof", 0, 0),  // 0.6 + 0.3 = 0.9
		eventAt("Jazz Night", "Nirgendwo", 0, 0),    // title only: 0.6, ties with first
	}

	results := New(0.3).FindSimilar(&candidate, historical)
	if len(results) != 3 {
		t.Fatalf("expected three results, got %d", len(results))
	}
	if results[0].Event.LocationName() != "Theater Hof" {
		t.Errorf("highest score should come first: %+v", results[0])
	}
	// The two 0.6 ties keep corpus order: "Elsewhere" before "Nirgendwo".
	if results[1].Event.LocationName() != "Elsewhere" || results[2].Event.LocationName() != "Nirgendwo" {
		t.Errorf("ties must preserve historical order: %v then %v",
			results[1].Event.LocationName(), results[2].Event.LocationName())
	}
}

func TestProximityWithinOneKilometer(t *testing.T) {
	candidate := eventAt("Open Air", "Stadtpark", 50.3200, 11.9180)
	near := eventAt("Konzert", "Theresienstein", 50.3250, 11.9200) // a few hundred meters
	far := eventAt("Konzert", "Theresienstein", 50.4200, 11.9180)  // > 10 km

	if got := proximityMatch(&candidate, &near); got != 1 {
		t.Errorf("near events should match: %v", got)
	}
	if got := proximityMatch(&candidate, &far); got != 0 {
		t.Errorf("far events should not match: %v", got)
	}
}

func TestThresholdIsExclusive(t *testing.T) {
	// Exactly 0.3 (location containment only) must not be surfaced.
	candidate := eventAt("Völlig Anderes", "Theater Hof", 0, 0)
	historical := []catalog.Event{eventAt("Unrelated Listing", "Theater Hof", 0, 0)}

	if results := New(0.3).FindSimilar(&candidate, historical); len(results) != 0 {
		t.Errorf("score equal to threshold should be excluded: %+v", results)
	}
}

package catalog

import (
	"errors"
	"testing"
	"time"

	"kurator/internal/entity"
)

func validEvent() Event {
	return Event{
		ID:    "evt_ab12cd34ef56ab12",
		Title: "Jazz Night",
		Location: &entity.Location{
			Name: "Theater Hof",
			Lat:  50.32,
			Lon:  11.918,
		},
		StartTime: time.Date(2026, 3, 14, 19, 30, 0, 0, time.UTC),
		Source:    "vhs",
		Status:    StatusPending,
	}
}

func TestValidateAcceptsCompleteEvent(t *testing.T) {
	ev := validEvent()
	if err := ev.Validate(); err != nil {
		t.Fatalf("valid event rejected: %v", err)
	}
}

func TestValidateFailures(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Event)
	}{
		{"missing id", func(e *Event) { e.ID = "" }},
		{"missing title", func(e *Event) { e.Title = "  " }},
		{"missing source", func(e *Event) { e.Source = "" }},
		{"missing start time", func(e *Event) { e.StartTime = time.Time{} }},
		{"end before start", func(e *Event) { e.EndTime = e.StartTime.Add(-time.Hour) }},
		{"no location at all", func(e *Event) { e.Location = nil }},
		{"embedded location without name", func(e *Event) { e.Location.Name = "" }},
		{"latitude out of range", func(e *Event) { e.Location.Lat = 95 }},
		{"longitude out of range", func(e *Event) { e.Location.Lon = -200 }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ev := validEvent()
			tc.mutate(&ev)
			err := ev.Validate()
			if !errors.Is(err, ErrValidation) {
				t.Errorf("expected ErrValidation, got %v", err)
			}
		})
	}
}

func TestValidateReferenceOnlyLocation(t *testing.T) {
	ev := validEvent()
	ev.Location = nil
	ev.LocationID = "loc_theater_hof"
	if err := ev.Validate(); err != nil {
		t.Errorf("registry reference should satisfy the location requirement: %v", err)
	}
}

func TestStatusTerminal(t *testing.T) {
	if StatusPending.Terminal() {
		t.Error("pending is not terminal")
	}
	if !StatusPublished.Terminal() || !StatusRejected.Terminal() {
		t.Error("published and rejected are terminal")
	}
}

func TestLocationName(t *testing.T) {
	ev := validEvent()
	if got := ev.LocationName(); got != "Theater Hof" {
		t.Errorf("LocationName = %q", got)
	}

	ref := Event{LocationID: "loc_x", LocationOverride: &entity.LocationOverride{Name: "VIP Area"}}
	if got := ref.LocationName(); got != "VIP Area" {
		t.Errorf("override name should surface: %q", got)
	}

	none := Event{}
	if got := none.LocationName(); got != "" {
		t.Errorf("expected empty name, got %q", got)
	}
}

package entity

import (
	"os"
	"path/filepath"
	"testing"
)

func TestRegisterAndReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "locations.json")

	reg, err := OpenLocations(path, nil)
	if err != nil {
		t.Fatalf("OpenLocations failed: %v", err)
	}

	loc := reg.Register("Theater Hof", 50.32, 11.918, "Kulmbacher Str. 5")
	if loc.ID != "loc_theater_hof" {
		t.Errorf("registered ID: %q", loc.ID)
	}
	if err := reg.Save(); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	reloaded, err := OpenLocations(path, nil)
	if err != nil {
		t.Fatalf("reload failed: %v", err)
	}
	got, ok := reloaded.Get("loc_theater_hof")
	if !ok {
		t.Fatal("location missing after reload")
	}
	if got.Name != "Theater Hof" || got.Lat != 50.32 {
		t.Errorf("reloaded record mismatch: %+v", got)
	}
}

func TestRegisterIsIdempotent(t *testing.T) {
	reg, err := OpenLocations(filepath.Join(t.TempDir(), "locations.json"), nil)
	if err != nil {
		t.Fatalf("OpenLocations failed: %v", err)
	}

	first := reg.Register("Theater Hof", 50.32, 11.918, "")
	second := reg.Register("Theater Hof", 99.0, 99.0, "elsewhere")

	if reg.Len() != 1 {
		t.Errorf("duplicate registration should not add a record: len = %d", reg.Len())
	}
	if second.Lat != first.Lat {
		t.Error("existing record should win over re-registration")
	}
}

func TestVerifyAndUsage(t *testing.T) {
	reg, err := OpenLocations(filepath.Join(t.TempDir(), "locations.json"), nil)
	if err != nil {
		t.Fatalf("OpenLocations failed: %v", err)
	}
	loc := reg.Register("Freiheitshalle", 50.31, 11.90, "")

	if err := reg.Verify(loc.ID); err != nil {
		t.Fatalf("Verify failed: %v", err)
	}
	reg.RecordUsage(loc.ID)
	reg.RecordUsage(loc.ID)
	reg.RecordUsage("loc_unknown") // advisory, ignored

	got, _ := reg.Get(loc.ID)
	if !got.Verified {
		t.Error("location should be verified")
	}
	if got.UsageCount != 2 {
		t.Errorf("usage count: got %d, want 2", got.UsageCount)
	}
}

func TestVerifyUnknownID(t *testing.T) {
	reg, err := OpenLocations(filepath.Join(t.TempDir(), "locations.json"), nil)
	if err != nil {
		t.Fatalf("OpenLocations failed: %v", err)
	}
	if err := reg.Verify("loc_missing"); err == nil {
		t.Error("expected error for unknown ID")
	}
}

func TestFindByAlias(t *testing.T) {
	reg, err := OpenLocations(filepath.Join(t.TempDir(), "locations.json"), nil)
	if err != nil {
		t.Fatalf("OpenLocations failed: %v", err)
	}
	loc := reg.Register("Freiheitshalle Hof", 50.31, 11.90, "")
	if err := reg.AddAlias(loc.ID, "Die Halle"); err != nil {
		t.Fatalf("AddAlias failed: %v", err)
	}

	matches := reg.Find("die halle")
	if len(matches) != 1 || matches[0].ID != loc.ID {
		t.Errorf("Find by alias: %+v", matches)
	}
}

func TestOpenLocationsCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "locations.json")
	if err := os.WriteFile(path, []byte("{broken"), 0o644); err != nil {
		t.Fatalf("seed corrupt file: %v", err)
	}
	if _, err := OpenLocations(path, nil); err == nil {
		t.Error("corrupt registry should be an explicit error")
	}
}

func TestOrganizerRegistryRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "organizers.json")

	reg, err := OpenOrganizers(path, nil)
	if err != nil {
		t.Fatalf("OpenOrganizers failed: %v", err)
	}
	org := reg.Register("Kulturverein Hof", "info@kulturverein-hof.de")
	if org.ID != "org_kulturverein_hof" {
		t.Errorf("organizer ID: %q", org.ID)
	}
	if err := reg.Verify(org.ID); err != nil {
		t.Fatalf("Verify failed: %v", err)
	}
	if err := reg.Save(); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	reloaded, err := OpenOrganizers(path, nil)
	if err != nil {
		t.Fatalf("reload failed: %v", err)
	}
	got, ok := reloaded.Get(org.ID)
	if !ok || !got.Verified || got.Email != "info@kulturverein-hof.de" {
		t.Errorf("reloaded organizer mismatch: %+v", got)
	}
}

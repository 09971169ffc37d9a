package textutil

import "testing"

func TestSanitizeToken(t *testing.T) {
	cases := []struct {
		input string
		want  string
	}{
		{"evt_ab12cd34", "evt_ab12cd34"},
		{"Theater Hof", "theater_hof"},
		{"  ", "unknown"},
		{"///", "unknown"},
		{"UPPER-case_ok", "upper-case_ok"},
	}
	for _, tc := range cases {
		if got := SanitizeToken(tc.input); got != tc.want {
			t.Errorf("SanitizeToken(%q) = %q, want %q", tc.input, got, tc.want)
		}
	}
}

func TestFieldSet(t *testing.T) {
	set := FieldSet("Jazz Night jazz NIGHT")
	if len(set) != 2 {
		t.Errorf("FieldSet should deduplicate case-insensitively: %v", set)
	}
	if _, ok := set["jazz"]; !ok {
		t.Error("expected token jazz")
	}
}

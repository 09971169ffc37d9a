package similarity

import (
	"sort"
	"strings"

	"kurator/internal/catalog"
	"kurator/internal/textutil"
)

// Signal weights. Title dominates because venue reuse is common for
// unrelated events.
const (
	titleWeight     = 0.6
	locationWeight  = 0.3
	proximityWeight = 0.1

	// proximityRadiusKM is the distance under which two events count as
	// co-located.
	proximityRadiusKM = 1.0

	// DefaultThreshold is the minimum composite score for a match to be
	// surfaced at all.
	DefaultThreshold = 0.3
)

// Factors breaks a composite score down into its contributing signals.
type Factors struct {
	Title     float64 `json:"title"`
	Location  float64 `json:"location"`
	Proximity float64 `json:"proximity"`
}

// Result pairs a historical event with its similarity to the candidate.
type Result struct {
	Event   catalog.Event `json:"event"`
	Score   float64       `json:"score"`
	Factors Factors       `json:"factors"`
}

// Matcher scores candidates against the published history.
type Matcher struct {
	threshold float64
}

// New creates a matcher. threshold <= 0 falls back to DefaultThreshold.
func New(threshold float64) *Matcher {
	if threshold <= 0 {
		threshold = DefaultThreshold
	}
	return &Matcher{threshold: threshold}
}

// FindSimilar scores candidate against every historical event and returns the
// matches above the threshold, highest score first. Ties keep the historical
// corpus's original relative order.
func (m *Matcher) FindSimilar(candidate *catalog.Event, historical []catalog.Event) []Result {
	if candidate == nil || len(historical) == 0 {
		return nil
	}

	var results []Result
	for i := range historical {
		factors := score(candidate, &historical[i])
		composite := factors.Title + factors.Location + factors.Proximity
		if composite > m.threshold {
			results = append(results, Result{
				Event:   historical[i],
				Score:   composite,
				Factors: factors,
			})
		}
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})
	return results
}

func score(candidate, historical *catalog.Event) Factors {
	var f Factors
	f.Title = titleWeight * titleOverlap(candidate.Title, historical.Title)
	f.Location = locationWeight * locationMatch(candidate.LocationName(), historical.LocationName())
	f.Proximity = proximityWeight * proximityMatch(candidate, historical)
	return f
}

// titleOverlap scores shared whitespace tokens against the longer title:
// |intersection| / max(|a|, |b|), 0 when either title is empty.
func titleOverlap(a, b string) float64 {
	tokensA := textutil.FieldSet(a)
	tokensB := textutil.FieldSet(b)
	if len(tokensA) == 0 || len(tokensB) == 0 {
		return 0
	}

	common := 0
	for token := range tokensA {
		if _, ok := tokensB[token]; ok {
			common++
		}
	}

	longer := len(tokensA)
	if len(tokensB) > longer {
		longer = len(tokensB)
	}
	return float64(common) / float64(longer)
}

// locationMatch returns 1 when either name fully contains the other, 0.5 when
// any single word is shared, 0 otherwise.
func locationMatch(a, b string) float64 {
	a = strings.ToLower(strings.TrimSpace(a))
	b = strings.ToLower(strings.TrimSpace(b))
	if a == "" || b == "" {
		return 0
	}
	if strings.Contains(a, b) || strings.Contains(b, a) {
		return 1
	}
	bTokens := textutil.FieldSet(b)
	for _, word := range strings.Fields(a) {
		if _, ok := bTokens[word]; ok {
			return 0.5
		}
	}
	return 0
}

// proximityMatch returns 1 when both events carry coordinates within the
// proximity radius, 0 otherwise.
func proximityMatch(candidate, historical *catalog.Event) float64 {
	lat1, lon1, ok1 := candidate.Coordinates()
	lat2, lon2, ok2 := historical.Coordinates()
	if !ok1 || !ok2 {
		return 0
	}
	if Haversine(lat1, lon1, lat2, lon2) < proximityRadiusKM {
		return 1
	}
	return 0
}

package identity

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"strings"
	"time"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// ErrEmptyTitle reports that a candidate carried no usable title. This is the
// one fatal identity condition: the candidate is skipped rather than assigned
// a corrupt ID.
var ErrEmptyTitle = errors.New("identity: empty event title")

// unscheduledBucket replaces the date component when a candidate has no start
// time, so undated listings still receive a deterministic ID.
const unscheduledBucket = "unscheduled"

// foldDiacritics decomposes characters and strips combining marks, so
// "Café" and "Cafe" normalize identically.
var foldDiacritics = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Generate derives the stable event ID for a scraped candidate.
//
// The ID is referentially transparent: identical (source, normalized title,
// start date) inputs yield identical IDs across processes and time. A zero
// start time falls back to a deterministic unscheduled bucket keyed by source
// and title.
func Generate(source, title string, start time.Time) (string, error) {
	normalized := NormalizeTitle(title)
	if normalized == "" {
		return "", ErrEmptyTitle
	}

	datePart := unscheduledBucket
	if !start.IsZero() {
		datePart = start.Format("2006-01-02")
	}

	sum := sha256.Sum256([]byte(strings.TrimSpace(source) + "|" + normalized + "|" + datePart))
	return "evt_" + hex.EncodeToString(sum[:])[:16], nil
}

// NormalizeTitle reduces a title to its canonical comparison form: diacritics
// folded, lowercased, punctuation stripped, whitespace collapsed. Minor
// textual noise between scrapes must not change the result.
func NormalizeTitle(title string) string {
	folded, _, err := transform.String(foldDiacritics, title)
	if err != nil {
		folded = title
	}

	var b strings.Builder
	b.Grow(len(folded))
	prevSpace := false
	for _, r := range strings.ToLower(folded) {
		switch {
		case unicode.IsLetter(r) || unicode.IsNumber(r):
			b.WriteRune(r)
			prevSpace = false
		case unicode.IsSpace(r):
			if !prevSpace && b.Len() > 0 {
				b.WriteRune(' ')
				prevSpace = true
			}
		default:
			// Punctuation separates words rather than joining them.
			if !prevSpace && b.Len() > 0 {
				b.WriteRune(' ')
				prevSpace = true
			}
		}
	}
	return strings.TrimSpace(b.String())
}

// SuppressionKey builds the normalized (title, source) pair used by the
// rejection list to match future candidates.
func SuppressionKey(title, source string) string {
	return NormalizeTitle(title) + "|" + strings.ToLower(strings.TrimSpace(source))
}

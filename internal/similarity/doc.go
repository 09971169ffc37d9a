// Package similarity surfaces likely duplicates of a pending candidate among
// previously published events.
//
// Exact-key dedup misses paraphrased titles and re-typed listings; this
// matcher closes that gap with a bounded heuristic: a weighted sum of title
// token overlap, location name matching, and geographic proximity. Scores are
// advisory input for a human reviewer, never an automated merge or rejection
// authority.
package similarity

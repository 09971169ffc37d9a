// Package journal persists a history of ingest and review runs in SQLite.
//
// The journal is advisory operational data, not pipeline state: deleting the
// database loses run history but never affects curation results. Each run row
// captures per-disposition counts so operators can see how many candidates a
// scrape produced, how many were duplicates, and how review sessions ended.
package journal

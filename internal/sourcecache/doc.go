// Package sourcecache remembers which identity keys a scrape source has
// already produced, so repeated scrapes of the same listing are not re-queued
// for review.
//
// Each source owns one bounded cache persisted as a small JSON file. The
// retention policy is strictly FIFO by insertion time: re-seeing a key does
// not refresh it, because the cache tracks the scrape window rather than key
// popularity. A missing or corrupt cache file is never fatal; the cache
// simply starts empty and previously seen keys may be re-processed once.
package sourcecache

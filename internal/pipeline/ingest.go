package pipeline

import (
	"fmt"
	"log/slog"
	"time"

	"kurator/internal/catalog"
	"kurator/internal/fileutil"
	"kurator/internal/identity"
	"kurator/internal/logging"
	"kurator/internal/sourcecache"
)

// Report summarizes one ingest run for a single source.
type Report struct {
	Source     string
	StartedAt  time.Time
	FinishedAt time.Time

	Accepted   int
	Duplicates int
	Suppressed int
	Failed     int
}

// Total returns the number of candidates examined.
func (r Report) Total() int {
	return r.Accepted + r.Duplicates + r.Suppressed + r.Failed
}

// Ingestor routes candidates from a scrape into the pending store.
type Ingestor struct {
	pending  *catalog.PendingStore
	rejected *catalog.RejectedList
	cache    *sourcecache.Cache
	logger   *slog.Logger
	now      func() time.Time
}

// NewIngestor wires an ingestor over the stores for one source's run.
func NewIngestor(pending *catalog.PendingStore, rejected *catalog.RejectedList, cache *sourcecache.Cache, logger *slog.Logger) *Ingestor {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Ingestor{
		pending:  pending,
		rejected: rejected,
		cache:    cache,
		logger:   logging.NewComponentLogger(logger, "ingest"),
		now:      time.Now,
	}
}

// Ingest processes candidates in order and persists the pending store and
// dedup cache afterwards. Candidate titles and start times drive identity
// generation, so the same course scraped twice yields the same id and the
// cache drops the repeat.
func (in *Ingestor) Ingest(source string, candidates []catalog.Event) (Report, error) {
	report := Report{Source: source, StartedAt: in.now().UTC()}

	for i := range candidates {
		ev := candidates[i]

		id, err := identity.Generate(source, ev.Title, ev.StartTime)
		if err != nil {
			report.Failed++
			in.logger.Warn("skipping candidate without usable title",
				logging.Int("index", i),
				logging.Error(err))
			continue
		}
		ev.ID = id
		ev.Source = source

		if in.rejected.IsSuppressed(ev.Title, source) {
			report.Suppressed++
			in.logger.Info("candidate suppressed by rejection record",
				logging.String("event_id", id),
				logging.String("title", ev.Title))
			continue
		}

		if in.cache.IsProcessed(id) || in.pending.ContainsID(id) {
			report.Duplicates++
			in.logger.Debug("candidate already processed",
				logging.String("event_id", id))
			continue
		}

		if ev.ScrapedAt.IsZero() {
			ev.ScrapedAt = in.now().UTC()
		}
		in.cache.MarkProcessed(id)
		in.pending.Append(ev)
		report.Accepted++
	}

	report.FinishedAt = in.now().UTC()

	if err := in.pending.Save(); err != nil {
		return report, fmt.Errorf("saving pending store: %w", err)
	}
	if err := in.cache.Save(); err != nil {
		return report, fmt.Errorf("saving dedup cache: %w", err)
	}

	in.logger.Info("ingest run complete",
		logging.String("source", source),
		logging.Int("accepted", report.Accepted),
		logging.Int("duplicates", report.Duplicates),
		logging.Int("suppressed", report.Suppressed),
		logging.Int("failed", report.Failed))
	return report, nil
}

// LoadCandidates reads a JSON array of candidate events, the hand-off format
// scrape adapters write for the ingest command.
func LoadCandidates(path string) ([]catalog.Event, error) {
	var candidates []catalog.Event
	if err := fileutil.ReadJSON(path, &candidates); err != nil {
		return nil, fmt.Errorf("reading candidates from %s: %w", path, err)
	}
	return candidates, nil
}

package review

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"kurator/internal/catalog"
	"kurator/internal/logging"
	"kurator/internal/resolver"
	"kurator/internal/similarity"
)

// Stores bundles the three catalog stores a session mutates.
type Stores struct {
	Pending   *catalog.PendingStore
	Published *catalog.PublishedStore
	Rejected  *catalog.RejectedList
}

// Options configures a review session.
type Options struct {
	Resolver  *resolver.Resolver
	Matcher   *similarity.Matcher
	// MaxMatches caps how many similar published events are shown per
	// candidate. Zero shows all matches.
	MaxMatches int
	BackupDir  string
	Logger     *slog.Logger
	Input      io.Reader
	Output     io.Writer
}

// Report counts the outcomes of one review session.
type Report struct {
	Published int
	Rejected  int
	Edited    int
	Skipped   int
}

// Session runs the operator review loop.
type Session struct {
	stores     Stores
	resolver   *resolver.Resolver
	matcher    *similarity.Matcher
	maxMatches int
	backupDir  string
	logger     *slog.Logger

	in  *bufio.Scanner
	out io.Writer

	state     State
	selection map[int]struct{}
	report    Report
}

// NewSession builds a session over the given stores. Input and Output default
// to no-op streams so non-interactive callers can use the action methods
// directly.
func NewSession(stores Stores, opts Options) *Session {
	logger := opts.Logger
	if logger == nil {
		logger = logging.NewNop()
	}
	in := opts.Input
	if in == nil {
		in = strings.NewReader("")
	}
	out := opts.Output
	if out == nil {
		out = io.Discard
	}
	return &Session{
		stores:     stores,
		resolver:   opts.Resolver,
		matcher:    opts.Matcher,
		maxMatches: opts.MaxMatches,
		backupDir:  opts.BackupDir,
		logger:     logging.NewComponentLogger(logger, "review"),
		in:         bufio.NewScanner(in),
		out:        out,
		state:      StateReviewing,
		selection:  make(map[int]struct{}),
	}
}

// Report returns the session's outcome counters.
func (s *Session) Report() Report {
	return s.report
}

// Run drives the interactive loop until the pending store is exhausted or the
// operator quits. Committed approvals and rejections stay committed.
func (s *Session) Run() (Report, error) {
	pos := 0
	for s.state != StateDone {
		if pos >= s.stores.Pending.Len() {
			if err := s.transition(StateDone); err != nil {
				return s.report, err
			}
			break
		}

		s.printEvent(pos)
		cmd, ok := s.prompt("[a]pprove [e]dit [r]eject [s]kip [b]atch [q]uit> ")
		if !ok {
			cmd = "q"
		}

		switch cmd {
		case "a", "approve":
			if err := s.Approve(pos); err != nil {
				fmt.Fprintf(s.out, "cannot approve: %v\n", err)
			}
		case "e", "edit":
			s.editLoop(pos)
		case "r", "reject":
			if err := s.Reject(pos); err != nil {
				fmt.Fprintf(s.out, "cannot reject: %v\n", err)
			}
		case "s", "skip":
			s.report.Skipped++
			pos++
		case "b", "batch":
			if err := s.transition(StateBatchSelecting); err != nil {
				return s.report, err
			}
			if err := s.runBatch(); err != nil {
				return s.report, err
			}
			if pos > s.stores.Pending.Len() {
				pos = s.stores.Pending.Len()
			}
		case "q", "quit":
			if err := s.transition(StateDone); err != nil {
				return s.report, err
			}
		default:
			fmt.Fprintf(s.out, "unknown command %q\n", cmd)
		}
	}
	return s.report, nil
}

func (s *Session) prompt(text string) (string, bool) {
	fmt.Fprint(s.out, text)
	if !s.in.Scan() {
		return "", false
	}
	return strings.ToLower(strings.TrimSpace(s.in.Text())), true
}

// promptRaw keeps the operator's original casing, used for edit values and
// batch patterns.
func (s *Session) promptRaw(text string) (string, bool) {
	fmt.Fprint(s.out, text)
	if !s.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(s.in.Text()), true
}

func (s *Session) printEvent(i int) {
	ev := s.stores.Pending.At(i)
	if ev == nil {
		return
	}
	fmt.Fprintf(s.out, "\n[%d/%d] %s\n", i+1, s.stores.Pending.Len(), ev.Title)
	fmt.Fprintf(s.out, "  id: %s  source: %s\n", ev.ID, ev.Source)
	if !ev.StartTime.IsZero() {
		fmt.Fprintf(s.out, "  starts: %s\n", ev.StartTime.Format("2006-01-02 15:04"))
	}

	view := *ev
	if s.resolver != nil {
		if loc, ok := s.resolver.ResolveEventLocation(&view); ok {
			view.Location = loc
		}
	}
	if name := view.LocationName(); name != "" {
		fmt.Fprintf(s.out, "  location: %s\n", name)
	} else if ev.LocationID != "" {
		fmt.Fprintf(s.out, "  location: %s (unresolved)\n", ev.LocationID)
	}

	s.printSimilar(&view)
}

func (s *Session) printSimilar(ev *catalog.Event) {
	if s.matcher == nil || s.stores.Published == nil {
		return
	}
	results := s.matcher.FindSimilar(ev, s.stores.Published.Events())
	if len(results) == 0 {
		return
	}
	if s.maxMatches > 0 && len(results) > s.maxMatches {
		results = results[:s.maxMatches]
	}
	fmt.Fprintf(s.out, "  similar published events:\n")
	for _, res := range results {
		fmt.Fprintf(s.out, "    %.2f  %s\n", res.Score, res.Event.Title)
	}
}

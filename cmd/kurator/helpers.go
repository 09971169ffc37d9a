package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/mattn/go-isatty"

	"kurator/internal/config"
	"kurator/internal/journal"
)

func yesNo(value bool) string {
	if value {
		return "yes"
	}
	return "no"
}

func formatTime(value time.Time) string {
	if value.IsZero() {
		return "-"
	}
	return value.Local().Format("2006-01-02 15:04")
}

func isTerminal(stream any) bool {
	file, ok := stream.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// recordRun persists one run to the journal when it is enabled. Journal
// failures are reported but never fail the command that did the real work.
func recordRun(cfg *config.Config, run journal.Run, errOut io.Writer) {
	if !cfg.Journal.Enabled {
		return
	}
	store, err := journal.Open(cfg.Journal.Path)
	if err != nil {
		fmt.Fprintf(errOut, "warning: journal unavailable: %v\n", err)
		return
	}
	defer store.Close()
	if _, err := store.Record(context.Background(), run); err != nil {
		fmt.Fprintf(errOut, "warning: journal write failed: %v\n", err)
	}
}

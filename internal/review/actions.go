package review

import (
	"errors"
	"fmt"
	"time"

	"kurator/internal/catalog"
	"kurator/internal/logging"
)

// ErrIndexOutOfRange reports an action against a pending index that no longer
// exists.
var ErrIndexOutOfRange = errors.New("review: pending index out of range")

// Approve validates the event at pending index i and, on success, publishes
// it: references resolved with registry usage recorded, published_at stamped,
// backup written, appended to the published store, removed from pending.
// Validation failure leaves everything untouched, registries included, and
// returns the original error.
func (s *Session) Approve(i int) error {
	ev := s.stores.Pending.At(i)
	if ev == nil {
		return ErrIndexOutOfRange
	}

	resolved := *ev
	if s.resolver != nil {
		if loc, ok := s.resolver.ResolveEventLocation(&resolved); ok {
			resolved.Location = loc
		}
		if org, ok := s.resolver.ResolveEventOrganizer(&resolved); ok {
			resolved.Organizer = org
		}
	}

	if err := resolved.Validate(); err != nil {
		return err
	}

	published := resolved
	if s.resolver != nil {
		// ResolveEvents records registry usage, so it runs only once
		// validation has passed.
		published = s.resolver.ResolveEvents([]catalog.Event{*ev})[0]
	}

	published.Status = catalog.StatusPublished
	published.PublishedAt = time.Now().UTC()

	if s.backupDir != "" {
		if _, err := catalog.WriteBackup(s.backupDir, published); err != nil {
			return fmt.Errorf("writing publish backup: %w", err)
		}
	}

	s.stores.Published.Append(published)
	s.stores.Pending.Remove(i)
	if err := s.saveCatalog(); err != nil {
		return err
	}

	s.report.Published++
	s.logger.Info("event published",
		logging.String("event_id", published.ID),
		logging.String("title", published.Title))
	return nil
}

// Reject removes the event at pending index i and records a suppression
// entry for its normalized (title, source) pair. When either key is blank
// the record is skipped with a warning and the event is still removed.
func (s *Session) Reject(i int) error {
	ev := s.stores.Pending.At(i)
	if ev == nil {
		return ErrIndexOutOfRange
	}

	switch err := s.stores.Rejected.Add(ev.Title, ev.Source); {
	case errors.Is(err, catalog.ErrMissingSuppressionKey):
		s.logger.Warn("rejection without suppression record",
			logging.String("event_id", ev.ID),
			logging.Error(err))
	case err != nil:
		return fmt.Errorf("recording rejection: %w", err)
	default:
		if err := s.stores.Rejected.Save(); err != nil {
			return fmt.Errorf("saving rejection list: %w", err)
		}
	}

	removed := s.stores.Pending.Remove(i)
	if err := s.stores.Pending.Save(); err != nil {
		return fmt.Errorf("saving pending store: %w", err)
	}

	s.report.Rejected++
	s.logger.Info("event rejected",
		logging.String("event_id", removed.ID),
		logging.String("title", removed.Title))
	return nil
}

// Edit applies a field mutation to the event at pending index i. The event
// stays pending and keeps the identity id it received at scrape time, even
// when the title changes.
func (s *Session) Edit(i int, apply func(*catalog.Event)) error {
	ev := s.stores.Pending.At(i)
	if ev == nil {
		return ErrIndexOutOfRange
	}

	id := ev.ID
	apply(ev)
	ev.ID = id
	ev.Status = catalog.StatusPending

	if err := s.stores.Pending.Save(); err != nil {
		return fmt.Errorf("saving pending store: %w", err)
	}
	s.report.Edited++
	return nil
}

func (s *Session) saveCatalog() error {
	if err := s.stores.Published.Save(); err != nil {
		return fmt.Errorf("saving published store: %w", err)
	}
	if err := s.stores.Pending.Save(); err != nil {
		return fmt.Errorf("saving pending store: %w", err)
	}
	return nil
}

func (s *Session) editLoop(i int) {
	fmt.Fprintf(s.out, "edit fields (title, description, url, category), empty line to finish\n")
	for {
		field, ok := s.prompt("field> ")
		if !ok || field == "" {
			return
		}
		value, ok := s.promptRaw("value> ")
		if !ok {
			return
		}

		err := s.Edit(i, func(ev *catalog.Event) {
			switch field {
			case "title":
				ev.Title = value
			case "description":
				ev.Description = value
			case "url":
				ev.URL = value
			case "category":
				ev.Category = value
			default:
				fmt.Fprintf(s.out, "unknown field %q\n", field)
			}
		})
		if err != nil {
			fmt.Fprintf(s.out, "cannot edit: %v\n", err)
			return
		}
	}
}

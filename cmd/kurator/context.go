package main

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"sync"

	"github.com/gofrs/flock"

	"kurator/internal/catalog"
	"kurator/internal/config"
	"kurator/internal/entity"
	"kurator/internal/logging"
)

type commandContext struct {
	configFlag *string

	configOnce sync.Once
	config     *config.Config
	configErr  error

	loggerOnce sync.Once
	logger     *slog.Logger
	loggerErr  error
}

func newCommandContext(configFlag *string) *commandContext {
	return &commandContext{configFlag: configFlag}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, _, _, err := config.Load(path)
		if err != nil {
			c.configErr = err
			return
		}
		if err := cfg.EnsureDirectories(); err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

// ensureLogger builds a file-backed logger so interactive output stays clean
// on stdout.
func (c *commandContext) ensureLogger() (*slog.Logger, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	c.loggerOnce.Do(func() {
		c.logger, c.loggerErr = logging.New(logging.Options{
			Level:       cfg.Logging.Level,
			Format:      cfg.Logging.Format,
			OutputPaths: []string{filepath.Join(cfg.Paths.LogDir, "kurator.log")},
		})
	})
	return c.logger, c.loggerErr
}

type stores struct {
	Pending   *catalog.PendingStore
	Published *catalog.PublishedStore
	Rejected  *catalog.RejectedList
}

func (c *commandContext) openStores() (stores, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return stores{}, err
	}
	logger, err := c.ensureLogger()
	if err != nil {
		return stores{}, err
	}

	pending, err := catalog.OpenPending(cfg.PendingPath(), logger)
	if err != nil {
		return stores{}, fmt.Errorf("open pending store: %w", err)
	}
	published, err := catalog.OpenPublished(cfg.PublishedPath(), logger)
	if err != nil {
		return stores{}, fmt.Errorf("open published store: %w", err)
	}
	rejected, err := catalog.OpenRejected(cfg.RejectedPath(), logger)
	if err != nil {
		return stores{}, fmt.Errorf("open rejection list: %w", err)
	}
	return stores{Pending: pending, Published: published, Rejected: rejected}, nil
}

func (c *commandContext) openRegistries() (*entity.LocationRegistry, *entity.OrganizerRegistry, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, nil, err
	}
	logger, err := c.ensureLogger()
	if err != nil {
		return nil, nil, err
	}

	locations, err := entity.OpenLocations(cfg.LocationsPath(), logger)
	if err != nil {
		return nil, nil, fmt.Errorf("open location registry: %w", err)
	}
	organizers, err := entity.OpenOrganizers(cfg.OrganizersPath(), logger)
	if err != nil {
		return nil, nil, fmt.Errorf("open organizer registry: %w", err)
	}
	return locations, organizers, nil
}

// acquireLock takes the data-directory session lock. Ingest and review assume
// a single writer; a held lock means another session is active.
func (c *commandContext) acquireLock() (func(), error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}

	lock := flock.New(cfg.LockPath())
	ok, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire session lock: %w", err)
	}
	if !ok {
		return nil, fmt.Errorf("another kurator session holds %s", cfg.LockPath())
	}
	return func() { _ = lock.Unlock() }, nil
}

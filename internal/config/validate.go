package config

import (
	"errors"
	"fmt"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateDedup(); err != nil {
		return err
	}
	if err := c.validateSimilarity(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateDedup() error {
	if c.Dedup.MaxEntries <= 0 {
		return errors.New("dedup.max_entries must be positive")
	}
	return nil
}

func (c *Config) validateSimilarity() error {
	if c.Similarity.Threshold < 0 || c.Similarity.Threshold > 1 {
		return errors.New("similarity.threshold must be between 0 and 1")
	}
	if c.Similarity.MaxResults <= 0 {
		return errors.New("similarity.max_results must be positive")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be \"console\" or \"json\", got %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be one of debug, info, warn, error; got %q", c.Logging.Level)
	}
	return nil
}

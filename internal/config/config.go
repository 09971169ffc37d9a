package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

//go:embed sample_config.toml
var sampleConfig string

// Paths contains directory configuration for all persistent state.
type Paths struct {
	DataDir     string `toml:"data_dir"`     // pending/published/rejected stores
	RegistryDir string `toml:"registry_dir"` // location and organizer registries
	CacheDir    string `toml:"cache_dir"`    // per-source dedup cache files
	BackupDir   string `toml:"backup_dir"`   // publish-time backup copies
	LogDir      string `toml:"log_dir"`
}

// Dedup contains configuration for the per-source dedup cache.
type Dedup struct {
	MaxEntries int `toml:"max_entries"`
}

// Similarity contains configuration for near-duplicate detection during review.
type Similarity struct {
	// Threshold is the minimum composite score for a historical event to be
	// surfaced as a likely duplicate.
	Threshold float64 `toml:"threshold"`
	// MaxResults caps how many matches are shown per candidate.
	MaxResults int `toml:"max_results"`
}

// Journal contains configuration for the SQLite run journal.
type Journal struct {
	Enabled bool   `toml:"enabled"`
	Path    string `toml:"path"` // Default: <data_dir>/journal.db
}

// Logging contains configuration for log output.
type Logging struct {
	Format string `toml:"format"`
	Level  string `toml:"level"`
}

// Config encapsulates all configuration values for kurator.
//
// Configuration sections by subsystem:
//   - Paths: store, registry, cache, backup, and log directories
//   - Dedup: per-source dedup cache capacity
//   - Similarity: near-duplicate scoring threshold and result cap
//   - Journal: SQLite run journal location
//   - Logging: log format and level
type Config struct {
	Paths      Paths      `toml:"paths"`
	Dedup      Dedup      `toml:"dedup"`
	Similarity Similarity `toml:"similarity"`
	Journal    Journal    `toml:"journal"`
	Logging    Logging    `toml:"logging"`
}

// DefaultConfigPath returns the absolute path to the default configuration file location.
func DefaultConfigPath() (string, error) {
	return expandPath("~/.config/kurator/config.toml")
}

// Load locates, parses, and validates a configuration file. The returned
// config has all path fields expanded and normalized. When no file exists,
// repository defaults apply and the boolean result is false.
func Load(path string) (*Config, string, bool, error) {
	cfg := Default()

	resolvedPath, exists, err := resolveConfigPath(path)
	if err != nil {
		return nil, "", false, err
	}

	if exists {
		file, err := os.Open(resolvedPath)
		if err != nil {
			return nil, "", false, fmt.Errorf("open config: %w", err)
		}
		defer file.Close()

		decoder := toml.NewDecoder(file)
		if err := decoder.Decode(&cfg); err != nil {
			return nil, "", false, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := cfg.normalize(); err != nil {
		return nil, "", false, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, "", false, err
	}

	return &cfg, resolvedPath, exists, nil
}

func resolveConfigPath(path string) (string, bool, error) {
	if path != "" {
		expanded, err := expandPath(path)
		if err != nil {
			return "", false, err
		}
		_, err = os.Stat(expanded)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return expanded, false, nil
			}
			return "", false, fmt.Errorf("stat config: %w", err)
		}
		return expanded, true, nil
	}

	defaultPath, err := DefaultConfigPath()
	if err != nil {
		return "", false, err
	}

	projectPath, err := filepath.Abs("kurator.toml")
	if err != nil {
		return "", false, err
	}

	if info, err := os.Stat(defaultPath); err == nil && !info.IsDir() {
		return defaultPath, true, nil
	}
	if info, err := os.Stat(projectPath); err == nil && !info.IsDir() {
		return projectPath, true, nil
	}
	return defaultPath, false, nil
}

// EnsureDirectories creates every configured directory.
func (c *Config) EnsureDirectories() error {
	for _, dir := range []string{c.Paths.DataDir, c.Paths.RegistryDir, c.Paths.CacheDir, c.Paths.BackupDir, c.Paths.LogDir} {
		if strings.TrimSpace(dir) == "" {
			continue
		}
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create directory %s: %w", dir, err)
		}
	}
	return nil
}

// PendingPath returns the pending events store location.
func (c *Config) PendingPath() string {
	return filepath.Join(c.Paths.DataDir, "pending_events.json")
}

// PublishedPath returns the published events store location.
func (c *Config) PublishedPath() string {
	return filepath.Join(c.Paths.DataDir, "events.json")
}

// RejectedPath returns the rejection suppression store location.
func (c *Config) RejectedPath() string {
	return filepath.Join(c.Paths.DataDir, "rejected_events.json")
}

// LocationsPath returns the location registry file.
func (c *Config) LocationsPath() string {
	return filepath.Join(c.Paths.RegistryDir, "locations.json")
}

// OrganizersPath returns the organizer registry file.
func (c *Config) OrganizersPath() string {
	return filepath.Join(c.Paths.RegistryDir, "organizers.json")
}

// SourceCachePath returns the dedup cache file for a scrape source.
func (c *Config) SourceCachePath(source string) string {
	return filepath.Join(c.Paths.CacheDir, source+"_cache.json")
}

// LockPath returns the session lock file guarding the data directory.
func (c *Config) LockPath() string {
	return filepath.Join(c.Paths.DataDir, "kurator.lock")
}

// SampleConfig returns the embedded sample configuration document.
func SampleConfig() string {
	return sampleConfig
}

// CreateSample writes a sample configuration file to the specified location.
func CreateSample(path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create config directory: %w", err)
		}
	}
	if err := os.WriteFile(path, []byte(sampleConfig), 0o644); err != nil {
		return fmt.Errorf("write sample config: %w", err)
	}
	return nil
}

// ExpandPath resolves ~ and relative segments in a user-supplied path.
func ExpandPath(pathValue string) (string, error) {
	return expandPath(pathValue)
}

func expandPath(pathValue string) (string, error) {
	if pathValue == "" {
		return pathValue, nil
	}
	if strings.HasPrefix(pathValue, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		if pathValue == "~" {
			pathValue = home
		} else if len(pathValue) > 1 && (pathValue[1] == '/' || pathValue[1] == '\\') {
			pathValue = filepath.Join(home, pathValue[2:])
		}
	}
	cleaned := filepath.Clean(pathValue)
	absolute, err := filepath.Abs(cleaned)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path for %q: %w", cleaned, err)
	}
	return absolute, nil
}

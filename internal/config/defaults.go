package config

const (
	defaultDataDir         = "~/.local/share/kurator/data"
	defaultRegistryDir     = "~/.local/share/kurator/registry"
	defaultCacheDir        = "~/.local/share/kurator/cache"
	defaultBackupDir       = "~/.local/share/kurator/backups"
	defaultLogDir          = "~/.local/share/kurator/logs"
	defaultDedupMaxEntries = 500
	defaultSimThreshold    = 0.3
	defaultSimMaxResults   = 3
	defaultLogFormat       = "console"
	defaultLogLevel        = "info"
	defaultJournalEnabled  = true
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			DataDir:     defaultDataDir,
			RegistryDir: defaultRegistryDir,
			CacheDir:    defaultCacheDir,
			BackupDir:   defaultBackupDir,
			LogDir:      defaultLogDir,
		},
		Dedup: Dedup{
			MaxEntries: defaultDedupMaxEntries,
		},
		Similarity: Similarity{
			Threshold:  defaultSimThreshold,
			MaxResults: defaultSimMaxResults,
		},
		Journal: Journal{
			Enabled: defaultJournalEnabled,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}

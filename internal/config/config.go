package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// StructuredConfig is the top-level configuration container for icebox. It
// aggregates all sub-configurations and is populated by merging values from
// command-line flags, environment variables, and an optional JSON file on top
// of built-in defaults.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
//
// All environment lookups additionally carry the global ICEBOX_ prefix.
type StructuredConfig struct {
	// App holds application-level settings such as the account identity used
	// to namespace the local cache.
	App App `envPrefix:"APP_"`

	// Remote holds endpoint and authentication settings for the archive
	// service.
	Remote Remote `envPrefix:"REMOTE_"`

	// Storage holds the local reconciliation-cache database settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Transfer holds part sizes for multipart uploads and retrievals.
	Transfer Transfer `envPrefix:"TRANSFER_"`

	// Jobs holds the polling parameters for blocking job waits.
	Jobs Jobs `envPrefix:"JOBS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged below the values
	// already loaded from flags and environment variables.
	// Populated via the ICEBOX_CONFIG environment variable or the
	// -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// AccountKey is the explicit account identity used to namespace records
	// in the reconciliation cache, so that one cache database can serve
	// several remote accounts without collision. The cache itself never
	// performs credential discovery; this value must be supplied.
	// Env: ICEBOX_APP_ACCOUNT_KEY
	AccountKey string `env:"ACCOUNT_KEY"`

	// Verbose enables debug-level diagnostics on stderr.
	// Env: ICEBOX_APP_VERBOSE
	Verbose bool `env:"VERBOSE"`
}

// Remote holds network settings for the archive-service transport.
type Remote struct {
	// Endpoint is the base URL of the archive service,
	// e.g. "https://archive.example.com".
	// Env: ICEBOX_REMOTE_ENDPOINT
	Endpoint string `env:"ENDPOINT"`

	// APIToken is the bearer token attached to every request.
	// Env: ICEBOX_REMOTE_API_TOKEN
	APIToken string `env:"API_TOKEN"`

	// RequestTimeout bounds each individual HTTP request. It does not bound
	// blocking job waits, which have their own polling budget in Jobs.
	// Env: ICEBOX_REMOTE_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Storage groups local persistence settings.
type Storage struct {
	// DB holds the reconciliation-cache database settings.
	DB DB `envPrefix:"DB_"`
}

// DB contains the cache database connection settings.
type DB struct {
	// Driver selects the database backend: "sqlite3" (default) or
	// "postgres".
	// Env: ICEBOX_STORAGE_DB_DRIVER
	Driver string `env:"DRIVER"`

	// DSN is the connection string. For sqlite3 this is a file path; the
	// default lives under the user cache directory.
	// Env: ICEBOX_STORAGE_DB_DSN
	DSN string `env:"DSN"`
}

// Transfer holds chunked-transfer tuning.
type Transfer struct {
	// UploadPartSize is the multipart threshold and part size for uploads,
	// in bytes. Must be a power of two between 1 MiB and 4 GiB.
	// Env: ICEBOX_TRANSFER_UPLOAD_PART_SIZE
	UploadPartSize int64 `env:"UPLOAD_PART_SIZE"`

	// RetrievePartSize is the multipart threshold and range size for
	// downloads, in bytes. Same constraints as UploadPartSize.
	// Env: ICEBOX_TRANSFER_RETRIEVE_PART_SIZE
	RetrievePartSize int64 `env:"RETRIEVE_PART_SIZE"`
}

// Jobs holds the blocking-wait polling budget.
type Jobs struct {
	// PollInterval is the sleep between successive remote job-list polls.
	// Env: ICEBOX_JOBS_POLL_INTERVAL
	PollInterval time.Duration `env:"POLL_INTERVAL"`

	// PollAttempts bounds the number of polls before a blocking wait gives
	// up with a timeout error.
	// Env: ICEBOX_JOBS_POLL_ATTEMPTS
	PollAttempts int `env:"POLL_ATTEMPTS"`
}

// GetClientConfig builds and validates the merged configuration, and returns
// the positional command-line arguments left over after global flag parsing
// (the subcommand and its own arguments).
func GetClientConfig() (*StructuredConfig, []string, error) {
	return getClientConfig(os.Args[1:])
}

func getClientConfig(args []string) (*StructuredConfig, []string, error) {
	flagCfg, rest, err := parseFlags(args)
	if err != nil {
		return nil, nil, fmt.Errorf("error parsing flags: %w", err)
	}

	cfg, err := newConfigBuilder().
		with(flagCfg).
		withEnv().
		withJSON().
		with(defaultConfig()).
		build()
	if err != nil {
		return nil, nil, fmt.Errorf("error get structured config: %w", err)
	}

	return cfg, rest, nil
}

// defaultConfig supplies the built-in fallback values merged below every
// other source. Part sizes match the service's sweet spot for interactive
// use: 32 MiB upload parts and 8 MiB retrieval ranges.
func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		Storage: Storage{
			DB: DB{
				Driver: "sqlite3",
				DSN:    defaultCacheDSN(),
			},
		},
		Remote: Remote{
			RequestTimeout: 60 * time.Second,
		},
		Transfer: Transfer{
			UploadPartSize:   32 << 20,
			RetrievePartSize: 8 << 20,
		},
		Jobs: Jobs{
			PollInterval: 600 * time.Second,
			PollAttempts: 144,
		},
	}
}

// defaultCacheDSN returns the XDG-style default cache database path:
// $XDG_CACHE_HOME/icebox/icebox.db, falling back to ~/.cache.
func defaultCacheDSN() string {
	cacheHome := os.Getenv("XDG_CACHE_HOME")
	if cacheHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "icebox.db"
		}
		cacheHome = filepath.Join(home, ".cache")
	}
	return filepath.Join(cacheHome, "icebox", "icebox.db")
}

package config

import (
	"flag"
	"io"
	"time"
)

// parseFlags parses the global flags that precede the subcommand and returns
// the partial configuration they describe plus the remaining positional
// arguments (subcommand name and subcommand arguments). Subcommand-specific
// flags such as --wait or --fix are parsed later by the CLI dispatcher.
//
// Flags:
//
//	-endpoint         archive service base URL
//	-token            API bearer token
//	-account-key      account identity used to namespace the local cache
//	-d                cache database DSN
//	-driver           cache database driver (sqlite3 or postgres)
//	-c/-config        JSON file path with configs
//	-request-timeout  per-request timeout (e.g. "30s", "1m")
//	-verbose          enable debug diagnostics on stderr
func parseFlags(args []string) (*StructuredConfig, []string, error) {
	var endpoint string
	var apiToken string
	var accountKey string
	var databaseDSN string
	var databaseDriver string
	var jsonConfigPath string
	var requestTimeout time.Duration
	var verbose bool

	fs := flag.NewFlagSet("icebox", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.StringVar(&endpoint, "endpoint", "", "Archive service base URL")
	fs.StringVar(&apiToken, "token", "", "API bearer token")
	fs.StringVar(&accountKey, "account-key", "", "Account identity for the cache namespace")
	fs.StringVar(&databaseDSN, "d", "", "Cache database DSN")
	fs.StringVar(&databaseDriver, "driver", "", "Cache database driver (sqlite3 or postgres)")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.BoolVar(&verbose, "verbose", false, "Enable debug diagnostics")

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	cfg := &StructuredConfig{
		App: App{
			AccountKey: accountKey,
			Verbose:    verbose,
		},
		Remote: Remote{
			Endpoint:       endpoint,
			APIToken:       apiToken,
			RequestTimeout: requestTimeout,
		},
		Storage: Storage{
			DB: DB{
				Driver: databaseDriver,
				DSN:    databaseDSN,
			},
		},
		JSONFilePath: jsonConfigPath,
	}

	return cfg, fs.Args(), nil
}

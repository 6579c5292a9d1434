package config

import "errors"

var (
	// ErrInvalidAppConfigs is returned when the account key is missing. The
	// cache must be namespaced by an explicit account identity.
	ErrInvalidAppConfigs = errors.New("invalid app configs: account key is required")

	// ErrInvalidRemoteConfigs is returned when no archive-service endpoint
	// is configured.
	ErrInvalidRemoteConfigs = errors.New("invalid remote configs: endpoint is required")

	// ErrInvalidStorageConfigs is returned when the cache DSN is empty or
	// the driver is not one of the supported backends.
	ErrInvalidStorageConfigs = errors.New("invalid storage configs: need a DSN and a sqlite3 or postgres driver")

	// ErrInvalidJobsConfigs is returned when the polling budget is
	// non-positive.
	ErrInvalidJobsConfigs = errors.New("invalid jobs configs: poll interval and attempts must be positive")
)

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv(t *testing.T) {
	t.Setenv("ICEBOX_APP_ACCOUNT_KEY", "env-acct")
	t.Setenv("ICEBOX_REMOTE_ENDPOINT", "https://env.example.com")
	t.Setenv("ICEBOX_REMOTE_REQUEST_TIMEOUT", "45s")
	t.Setenv("ICEBOX_STORAGE_DB_DRIVER", "postgres")
	t.Setenv("ICEBOX_STORAGE_DB_DSN", "postgres://localhost/icebox")
	t.Setenv("ICEBOX_TRANSFER_UPLOAD_PART_SIZE", "16777216")
	t.Setenv("ICEBOX_JOBS_POLL_INTERVAL", "5m")
	t.Setenv("ICEBOX_JOBS_POLL_ATTEMPTS", "12")

	cfg := &StructuredConfig{}
	require.NoError(t, parseEnv(cfg))

	assert.Equal(t, "env-acct", cfg.App.AccountKey)
	assert.Equal(t, "https://env.example.com", cfg.Remote.Endpoint)
	assert.Equal(t, 45*time.Second, cfg.Remote.RequestTimeout)
	assert.Equal(t, "postgres", cfg.Storage.DB.Driver)
	assert.Equal(t, "postgres://localhost/icebox", cfg.Storage.DB.DSN)
	assert.Equal(t, int64(16<<20), cfg.Transfer.UploadPartSize)
	assert.Equal(t, 5*time.Minute, cfg.Jobs.PollInterval)
	assert.Equal(t, 12, cfg.Jobs.PollAttempts)
}

func TestParseEnvBadValue(t *testing.T) {
	t.Setenv("ICEBOX_JOBS_POLL_ATTEMPTS", "not-a-number")

	cfg := &StructuredConfig{}
	assert.Error(t, parseEnv(cfg))
}

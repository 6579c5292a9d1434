package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempJSON(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestParseJSON(t *testing.T) {
	path := writeTempJSON(t, `{
		"app": {"account_key": "json-acct"},
		"remote": {
			"endpoint": "https://json.example.com",
			"api_token": "secret",
			"request_timeout": "2m"
		},
		"storage": {"db": {"driver": "sqlite3", "dsn": "/tmp/json.db"}},
		"transfer": {"upload_part_size": 1048576, "retrieve_part_size": 1048576},
		"jobs": {"poll_interval": "10m", "poll_attempts": 6}
	}`)

	cfg, err := parseJSON(path)
	require.NoError(t, err)

	assert.Equal(t, "json-acct", cfg.App.AccountKey)
	assert.Equal(t, "https://json.example.com", cfg.Remote.Endpoint)
	assert.Equal(t, "secret", cfg.Remote.APIToken)
	assert.Equal(t, 2*time.Minute, cfg.Remote.RequestTimeout)
	assert.Equal(t, "/tmp/json.db", cfg.Storage.DB.DSN)
	assert.Equal(t, int64(1<<20), cfg.Transfer.UploadPartSize)
	assert.Equal(t, 10*time.Minute, cfg.Jobs.PollInterval)
	assert.Equal(t, 6, cfg.Jobs.PollAttempts)
}

func TestParseJSONMissingFile(t *testing.T) {
	_, err := parseJSON("/definitely/not/here.json")
	assert.Error(t, err)
}

func TestDurationUnmarshal(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want time.Duration
	}{
		{name: "string form", in: `"90s"`, want: 90 * time.Second},
		{name: "number form", in: `60000000000`, want: time.Minute},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Duration
			require.NoError(t, d.UnmarshalJSON([]byte(tt.in)))
			assert.Equal(t, tt.want, time.Duration(d))
		})
	}
}

func TestGetClientConfigEndToEnd(t *testing.T) {
	path := writeTempJSON(t, `{
		"app": {"account_key": "json-acct"},
		"remote": {"endpoint": "https://json.example.com"}
	}`)

	cfg, rest, err := getClientConfig([]string{"-c", path, "vault", "list"})
	require.NoError(t, err)

	assert.Equal(t, "json-acct", cfg.App.AccountKey)
	assert.Equal(t, "https://json.example.com", cfg.Remote.Endpoint)
	// Defaults filled below the JSON file.
	assert.Equal(t, "sqlite3", cfg.Storage.DB.Driver)
	assert.Equal(t, 144, cfg.Jobs.PollAttempts)
	assert.Equal(t, []string{"vault", "list"}, rest)
}

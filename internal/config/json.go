package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] for JSON decoding, using
// the [Duration] wrapper so intervals can be written as "10m" or "600s".
type StructuredJSONConfig struct {
	App struct {
		AccountKey string `json:"account_key"`
	} `json:"app,omitempty"`

	Remote struct {
		Endpoint       string   `json:"endpoint"`
		APIToken       string   `json:"api_token"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"remote,omitempty"`

	Storage struct {
		DB struct {
			Driver string `json:"driver"`
			DSN    string `json:"dsn"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Transfer struct {
		UploadPartSize   int64 `json:"upload_part_size"`
		RetrievePartSize int64 `json:"retrieve_part_size"`
	} `json:"transfer,omitempty"`

	Jobs struct {
		PollInterval Duration `json:"poll_interval"`
		PollAttempts int      `json:"poll_attempts"`
	} `json:"jobs,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			AccountKey: jsonCfg.App.AccountKey,
		},
		Remote: Remote{
			Endpoint:       jsonCfg.Remote.Endpoint,
			APIToken:       jsonCfg.Remote.APIToken,
			RequestTimeout: time.Duration(jsonCfg.Remote.RequestTimeout),
		},
		Storage: Storage{
			DB: DB{
				Driver: jsonCfg.Storage.DB.Driver,
				DSN:    jsonCfg.Storage.DB.DSN,
			},
		},
		Transfer: Transfer{
			UploadPartSize:   jsonCfg.Transfer.UploadPartSize,
			RetrievePartSize: jsonCfg.Transfer.RetrievePartSize,
		},
		Jobs: Jobs{
			PollInterval: time.Duration(jsonCfg.Jobs.PollInterval),
			PollAttempts: jsonCfg.Jobs.PollAttempts,
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling
// from strings like "1h", "30s".
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}

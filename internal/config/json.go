package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

type structuredJSONConfig struct {
	App struct {
		LogPath string `json:"log_path"`
	} `json:"app,omitempty"`

	Remote struct {
		ScriptURL      string   `json:"script_url"`
		UploadURL      string   `json:"upload_url"`
		Disabled       bool     `json:"disabled"`
		RequestTimeout Duration `json:"request_timeout"`
		RetryMax       int      `json:"retry_max"`
	} `json:"remote,omitempty"`

	Cache struct {
		Path string `json:"path"`
	} `json:"cache,omitempty"`

	Watch struct {
		Interval          Duration `json:"interval"`
		BookingsSheetID   string   `json:"bookings_sheet_id"`
		VoicemailsSheetID string   `json:"voicemails_sheet_id"`
	} `json:"watch,omitempty"`

	Stub struct {
		HTTPAddress string `json:"http_address"`
		DBPath      string `json:"db_path"`
	} `json:"stub,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg structuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			LogPath: jsonCfg.App.LogPath,
		},
		Remote: Remote{
			ScriptURL:      jsonCfg.Remote.ScriptURL,
			UploadURL:      jsonCfg.Remote.UploadURL,
			Disabled:       jsonCfg.Remote.Disabled,
			RequestTimeout: time.Duration(jsonCfg.Remote.RequestTimeout),
			RetryMax:       jsonCfg.Remote.RetryMax,
		},
		Cache: Cache{
			Path: jsonCfg.Cache.Path,
		},
		Watch: Watch{
			Interval:          time.Duration(jsonCfg.Watch.Interval),
			BookingsSheetID:   jsonCfg.Watch.BookingsSheetID,
			VoicemailsSheetID: jsonCfg.Watch.VoicemailsSheetID,
		},
		Stub: Stub{
			HTTPAddress: jsonCfg.Stub.HTTPAddress,
			DBPath:      jsonCfg.Stub.DBPath,
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON
// unmarshaling from strings like "1h", "30s".
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

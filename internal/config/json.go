package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

type StructuredJSONConfig struct {
	App struct {
		UserID  string `json:"user_id"`
		Version string `json:"version"`
	} `json:"app,omitempty"`

	Endpoints struct {
		UploadURL string `json:"upload_url"`
		CreateURL string `json:"create_url"`
		GetURL    string `json:"get_url"`
		UpdateURL string `json:"update_url"`
		DeleteURL string `json:"delete_url"`
	} `json:"endpoints,omitempty"`

	Adapter struct {
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"adapter,omitempty"`

	Assistant struct {
		ReplyDelay Duration `json:"reply_delay"`
	} `json:"assistant,omitempty"`
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
			UserID:  jsonCfg.App.UserID,
			Version: jsonCfg.App.Version,
		},
		Endpoints: Endpoints{
			UploadURL: jsonCfg.Endpoints.UploadURL,
			CreateURL: jsonCfg.Endpoints.CreateURL,
			GetURL:    jsonCfg.Endpoints.GetURL,
			UpdateURL: jsonCfg.Endpoints.UpdateURL,
			DeleteURL: jsonCfg.Endpoints.DeleteURL,
		},
		Adapter: Adapter{
			RequestTimeout: time.Duration(jsonCfg.Adapter.RequestTimeout),
		},
		Assistant: Assistant{
			ReplyDelay: time.Duration(jsonCfg.Assistant.ReplyDelay),
		},
		JSONFilePath: "",
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
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

package config

import (
	"fmt"
	"time"
)

// DefaultReplyDelay is the assistant "thinking" pause used when no value is
// configured.
const DefaultReplyDelay = 400 * time.Millisecond

// Environment variable names of the five remote endpoint URLs. Exported so
// error messages produced outside this package can name the variable that is
// missing.
const (
	EnvUploadURL = "JOURNAL_UPLOAD_URL"
	EnvCreateURL = "JOURNAL_CREATE_URL"
	EnvGetURL    = "JOURNAL_GET_URL"
	EnvUpdateURL = "JOURNAL_UPDATE_URL"
	EnvDeleteURL = "JOURNAL_DELETE_URL"
)

// ClientApp holds client-side application settings derived from the shared
// structured config.
type ClientApp struct {
	// UserID is the journal owner identifier. May be empty: the UI then
	// asks for it before the main screen opens.
	UserID string
	// Version is the application version string.
	Version string
}

// ClientEndpoints holds the resolved URLs of the five remote journal
// endpoints used by the client transport layer.
type ClientEndpoints struct {
	UploadURL string
	CreateURL string
	GetURL    string
	UpdateURL string
	DeleteURL string
}

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// RequestTimeout is the default timeout for outbound client requests.
	// Zero means no timeout.
	RequestTimeout time.Duration
}

// ClientAssistant holds reflection assistant settings.
type ClientAssistant struct {
	// ReplyDelay is the pause before a scheduled assistant reply lands in
	// the transcript.
	ReplyDelay time.Duration
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// App contains application-level client settings.
	App ClientApp
	// Endpoints contains the remote journal endpoint URLs.
	Endpoints ClientEndpoints
	// Adapter contains client transport timeouts.
	Adapter ClientAdapter
	// Assistant contains reflection assistant settings.
	Assistant ClientAssistant
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration.
//
// It loads the base config via [GetStructuredConfig], maps only the fields
// relevant to the client runtime, applies defaults, and validates the
// resulting [ClientConfig].
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		App: ClientApp{
			UserID:  cfg.App.UserID,
			Version: cfg.App.Version,
		},
		Endpoints: ClientEndpoints{
			UploadURL: cfg.Endpoints.UploadURL,
			CreateURL: cfg.Endpoints.CreateURL,
			GetURL:    cfg.Endpoints.GetURL,
			UpdateURL: cfg.Endpoints.UpdateURL,
			DeleteURL: cfg.Endpoints.DeleteURL,
		},
		Adapter: ClientAdapter{
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Assistant: ClientAssistant{
			ReplyDelay: cfg.Assistant.ReplyDelay,
		},
	}

	if clientCfg.Assistant.ReplyDelay <= 0 {
		clientCfg.Assistant.ReplyDelay = DefaultReplyDelay
	}

	return clientCfg, clientCfg.validate()
}

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validClientConfig() *ClientConfig {
	return &ClientConfig{
		App: ClientApp{UserID: "u1"},
		Endpoints: ClientEndpoints{
			UploadURL: "http://localhost:8080/api/upload",
			CreateURL: "http://localhost:8080/api/entries/create",
			GetURL:    "http://localhost:8080/api/entries/get",
			UpdateURL: "http://localhost:8080/api/entries/update",
			DeleteURL: "http://localhost:8080/api/entries/delete",
		},
		Adapter:   ClientAdapter{RequestTimeout: 30 * time.Second},
		Assistant: ClientAssistant{ReplyDelay: DefaultReplyDelay},
	}
}

func TestClientConfigValidate_Valid(t *testing.T) {
	cfg := validClientConfig()
	require.NoError(t, cfg.validate())
}

func TestClientConfigValidate_MissingEndpointNamesVariable(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*ClientConfig)
		envName string
	}{
		{"upload", func(c *ClientConfig) { c.Endpoints.UploadURL = "" }, "JOURNAL_UPLOAD_URL"},
		{"create", func(c *ClientConfig) { c.Endpoints.CreateURL = "" }, "JOURNAL_CREATE_URL"},
		{"get", func(c *ClientConfig) { c.Endpoints.GetURL = "   " }, "JOURNAL_GET_URL"},
		{"update", func(c *ClientConfig) { c.Endpoints.UpdateURL = "" }, "JOURNAL_UPDATE_URL"},
		{"delete", func(c *ClientConfig) { c.Endpoints.DeleteURL = "" }, "JOURNAL_DELETE_URL"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validClientConfig()
			tt.mutate(cfg)

			err := cfg.validate()

			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidEndpointConfigs)
			assert.Contains(t, err.Error(), tt.envName)
		})
	}
}

func TestClientConfigValidate_NegativeTimeout(t *testing.T) {
	cfg := validClientConfig()
	cfg.Adapter.RequestTimeout = -time.Second

	err := cfg.validate()

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidAdapterConfigs)
}

func TestClientConfigValidate_ZeroTimeoutAllowed(t *testing.T) {
	// No timeout means the call blocks until the transport resolves.
	cfg := validClientConfig()
	cfg.Adapter.RequestTimeout = 0

	require.NoError(t, cfg.validate())
}

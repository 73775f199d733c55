// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Currently a no-op placeholder: the client-specific view carries the real
// validation rules in [ClientConfig.validate].
//
// Returns nil if the configuration is valid, or a descriptive error otherwise.
func (cfg *StructuredConfig) validate() error {
	return nil
}

// validate checks that every remote endpoint URL is configured. The error
// names the missing environment variable so a misconfigured deployment can
// be fixed without reading the source.
func (cfg *ClientConfig) validate() error {
	required := []struct {
		url     string
		envName string
	}{
		{cfg.Endpoints.UploadURL, EnvUploadURL},
		{cfg.Endpoints.CreateURL, EnvCreateURL},
		{cfg.Endpoints.GetURL, EnvGetURL},
		{cfg.Endpoints.UpdateURL, EnvUpdateURL},
		{cfg.Endpoints.DeleteURL, EnvDeleteURL},
	}

	for _, ep := range required {
		if strings.TrimSpace(ep.url) == "" {
			return fmt.Errorf("%w: %s is not set", ErrInvalidEndpointConfigs, ep.envName)
		}
	}

	if cfg.Adapter.RequestTimeout < 0 {
		return ErrInvalidAdapterConfigs
	}

	return nil
}

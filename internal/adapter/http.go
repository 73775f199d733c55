// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-journal-keeper/internal/config"
	"github.com/MKhiriev/go-journal-keeper/internal/logger"
	"github.com/MKhiriev/go-journal-keeper/internal/utils"
	"github.com/MKhiriev/go-journal-keeper/models"
	"github.com/go-resty/resty/v2"
)

type httpJournalAdapter struct {
	client    *utils.HTTPClient
	endpoints config.ClientEndpoints

	logger *logger.Logger
}

// NewHTTPJournalAdapter constructs an HTTP/JSON implementation of
// [JournalServerAdapter]. Each operation has its own absolute endpoint URL
// taken from endpoints; an operation whose URL is empty fails with
// [ErrEndpointNotConfigured] at call time, so a partially configured client
// can still use the endpoints that are set.
func NewHTTPJournalAdapter(adapterCfg config.ClientAdapter, endpoints config.ClientEndpoints, logger *logger.Logger) JournalServerAdapter {
	client := utils.NewHTTPClientWithTimeout(adapterCfg.RequestTimeout)

	return &httpJournalAdapter{client: client, endpoints: endpoints, logger: logger}
}

// UploadFile implements [JournalServerAdapter]. It POSTs the base64-encoded
// file to the upload endpoint and decodes `{blobName, fileUrl}` from the
// response. A 2xx response with a body that is not valid JSON yields a zero
// [models.UploadResult] and no error.
func (h *httpJournalAdapter) UploadFile(ctx context.Context, req models.UploadRequest) (models.UploadResult, error) {
	resp, err := h.call(ctx, h.endpoints.UploadURL, config.EnvUploadURL, req)
	if err != nil {
		return models.UploadResult{}, fmt.Errorf("upload file: %w", err)
	}

	var result models.UploadResult
	if body, ok := decodeLoose(resp.Body()); ok {
		raw, _ := json.Marshal(body)
		_ = json.Unmarshal(raw, &result)
	}

	h.logger.Debug().Str("blobName", result.BlobName).Msg("file uploaded")
	return result, nil
}

// CreateEntry implements [JournalServerAdapter]. It POSTs the full entry
// payload to the create endpoint. The response body is ignored on success.
func (h *httpJournalAdapter) CreateEntry(ctx context.Context, req models.CreateEntryRequest) error {
	if _, err := h.call(ctx, h.endpoints.CreateURL, config.EnvCreateURL, req); err != nil {
		return fmt.Errorf("create entry: %w", err)
	}

	return nil
}

// ListEntries implements [JournalServerAdapter]. It POSTs `{userId}` to the
// get endpoint and normalises whatever shape the backend answers with into a
// flat []models.JournalEntry. The result is never nil.
func (h *httpJournalAdapter) ListEntries(ctx context.Context, req models.ListEntriesRequest) ([]models.JournalEntry, error) {
	resp, err := h.call(ctx, h.endpoints.GetURL, config.EnvGetURL, req)
	if err != nil {
		return nil, fmt.Errorf("list entries: %w", err)
	}

	entries := decodeEntries(resp.Body())
	h.logger.Debug().Int("count", len(entries)).Msg("entries fetched")
	return entries, nil
}

// UpdateEntry implements [JournalServerAdapter]. It POSTs the new text and
// visibility to the update endpoint, addressing the entry under both the `id`
// and `entryId` keys.
func (h *httpJournalAdapter) UpdateEntry(ctx context.Context, req models.UpdateEntryRequest) error {
	if _, err := h.call(ctx, h.endpoints.UpdateURL, config.EnvUpdateURL, req); err != nil {
		return fmt.Errorf("update entry: %w", err)
	}

	return nil
}

// DeleteEntry implements [JournalServerAdapter]. It POSTs the dual-key
// identifier payload to the delete endpoint.
func (h *httpJournalAdapter) DeleteEntry(ctx context.Context, req models.DeleteEntryRequest) error {
	if _, err := h.call(ctx, h.endpoints.DeleteURL, config.EnvDeleteURL, req); err != nil {
		return fmt.Errorf("delete entry: %w", err)
	}

	return nil
}

// call performs a single POST round trip against endpointURL. It fails before
// any network I/O when endpointURL is empty, naming the environment variable
// that would configure it, and maps non-2xx responses through mapHTTPError.
func (h *httpJournalAdapter) call(ctx context.Context, endpointURL string, envName string, body any) (*resty.Response, error) {
	if strings.TrimSpace(endpointURL) == "" {
		return nil, fmt.Errorf("%w: %s is not set", ErrEndpointNotConfigured, envName)
	}

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		Post(endpointURL)
	if err != nil {
		return nil, fmt.Errorf("request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return resp, nil
}

// decodeLoose parses body as JSON opportunistically. On parse failure it
// reports the raw body text instead: a success status with a malformed body is
// never an error at this layer.
func decodeLoose(body []byte) (any, bool) {
	var parsed any
	if err := json.Unmarshal(body, &parsed); err != nil {
		return strings.TrimSpace(string(body)), false
	}

	return parsed, true
}

// decodeEntries normalises the list payload. The backend has answered with a
// bare array, `{"entries": [...]}` and `{"value": [...]}` over time; all three
// map to the same slice. Any other shape yields an empty slice.
func decodeEntries(body []byte) []models.JournalEntry {
	var bare []models.JournalEntry
	if err := json.Unmarshal(body, &bare); err == nil && bare != nil {
		return bare
	}

	var wrapped struct {
		Entries []models.JournalEntry `json:"entries"`
		Value   []models.JournalEntry `json:"value"`
	}
	if err := json.Unmarshal(body, &wrapped); err == nil {
		if wrapped.Entries != nil {
			return wrapped.Entries
		}
		if wrapped.Value != nil {
			return wrapped.Value
		}
	}

	return []models.JournalEntry{}
}

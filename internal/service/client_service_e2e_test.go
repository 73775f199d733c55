// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/MKhiriev/go-journal-keeper/internal/adapter"
	"github.com/MKhiriev/go-journal-keeper/internal/config"
	"github.com/MKhiriev/go-journal-keeper/internal/logger"
	"github.com/MKhiriev/go-journal-keeper/internal/mockserver"
	"github.com/MKhiriev/go-journal-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newE2EServices wires the real adapter and services against the in-memory
// journal stub, the same way cmd/client does against production.
func newE2EServices(t *testing.T) *ClientServices {
	t.Helper()

	srv := httptest.NewServer(mockserver.NewHandler(logger.Nop()).Init())
	t.Cleanup(srv.Close)

	endpoints := config.ClientEndpoints{
		UploadURL: srv.URL + "/api/upload",
		CreateURL: srv.URL + "/api/entries/create",
		GetURL:    srv.URL + "/api/entries/get",
		UpdateURL: srv.URL + "/api/entries/update",
		DeleteURL: srv.URL + "/api/entries/delete",
	}

	serverAdapter := adapter.NewHTTPJournalAdapter(
		config.ClientAdapter{RequestTimeout: 5 * time.Second},
		endpoints,
		logger.Nop(),
	)

	return NewClientServices(serverAdapter)
}

func TestE2E_CreateListUpdateDelete(t *testing.T) {
	services := newE2EServices(t)
	ctx := context.Background()

	err := services.EntryService.Create(ctx, models.EntryDraft{
		UserID:     "u1",
		Text:       "Felt okay today",
		Visibility: models.VisibilityPrivate,
	})
	require.NoError(t, err)

	entries, err := services.EntryService.List(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "Felt okay today", entries[0].Text)
	assert.Equal(t, models.VisibilityPrivate, entries[0].Visibility)
	assert.False(t, entries[0].HasMedia())
	_, parseErr := time.Parse(time.RFC3339, entries[0].UploadDate)
	assert.NoError(t, parseErr)

	err = services.EntryService.Update(ctx, entries[0].ID, "Actually a good day", models.VisibilityPublic)
	require.NoError(t, err)

	entries, err = services.EntryService.List(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "Actually a good day", entries[0].Text)
	assert.Equal(t, models.VisibilityPublic, entries[0].Visibility)

	err = services.EntryService.Delete(ctx, entries[0].ID)
	require.NoError(t, err)

	entries, err = services.EntryService.List(ctx, "u1")
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestE2E_UploadThenCreateWithMedia(t *testing.T) {
	services := newE2EServices(t)
	ctx := context.Background()

	path := filepath.Join(t.TempDir(), "photo.png")
	require.NoError(t, os.WriteFile(path, []byte{0x89, 0x50, 0x4E, 0x47}, 0o600))

	result, err := services.EntryService.Upload(ctx, "u1", path)
	require.NoError(t, err)
	assert.NotEmpty(t, result.BlobName)
	require.NotEmpty(t, result.FileURL)

	err = services.EntryService.Create(ctx, models.EntryDraft{
		UserID:     "u1",
		Text:       "с вложением",
		Visibility: models.VisibilityPrivate,
		Media: &models.MediaAttachment{
			Filename: "photo.png",
			Filetype: "image/png",
			FileURL:  result.FileURL,
		},
	})
	require.NoError(t, err)

	entries, err := services.EntryService.List(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.True(t, entries[0].HasMedia())
	assert.Equal(t, "photo.png", entries[0].Filename)
	assert.Equal(t, "image/png", entries[0].Filetype)
	assert.Equal(t, result.FileURL, entries[0].FileURL)
}

func TestE2E_DeleteMissingEntryIsNotFound(t *testing.T) {
	services := newE2EServices(t)

	err := services.EntryService.Delete(context.Background(), "no-such-entry")

	require.Error(t, err)
	assert.ErrorIs(t, err, adapter.ErrNotFound)
}

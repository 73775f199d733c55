// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer abstractions for communicating with
// the journal backend.
//
// The primary abstraction is [JournalServerAdapter], which decouples the
// service layer from the underlying protocol. The package ships an HTTP/JSON
// implementation ([NewHTTPJournalAdapter]) that talks to five independently
// configured endpoints, one per operation.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic error
// handling (e.g. [ErrNotFound] for 404, [ErrEndpointNotConfigured] when the
// endpoint URL for an operation was never supplied).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-journal-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/journal_adapter_mock.go -package=mock

// JournalServerAdapter defines transport-agnostic communication with the
// journal backend. Implementations are responsible for serialisation and for
// mapping transport-level errors to the sentinel values defined in this
// package. Every method fails fast with [ErrEndpointNotConfigured] when the
// endpoint for that operation has no URL configured; no network I/O happens in
// that case.
type JournalServerAdapter interface {
	// UploadFile sends a base64-encoded file to the upload endpoint and
	// returns the stored blob name and public URL assigned by the backend.
	// Returns an error if the request fails or the server responds with a
	// non-2xx status.
	UploadFile(ctx context.Context, req models.UploadRequest) (models.UploadResult, error)

	// CreateEntry persists a new journal entry on the backend. The request
	// carries the author, text, visibility, upload date and, when the entry
	// has an attachment, the full media triple (filename, filetype, file URL).
	CreateEntry(ctx context.Context, req models.CreateEntryRequest) error

	// ListEntries fetches all journal entries belonging to req.UserID. The
	// backend is known to answer with several historical payload shapes; the
	// adapter normalises all of them into a flat entry slice, never nil.
	ListEntries(ctx context.Context, req models.ListEntriesRequest) ([]models.JournalEntry, error)

	// UpdateEntry replaces the text and visibility of an existing entry. The
	// entry is addressed by its server-side identifier.
	UpdateEntry(ctx context.Context, req models.UpdateEntryRequest) error

	// DeleteEntry removes an existing entry by its server-side identifier.
	DeleteEntry(ctx context.Context, req models.DeleteEntryRequest) error
}

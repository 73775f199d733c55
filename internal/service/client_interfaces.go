// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-journal-keeper/models"
)

// ClientEntryService defines the client-side contract for managing journal
// entries. All write operations go straight to the remote store through the
// server adapter; the client keeps no local copy beyond what the UI holds tran-
// siently, so callers re-list after every successful mutation.
type ClientEntryService interface {
	// Upload encodes the file at path to base64 and sends it to the upload
	// service on behalf of userID. Returns the blob name and resolved URL
	// assigned by the remote side. The result is meant to be held until the
	// next Create call consumes it.
	Upload(ctx context.Context, userID string, path string) (models.UploadResult, error)

	// Create persists a new journal entry built from draft. The draft must
	// carry a non-empty user ID and non-empty trimmed text; validation runs
	// before any network I/O. Media fields are attached only when draft.Media
	// is set, and always as a complete triple.
	Create(ctx context.Context, draft models.EntryDraft) error

	// List fetches all entries belonging to userID from the remote store.
	// The returned slice is never nil; callers replace their entry list
	// wholesale rather than merging.
	List(ctx context.Context, userID string) ([]models.JournalEntry, error)

	// Update replaces the text and visibility of the entry identified by id.
	// On success callers are expected to re-list.
	Update(ctx context.Context, id string, text string, visibility models.Visibility) error

	// Delete removes the entry identified by id. On success callers are
	// expected to re-list.
	Delete(ctx context.Context, id string) error
}

// ClientMoodLogService defines the client-side contract for the in-memory
// mood log. The log is capped: appends beyond the cap silently evict the
// oldest records.
type ClientMoodLogService interface {
	// Append saves a new mood record with the current timestamp at the front
	// of the log. Score must be in [1,5].
	Append(score int, note string) error

	// Records returns a copy of the log, newest first.
	Records() []models.MoodRecord
}

// ClientAssistantService defines the contract of the canned reflection
// assistant. Reply is a pure function: no network access, deterministic for
// identical inputs.
type ClientAssistantService interface {
	// Greeting returns the single message an empty transcript starts with.
	Greeting() models.AssistantMessage

	// Reply composes a multi-line reflection from the current mood score, the
	// user's free-text message and the text of the most recent journal entry.
	// Empty optional inputs drop their lines from the reply entirely.
	Reply(score int, userText string, lastEntryText string) string
}

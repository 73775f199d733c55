// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"testing"
	"time"

	"github.com/MKhiriev/go-journal-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func validDraft() models.EntryDraft {
	return models.EntryDraft{
		UserID:     "u1",
		Text:       "Felt okay today",
		Visibility: models.VisibilityPrivate,
	}
}

func validMood() models.MoodRecord {
	return models.MoodRecord{Timestamp: time.Now(), Score: 3, Note: "так себе"}
}

// ---------------------------------------------------------------------------
// TestNewJournalValidator
// ---------------------------------------------------------------------------

func TestNewJournalValidator(t *testing.T) {
	v := NewJournalValidator()
	require.NotNil(t, v)
}

// ---------------------------------------------------------------------------
// TestValidate_Dispatch
// ---------------------------------------------------------------------------

func TestValidate_Dispatch_PointerAndValue(t *testing.T) {
	v := NewJournalValidator()
	ctx := context.Background()

	draft := validDraft()
	assert.NoError(t, v.Validate(ctx, draft))
	assert.NoError(t, v.Validate(ctx, &draft))

	mood := validMood()
	assert.NoError(t, v.Validate(ctx, mood))
	assert.NoError(t, v.Validate(ctx, &mood))
}

func TestValidate_UnsupportedType(t *testing.T) {
	v := NewJournalValidator()

	err := v.Validate(context.Background(), struct{ X int }{X: 1})

	assert.ErrorIs(t, err, ErrUnsupportedType)
}

func TestValidate_UnknownField(t *testing.T) {
	v := NewJournalValidator()

	err := v.Validate(context.Background(), validDraft(), "no_such_field")

	assert.ErrorIs(t, err, ErrUnknownField)
}

// ---------------------------------------------------------------------------
// TestValidate_EntryDraft
// ---------------------------------------------------------------------------

func TestValidate_EntryDraft(t *testing.T) {
	v := NewJournalValidator()
	ctx := context.Background()

	tests := []struct {
		name    string
		mutate  func(*models.EntryDraft)
		wantErr error
	}{
		{"valid", func(d *models.EntryDraft) {}, nil},
		{"missing user id", func(d *models.EntryDraft) { d.UserID = "" }, ErrNoUserID},
		{"whitespace user id", func(d *models.EntryDraft) { d.UserID = "   " }, ErrNoUserID},
		{"empty text", func(d *models.EntryDraft) { d.Text = "" }, ErrEmptyText},
		{"whitespace text", func(d *models.EntryDraft) { d.Text = " \n\t " }, ErrEmptyText},
		{
			"partial media",
			func(d *models.EntryDraft) {
				d.Media = &models.MediaAttachment{Filename: "photo.png"}
			},
			ErrPartialMedia,
		},
		{
			"full media",
			func(d *models.EntryDraft) {
				d.Media = &models.MediaAttachment{
					Filename: "photo.png",
					Filetype: "image/png",
					FileURL:  "https://cdn/blob-1",
				}
			},
			nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			draft := validDraft()
			tt.mutate(&draft)

			err := v.Validate(ctx, draft)

			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestValidate_EntryDraft_FieldScoping(t *testing.T) {
	v := NewJournalValidator()
	draft := validDraft()
	draft.Text = ""

	// текст не проверяется, если запрошено только поле user_id
	assert.NoError(t, v.Validate(context.Background(), draft, FieldUserID))
	assert.ErrorIs(t, v.Validate(context.Background(), draft, FieldText), ErrEmptyText)
}

// ---------------------------------------------------------------------------
// TestValidate_ListRequest
// ---------------------------------------------------------------------------

func TestValidate_ListRequest(t *testing.T) {
	v := NewJournalValidator()
	ctx := context.Background()

	assert.NoError(t, v.Validate(ctx, models.ListEntriesRequest{UserID: "u1"}))
	assert.ErrorIs(t, v.Validate(ctx, models.ListEntriesRequest{}), ErrNoUserID)
}

// ---------------------------------------------------------------------------
// TestValidate_UpdateRequest
// ---------------------------------------------------------------------------

func TestValidate_UpdateRequest(t *testing.T) {
	v := NewJournalValidator()
	ctx := context.Background()

	valid := models.UpdateEntryRequest{ID: "e1", EntryID: "e1", Text: "new text"}
	assert.NoError(t, v.Validate(ctx, valid))

	noID := valid
	noID.ID = ""
	assert.ErrorIs(t, v.Validate(ctx, noID), ErrNoEntryID)

	noText := valid
	noText.Text = "  "
	assert.ErrorIs(t, v.Validate(ctx, noText), ErrEmptyText)
}

// ---------------------------------------------------------------------------
// TestValidate_DeleteRequest
// ---------------------------------------------------------------------------

func TestValidate_DeleteRequest(t *testing.T) {
	v := NewJournalValidator()
	ctx := context.Background()

	assert.NoError(t, v.Validate(ctx, models.DeleteEntryRequest{ID: "e1", EntryID: "e1"}))
	assert.ErrorIs(t, v.Validate(ctx, models.DeleteEntryRequest{}), ErrNoEntryID)
}

// ---------------------------------------------------------------------------
// TestValidate_MoodRecord
// ---------------------------------------------------------------------------

func TestValidate_MoodRecord(t *testing.T) {
	v := NewJournalValidator()
	ctx := context.Background()

	for score := 1; score <= 5; score++ {
		assert.NoError(t, v.Validate(ctx, models.MoodRecord{Score: score}))
	}

	assert.ErrorIs(t, v.Validate(ctx, models.MoodRecord{Score: 0}), ErrInvalidMoodScore)
	assert.ErrorIs(t, v.Validate(ctx, models.MoodRecord{Score: 6}), ErrInvalidMoodScore)
}

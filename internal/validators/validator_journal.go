package validators

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-journal-keeper/models"
)

// Field name constants used to specify which fields should be validated.
// These constants are passed to Validate or internal validation methods
// to restrict validation to a subset of fields (field-level scoping).
const (
	// FieldUserID targets the owner identifier of an entry or request.
	FieldUserID = "user_id"

	// FieldText targets the free-text body of a journal entry.
	FieldText = "text"

	// FieldEntryID targets the server-side identifier of an existing entry.
	FieldEntryID = "entry_id"

	// FieldMedia targets the optional media attachment of an entry draft.
	FieldMedia = "media"

	// FieldMoodScore targets the numeric score of a mood record.
	FieldMoodScore = "mood_score"
)

// JournalValidator implements the Validator interface for the journal domain
// models: EntryDraft, ListEntriesRequest, UpdateEntryRequest,
// DeleteEntryRequest, and MoodRecord.
//
// It supports both value and pointer receivers for every model type
// and allows optional field-level scoping via variadic field name arguments.
type JournalValidator struct {
}

// NewJournalValidator constructs a new JournalValidator
// and returns it as the Validator interface.
func NewJournalValidator() Validator {
	return &JournalValidator{}
}

// Validate dispatches validation to the appropriate type-specific method
// based on the dynamic type of obj. Both value and pointer forms of each
// supported model are accepted.
//
// Supported types:
//   - models.EntryDraft / *models.EntryDraft
//   - models.ListEntriesRequest / *models.ListEntriesRequest
//   - models.UpdateEntryRequest / *models.UpdateEntryRequest
//   - models.DeleteEntryRequest / *models.DeleteEntryRequest
//   - models.MoodRecord / *models.MoodRecord
//
// Returns ErrUnsupportedType if obj does not match any known model.
// Optional fields restrict validation to the named subset; when omitted,
// a sensible default set of fields is validated.
func (v *JournalValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.EntryDraft:
		return v.validateEntryDraft(ctx, value, fields...)
	case *models.EntryDraft:
		return v.validateEntryDraft(ctx, *value, fields...)
	case models.ListEntriesRequest:
		return v.validateListRequest(ctx, value, fields...)
	case *models.ListEntriesRequest:
		return v.validateListRequest(ctx, *value, fields...)
	case models.UpdateEntryRequest:
		return v.validateUpdateRequest(ctx, value, fields...)
	case *models.UpdateEntryRequest:
		return v.validateUpdateRequest(ctx, *value, fields...)
	case models.DeleteEntryRequest:
		return v.validateDeleteRequest(ctx, value, fields...)
	case *models.DeleteEntryRequest:
		return v.validateDeleteRequest(ctx, *value, fields...)
	case models.MoodRecord:
		return v.validateMoodRecord(ctx, value, fields...)
	case *models.MoodRecord:
		return v.validateMoodRecord(ctx, *value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *JournalValidator) validateEntryDraft(_ context.Context, draft models.EntryDraft, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUserID, FieldText, FieldMedia}
	}

	for _, f := range fields {
		switch f {
		case FieldUserID:
			if strings.TrimSpace(draft.UserID) == "" {
				return ErrNoUserID
			}
		case FieldText:
			if strings.TrimSpace(draft.Text) == "" {
				return ErrEmptyText
			}
		case FieldMedia:
			if draft.Media != nil {
				if draft.Media.Filename == "" || draft.Media.Filetype == "" || draft.Media.FileURL == "" {
					return ErrPartialMedia
				}
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *JournalValidator) validateListRequest(_ context.Context, request models.ListEntriesRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUserID}
	}

	for _, f := range fields {
		switch f {
		case FieldUserID:
			if strings.TrimSpace(request.UserID) == "" {
				return ErrNoUserID
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *JournalValidator) validateUpdateRequest(_ context.Context, request models.UpdateEntryRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEntryID, FieldText}
	}

	for _, f := range fields {
		switch f {
		case FieldEntryID:
			if strings.TrimSpace(request.ID) == "" {
				return ErrNoEntryID
			}
		case FieldText:
			if strings.TrimSpace(request.Text) == "" {
				return ErrEmptyText
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *JournalValidator) validateDeleteRequest(_ context.Context, request models.DeleteEntryRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEntryID}
	}

	for _, f := range fields {
		switch f {
		case FieldEntryID:
			if strings.TrimSpace(request.ID) == "" {
				return ErrNoEntryID
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *JournalValidator) validateMoodRecord(_ context.Context, record models.MoodRecord, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldMoodScore}
	}

	for _, f := range fields {
		switch f {
		case FieldMoodScore:
			if record.Score < 1 || record.Score > 5 {
				return ErrInvalidMoodScore
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

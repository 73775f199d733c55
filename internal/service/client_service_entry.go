package service

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/MKhiriev/go-journal-keeper/internal/adapter"
	"github.com/MKhiriev/go-journal-keeper/internal/utils"
	"github.com/MKhiriev/go-journal-keeper/internal/validators"
	"github.com/MKhiriev/go-journal-keeper/models"
)

type clientEntryService struct {
	adapter   adapter.JournalServerAdapter
	validator validators.Validator

	// now is the timestamp source for uploadDate; overridable in tests.
	now func() time.Time
}

func NewClientEntryService(serverAdapter adapter.JournalServerAdapter, validator validators.Validator) ClientEntryService {
	return &clientEntryService{adapter: serverAdapter, validator: validator, now: time.Now}
}

func (s *clientEntryService) Upload(ctx context.Context, userID string, path string) (models.UploadResult, error) {
	if err := s.validator.Validate(ctx, models.ListEntriesRequest{UserID: userID}, validators.FieldUserID); err != nil {
		return models.UploadResult{}, fmt.Errorf("validate upload: %w", err)
	}

	encoded, err := utils.EncodeFile(path)
	if err != nil {
		return models.UploadResult{}, fmt.Errorf("encode file for upload: %w", err)
	}

	result, err := s.adapter.UploadFile(ctx, models.UploadRequest{
		UserID:     userID,
		Filename:   filepath.Base(path),
		Filetype:   utils.DetectContentType(path),
		FileBase64: encoded,
	})
	if err != nil {
		return models.UploadResult{}, fmt.Errorf("upload file to server: %w", err)
	}

	return result, nil
}

func (s *clientEntryService) Create(ctx context.Context, draft models.EntryDraft) error {
	if err := s.validator.Validate(ctx, draft); err != nil {
		return fmt.Errorf("validate entry draft: %w", err)
	}

	req := models.CreateEntryRequest{
		UserID:     draft.UserID,
		Text:       strings.TrimSpace(draft.Text),
		Visibility: draft.Visibility,
		UploadDate: s.now().UTC().Format(time.RFC3339),
	}
	if req.Visibility == "" {
		req.Visibility = models.VisibilityPrivate
	}
	if draft.Media != nil {
		req.Filename = draft.Media.Filename
		req.Filetype = draft.Media.Filetype
		req.FileURL = draft.Media.FileURL
	}

	if err := s.adapter.CreateEntry(ctx, req); err != nil {
		return fmt.Errorf("create entry on server: %w", err)
	}

	return nil
}

func (s *clientEntryService) List(ctx context.Context, userID string) ([]models.JournalEntry, error) {
	req := models.ListEntriesRequest{UserID: userID}
	if err := s.validator.Validate(ctx, req); err != nil {
		return nil, fmt.Errorf("validate list request: %w", err)
	}

	entries, err := s.adapter.ListEntries(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("list entries from server: %w", err)
	}

	return entries, nil
}

func (s *clientEntryService) Update(ctx context.Context, id string, text string, visibility models.Visibility) error {
	req := models.UpdateEntryRequest{
		ID:         id,
		EntryID:    id,
		Text:       strings.TrimSpace(text),
		Visibility: visibility,
	}
	if err := s.validator.Validate(ctx, req); err != nil {
		return fmt.Errorf("validate update request: %w", err)
	}

	if err := s.adapter.UpdateEntry(ctx, req); err != nil {
		return fmt.Errorf("update entry on server: %w", err)
	}

	return nil
}

func (s *clientEntryService) Delete(ctx context.Context, id string) error {
	req := models.DeleteEntryRequest{ID: id, EntryID: id}
	if err := s.validator.Validate(ctx, req); err != nil {
		return fmt.Errorf("validate delete request: %w", err)
	}

	if err := s.adapter.DeleteEntry(ctx, req); err != nil {
		return fmt.Errorf("delete entry on server: %w", err)
	}

	return nil
}

package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/MKhiriev/go-journal-keeper/internal/validators"
	"github.com/MKhiriev/go-journal-keeper/models"
)

// moodLogLimit caps the mood log; appends beyond it evict the oldest records.
const moodLogLimit = 14

type clientMoodLogService struct {
	mu      sync.Mutex
	records []models.MoodRecord

	validator validators.Validator

	// now is the record timestamp source; overridable in tests.
	now func() time.Time
}

func NewClientMoodLogService(validator validators.Validator) ClientMoodLogService {
	return &clientMoodLogService{validator: validator, now: time.Now}
}

// Append implements [ClientMoodLogService]. The new record goes to the front
// of the log; everything past the cap is silently discarded.
func (s *clientMoodLogService) Append(score int, note string) error {
	record := models.MoodRecord{Timestamp: s.now(), Score: score, Note: note}
	if err := s.validator.Validate(context.Background(), record); err != nil {
		return fmt.Errorf("validate mood record: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.records = append([]models.MoodRecord{record}, s.records...)
	if len(s.records) > moodLogLimit {
		s.records = s.records[:moodLogLimit]
	}

	return nil
}

// Records implements [ClientMoodLogService]. It returns a copy: callers may
// not mutate the log through the returned slice.
func (s *clientMoodLogService) Records() []models.MoodRecord {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]models.MoodRecord(nil), s.records...)
}

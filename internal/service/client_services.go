package service

import (
	"github.com/MKhiriev/go-journal-keeper/internal/adapter"
	"github.com/MKhiriev/go-journal-keeper/internal/validators"
)

type ClientServices struct {
	EntryService     ClientEntryService
	MoodLogService   ClientMoodLogService
	AssistantService ClientAssistantService
}

func NewClientServices(serverAdapter adapter.JournalServerAdapter) *ClientServices {
	validator := validators.NewJournalValidator()

	return &ClientServices{
		EntryService:     NewClientEntryService(serverAdapter, validator),
		MoodLogService:   NewClientMoodLogService(validator),
		AssistantService: NewClientAssistantService(),
	}
}

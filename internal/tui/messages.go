package tui

import (
	"github.com/MKhiriev/go-journal-keeper/models"
)

type entriesLoadedMsg struct {
	entries []models.JournalEntry
	err     error
}

type entrySavedMsg struct {
	withMedia bool
	err       error
}

type entryDeletedMsg struct {
	err error
}

type uploadDoneMsg struct {
	media models.MediaAttachment
	err   error
}

type assistantReplyMsg struct {
	// generation ties the scheduled reply to the transcript it was composed
	// for; a reply from a cleared transcript is dropped.
	generation int
	text       string
}

type copiedMsg struct{}

type clearStatusMsg struct{}

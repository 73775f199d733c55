package mockserver

import (
	"sync"

	"github.com/MKhiriev/go-journal-keeper/models"
)

// entryStore keeps journal entries in memory, grouped by owner. It exists for
// local development and end-to-end tests only; nothing survives a restart.
type entryStore struct {
	mu      sync.RWMutex
	entries map[string][]models.JournalEntry
}

func newEntryStore() *entryStore {
	return &entryStore{entries: make(map[string][]models.JournalEntry)}
}

func (s *entryStore) add(entry models.JournalEntry) {
	s.mu.Lock()
	defer s.mu.Unlock()

	// newest first, matching the order the client expects from the backend
	s.entries[entry.UserID] = append([]models.JournalEntry{entry}, s.entries[entry.UserID]...)
}

func (s *entryStore) list(userID string) []models.JournalEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return append([]models.JournalEntry(nil), s.entries[userID]...)
}

func (s *entryStore) update(id string, text string, visibility models.Visibility) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for userID, entries := range s.entries {
		for i, entry := range entries {
			if entry.ID == id {
				entries[i].Text = text
				entries[i].Visibility = visibility
				s.entries[userID] = entries
				return true
			}
		}
	}

	return false
}

func (s *entryStore) delete(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for userID, entries := range s.entries {
		for i, entry := range entries {
			if entry.ID == id {
				s.entries[userID] = append(entries[:i], entries[i+1:]...)
				return true
			}
		}
	}

	return false
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/go-journal-keeper/internal/mock"
	"github.com/MKhiriev/go-journal-keeper/internal/service"
	"github.com/MKhiriev/go-journal-keeper/models"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestAppModel(t *testing.T) appModel {
	t.Helper()
	ctrl := gomock.NewController(t)
	mockAdapter := mock.NewMockJournalServerAdapter(ctrl)
	services := service.NewClientServices(mockAdapter)

	return newAppModel(context.Background(), services, "u1", 400*time.Millisecond)
}

func asAppModel(t *testing.T, m tea.Model) appModel {
	t.Helper()
	result, ok := m.(appModel)
	require.True(t, ok)
	return result
}

func TestAppModel_StartsOnUserIDScreenWithoutUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	services := service.NewClientServices(mock.NewMockJournalServerAdapter(ctrl))

	m := newAppModel(context.Background(), services, "  ", 0)

	assert.Equal(t, screenUserID, m.currentScreen)
	assert.Nil(t, m.Init())
}

func TestAppModel_EntriesLoaded(t *testing.T) {
	m := newTestAppModel(t)

	updated, _ := m.Update(entriesLoadedMsg{entries: []models.JournalEntry{
		{ID: "e1", Text: "first"},
		{ID: "e2", Text: "second"},
	}})

	result := asAppModel(t, updated)
	assert.False(t, result.journal.loading)
	assert.Len(t, result.journal.entries, 2)
}

func TestAppModel_EntriesLoadedError(t *testing.T) {
	m := newTestAppModel(t)

	updated, _ := m.Update(entriesLoadedMsg{err: errors.New("boom")})

	result := asAppModel(t, updated)
	assert.True(t, result.showError)
	assert.Equal(t, "boom", result.errorOverlay.message)
}

func TestAppModel_EntrySaved_ClearsComposeAndRelists(t *testing.T) {
	m := newTestAppModel(t)
	m.currentScreen = screenCompose
	m.compose.inputs[0].SetValue("Felt okay today")
	m.compose.inputs[1].SetValue("/tmp/photo.png")
	m.compose.media = &models.MediaAttachment{Filename: "photo.png", Filetype: "image/png", FileURL: "https://cdn/b"}
	m.compose.submitting = true

	updated, cmd := m.Update(entrySavedMsg{withMedia: true})

	result := asAppModel(t, updated)
	assert.Equal(t, screenJournal, result.currentScreen)
	assert.False(t, result.compose.submitting)
	assert.Empty(t, result.compose.inputs[0].Value())
	assert.Empty(t, result.compose.inputs[1].Value())
	assert.Nil(t, result.compose.media)
	assert.True(t, result.journal.loading)
	assert.NotNil(t, cmd)
}

func TestAppModel_EntrySaved_WithoutMediaKeepsUploadState(t *testing.T) {
	m := newTestAppModel(t)
	m.currentScreen = screenCompose
	m.compose.inputs[0].SetValue("текст")

	updated, _ := m.Update(entrySavedMsg{withMedia: false})

	result := asAppModel(t, updated)
	assert.Empty(t, result.compose.inputs[0].Value())
	assert.Equal(t, screenJournal, result.currentScreen)
}

func TestAppModel_EntrySavedError_KeepsStateAndShowsOverlay(t *testing.T) {
	m := newTestAppModel(t)
	m.currentScreen = screenCompose
	m.compose.inputs[0].SetValue("не потеряется")
	m.compose.submitting = true
	m.journal.status = "в процессе"

	updated, _ := m.Update(entrySavedMsg{err: errors.New("save failed")})

	result := asAppModel(t, updated)
	assert.True(t, result.showError)
	assert.False(t, result.compose.submitting)
	assert.Empty(t, result.journal.status)
	assert.Equal(t, "не потеряется", result.compose.inputs[0].Value())
	assert.Equal(t, screenCompose, result.currentScreen)
}

func TestAppModel_UploadDone(t *testing.T) {
	m := newTestAppModel(t)
	m.compose.uploading = true

	updated, _ := m.Update(uploadDoneMsg{media: models.MediaAttachment{
		Filename: "photo.png",
		Filetype: "image/png",
		FileURL:  "https://cdn/blob-1",
	}})

	result := asAppModel(t, updated)
	assert.False(t, result.compose.uploading)
	require.NotNil(t, result.compose.media)
	assert.Equal(t, "https://cdn/blob-1", result.compose.media.FileURL)
}

func TestAppModel_AssistantReply_Appended(t *testing.T) {
	m := newTestAppModel(t)
	m.currentScreen = screenChat
	m.chat.thinking = true
	before := len(m.chat.transcript)

	updated, _ := m.Update(assistantReplyMsg{generation: m.chat.generation, text: "ответ"})

	result := asAppModel(t, updated)
	assert.False(t, result.chat.thinking)
	require.Len(t, result.chat.transcript, before+1)
	last := result.chat.transcript[len(result.chat.transcript)-1]
	assert.Equal(t, models.RoleAssistant, last.Role)
	assert.Equal(t, "ответ", last.Text)
}

func TestAppModel_AssistantReply_StaleGenerationDropped(t *testing.T) {
	m := newTestAppModel(t)
	m.currentScreen = screenChat
	staleGeneration := m.chat.generation

	// разговор сброшен до прихода отложенного ответа
	m.chat.reset(m.services.AssistantService.Greeting())
	before := len(m.chat.transcript)

	updated, _ := m.Update(assistantReplyMsg{generation: staleGeneration, text: "устаревший ответ"})

	result := asAppModel(t, updated)
	assert.Len(t, result.chat.transcript, before)
	assert.False(t, result.chat.thinking)
}

func TestAppModel_ChatReset_BumpsGeneration(t *testing.T) {
	m := newTestAppModel(t)
	m.chat.append(models.AssistantMessage{Role: models.RoleUser, Text: "привет"})
	generation := m.chat.generation

	m.chat.reset(m.services.AssistantService.Greeting())

	assert.Equal(t, generation+1, m.chat.generation)
	require.Len(t, m.chat.transcript, 1)
	assert.Equal(t, models.RoleAssistant, m.chat.transcript[0].Role)
}

func TestAppModel_DeleteConfirmFlow(t *testing.T) {
	m := newTestAppModel(t)
	m.journal.loading = false
	m.journal.entries = []models.JournalEntry{{ID: "e1", Text: "to delete"}}

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'d'}})
	result := asAppModel(t, updated)

	assert.True(t, result.showConfirm)
	assert.Equal(t, "e1", result.pendingDelete)

	// отказ закрывает подтверждение без удаления
	updated, cmd := result.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'n'}})
	result = asAppModel(t, updated)

	assert.False(t, result.showConfirm)
	assert.Empty(t, result.pendingDelete)
	assert.Nil(t, cmd)
}

func TestAppModel_ErrorOverlayDismissed(t *testing.T) {
	m := newTestAppModel(t)
	m.showErrorf("что-то пошло не так")

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyEsc})

	result := asAppModel(t, updated)
	assert.False(t, result.showError)
	assert.Empty(t, result.errorOverlay.message)
}

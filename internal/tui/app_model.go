// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-journal-keeper/internal/service"
	"github.com/MKhiriev/go-journal-keeper/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

var ErrUserQuit = errors.New("вышел из программы")

type screen int

const (
	screenUserID screen = iota
	screenJournal
	screenCompose
	screenEdit
	screenMood
	screenChat
)

type appModel struct {
	ctx        context.Context
	services   *service.ClientServices
	replyDelay time.Duration

	currentScreen screen
	userID        string

	userIDScreen userIDModel
	journal      journalModel
	compose      composeModel
	edit         editModel
	mood         moodModel
	chat         chatModel

	err           error
	showError     bool
	errorOverlay  errorOverlayModel
	showConfirm   bool
	confirm       confirmModel
	pendingDelete string
}

func newAppModel(ctx context.Context, services *service.ClientServices, userID string, replyDelay time.Duration) appModel {
	m := appModel{
		ctx:        ctx,
		services:   services,
		replyDelay: replyDelay,
		userID:     strings.TrimSpace(userID),
		journal:    newJournalModel(),
		compose:    newComposeModel(),
		mood:       newMoodModel(),
		chat:       newChatModel(services.AssistantService.Greeting()),
	}

	if m.userID == "" {
		m.currentScreen = screenUserID
		m.userIDScreen = newUserIDModel()
	} else {
		m.currentScreen = screenJournal
	}

	return m
}

func (m appModel) Init() tea.Cmd {
	if m.currentScreen == screenJournal {
		return tea.Batch(m.journal.spinner.Tick, m.cmdLoadEntries())
	}
	return nil
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.err = ErrUserQuit
			return m, tea.Quit
		}
		if m.showError {
			if key.Matches(msg, keys.enter) || key.Matches(msg, keys.esc) {
				m.showError = false
				m.errorOverlay.message = ""
			}
			return m, nil
		}
		if m.showConfirm {
			if key.Matches(msg, keys.yes) {
				m.showConfirm = false
				if m.pendingDelete == "" {
					return m, nil
				}
				return m, m.cmdDeleteEntry(m.pendingDelete)
			}
			if key.Matches(msg, keys.no) || key.Matches(msg, keys.esc) {
				m.showConfirm = false
				m.pendingDelete = ""
			}
			return m, nil
		}
	case entriesLoadedMsg:
		m.journal.loading = false
		if msg.err != nil {
			m.showErrorf(humanizeServerUnavailableError(msg.err))
			return m, nil
		}
		m.journal.entries = msg.entries
		if m.journal.idx >= len(m.journal.entries) {
			m.journal.idx = len(m.journal.entries) - 1
		}
		if m.journal.idx < 0 {
			m.journal.idx = 0
		}
		return m, nil
	case entrySavedMsg:
		m.compose.submitting = false
		m.edit.submitting = false
		if msg.err != nil {
			m.journal.status = ""
			m.showErrorf(humanizeServerUnavailableError(msg.err))
			return m, nil
		}
		if m.currentScreen == screenCompose {
			m.compose.inputs[0].SetValue("")
			if msg.withMedia {
				m.compose.inputs[1].SetValue("")
				m.compose.media = nil
			}
		}
		m.currentScreen = screenJournal
		m.journal.loading = true
		m.journal.status = "Запись сохранена"
		return m, tea.Batch(m.journal.spinner.Tick, m.cmdLoadEntries(), cmdClearStatus())
	case entryDeletedMsg:
		if msg.err != nil {
			m.showErrorf(humanizeServerUnavailableError(msg.err))
			return m, nil
		}
		m.pendingDelete = ""
		m.journal.loading = true
		return m, tea.Batch(m.journal.spinner.Tick, m.cmdLoadEntries())
	case uploadDoneMsg:
		m.compose.uploading = false
		if msg.err != nil {
			m.showErrorf(humanizeServerUnavailableError(msg.err))
			return m, nil
		}
		media := msg.media
		m.compose.media = &media
		return m, nil
	case assistantReplyMsg:
		// reply scheduled before a transcript reset lands here with a stale
		// generation and gets dropped
		if msg.generation != m.chat.generation {
			return m, nil
		}
		m.chat.thinking = false
		m.chat.append(models.AssistantMessage{Role: models.RoleAssistant, Text: msg.text})
		return m, nil
	case copiedMsg:
		m.journal.status = "Скопировано!"
		return m, cmdClearStatus()
	case clearStatusMsg:
		m.journal.status = ""
		m.mood.status = ""
		return m, nil
	case tea.WindowSizeMsg:
		return m, nil
	}

	switch m.currentScreen {
	case screenUserID:
		return m.updateUserID(msg)
	case screenJournal:
		return m.updateJournal(msg)
	case screenCompose:
		return m.updateCompose(msg)
	case screenEdit:
		return m.updateEdit(msg)
	case screenMood:
		return m.updateMood(msg)
	case screenChat:
		return m.updateChat(msg)
	}

	return m, nil
}

func (m appModel) View() string {
	var body string
	switch m.currentScreen {
	case screenUserID:
		body = m.userIDScreen.View()
	case screenJournal:
		body = m.journal.View()
	case screenCompose:
		body = m.compose.View()
	case screenEdit:
		body = m.edit.View()
	case screenMood:
		body = m.mood.View()
	case screenChat:
		body = m.chat.View()
	}

	if m.showConfirm {
		body += "\n\n" + m.confirm.View()
	}
	if m.showError {
		body += "\n\n" + m.errorOverlay.View()
	}

	return appStyle.Render(body)
}

func (m *appModel) showErrorf(message string) {
	m.showError = true
	m.errorOverlay.message = message
}

func (m appModel) updateUserID(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.err = ErrUserQuit
			return m, tea.Quit
		case key.Matches(keyMsg, keys.enter):
			userID := strings.TrimSpace(m.userIDScreen.input.Value())
			if userID == "" {
				m.showErrorf("Идентификатор пользователя обязателен")
				return m, nil
			}
			m.userID = userID
			m.currentScreen = screenJournal
			m.journal.loading = true
			return m, tea.Batch(m.journal.spinner.Tick, m.cmdLoadEntries())
		}
	}

	var cmd tea.Cmd
	m.userIDScreen.input, cmd = m.userIDScreen.input.Update(msg)
	return m, cmd
}

func (m appModel) updateJournal(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.up):
			if m.journal.idx > 0 {
				m.journal.idx--
			}
		case key.Matches(msg, keys.down):
			if m.journal.idx < len(m.journal.entries)-1 {
				m.journal.idx++
			}
		case key.Matches(msg, keys.newEntry):
			m.compose.inputs[0].Focus()
			m.compose.inputs[1].Blur()
			m.compose.focus = 0
			m.currentScreen = screenCompose
		case key.Matches(msg, keys.edit):
			entry, ok := m.journal.current()
			if !ok {
				return m, nil
			}
			m.edit = newEditModel(entry)
			m.currentScreen = screenEdit
		case key.Matches(msg, keys.delete):
			entry, ok := m.journal.current()
			if !ok {
				return m, nil
			}
			m.showConfirm = true
			m.confirm.message = fitText(firstLine(entry.Text), 40)
			m.pendingDelete = entry.ID
		case key.Matches(msg, keys.copy):
			entry, ok := m.journal.current()
			if !ok || entry.Text == "" {
				return m, nil
			}
			return m, cmdCopyToClipboard(entry.Text)
		case key.Matches(msg, keys.mood):
			m.mood.records = m.services.MoodLogService.Records()
			m.currentScreen = screenMood
		case key.Matches(msg, keys.chat):
			m.currentScreen = screenChat
		case key.Matches(msg, keys.refresh):
			if m.journal.loading {
				return m, nil
			}
			m.journal.loading = true
			return m, tea.Batch(m.journal.spinner.Tick, m.cmdLoadEntries())
		case key.Matches(msg, keys.quit):
			return m, tea.Quit
		}
	case spinner.TickMsg:
		if m.journal.loading {
			var cmd tea.Cmd
			m.journal.spinner, cmd = m.journal.spinner.Update(msg)
			return m, cmd
		}
	}

	return m, nil
}

func (m appModel) updateCompose(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.currentScreen = screenJournal
			return m, nil
		case key.Matches(keyMsg, keys.tab):
			m.compose = focusNextCompose(m.compose)
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.compose = focusPrevCompose(m.compose)
			return m, nil
		case key.Matches(keyMsg, keys.toggleVis):
			m.compose.visibility = toggleVisibility(m.compose.visibility)
			return m, nil
		case key.Matches(keyMsg, keys.upload):
			if m.compose.uploading {
				return m, nil
			}
			path := strings.TrimSpace(m.compose.inputs[1].Value())
			if path == "" {
				m.showErrorf("Укажите путь к файлу")
				return m, nil
			}
			m.compose.uploading = true
			return m, m.cmdUpload(path)
		case key.Matches(keyMsg, keys.enter):
			if strings.TrimSpace(m.compose.inputs[0].Value()) == "" {
				m.showErrorf("Текст записи обязателен")
				return m, nil
			}
			if m.compose.uploading {
				m.showErrorf("Дождитесь окончания загрузки файла")
				return m, nil
			}
			m.compose.submitting = true
			draft := models.EntryDraft{
				UserID:     m.userID,
				Text:       m.compose.inputs[0].Value(),
				Visibility: m.compose.visibility,
				Media:      m.compose.media,
			}
			return m, m.cmdCreateEntry(draft)
		}
	}

	var cmd tea.Cmd
	m.compose.inputs[m.compose.focus], cmd = m.compose.inputs[m.compose.focus].Update(msg)
	return m, cmd
}

func (m appModel) updateEdit(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.currentScreen = screenJournal
			return m, nil
		case key.Matches(keyMsg, keys.toggleVis):
			m.edit.visibility = toggleVisibility(m.edit.visibility)
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if strings.TrimSpace(m.edit.input.Value()) == "" {
				m.showErrorf("Текст записи обязателен")
				return m, nil
			}
			m.edit.submitting = true
			return m, m.cmdUpdateEntry(m.edit.entryID, m.edit.input.Value(), m.edit.visibility)
		}
	}

	var cmd tea.Cmd
	m.edit.input, cmd = m.edit.input.Update(msg)
	return m, cmd
}

func (m appModel) updateMood(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.currentScreen = screenJournal
			return m, nil
		case key.Matches(keyMsg, keys.left):
			if m.mood.score > 1 {
				m.mood.score--
			}
			return m, nil
		case key.Matches(keyMsg, keys.right):
			if m.mood.score < 5 {
				m.mood.score++
			}
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if err := m.services.MoodLogService.Append(m.mood.score, strings.TrimSpace(m.mood.note.Value())); err != nil {
				m.showErrorf(err.Error())
				return m, nil
			}
			m.mood.note.SetValue("")
			m.mood.records = m.services.MoodLogService.Records()
			m.mood.status = "Сохранено"
			return m, cmdClearStatus()
		}
	}

	var cmd tea.Cmd
	m.mood.note, cmd = m.mood.note.Update(msg)
	return m, cmd
}

func (m appModel) updateChat(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.currentScreen = screenJournal
			return m, nil
		case key.Matches(keyMsg, keys.resetChat):
			m.chat.reset(m.services.AssistantService.Greeting())
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			text := strings.TrimSpace(m.chat.input.Value())
			if text == "" {
				return m, nil
			}
			m.chat.append(models.AssistantMessage{Role: models.RoleUser, Text: text})
			m.chat.input.SetValue("")
			m.chat.thinking = true
			return m, m.cmdAssistantReply(m.chat.generation, text)
		}
	}

	var cmd tea.Cmd
	m.chat.input, cmd = m.chat.input.Update(msg)
	return m, cmd
}

func (m appModel) cmdLoadEntries() tea.Cmd {
	ctx := m.ctx
	svc := m.services.EntryService
	userID := m.userID
	return func() tea.Msg {
		entries, err := svc.List(ctx, userID)
		return entriesLoadedMsg{entries: entries, err: err}
	}
}

func (m appModel) cmdCreateEntry(draft models.EntryDraft) tea.Cmd {
	ctx := m.ctx
	svc := m.services.EntryService
	return func() tea.Msg {
		err := svc.Create(ctx, draft)
		return entrySavedMsg{withMedia: draft.Media != nil, err: err}
	}
}

func (m appModel) cmdUpdateEntry(id string, text string, visibility models.Visibility) tea.Cmd {
	ctx := m.ctx
	svc := m.services.EntryService
	return func() tea.Msg {
		err := svc.Update(ctx, id, text, visibility)
		return entrySavedMsg{err: err}
	}
}

func (m appModel) cmdDeleteEntry(id string) tea.Cmd {
	ctx := m.ctx
	svc := m.services.EntryService
	return func() tea.Msg {
		err := svc.Delete(ctx, id)
		return entryDeletedMsg{err: err}
	}
}

func (m appModel) cmdUpload(path string) tea.Cmd {
	ctx := m.ctx
	svc := m.services.EntryService
	userID := m.userID
	return func() tea.Msg {
		result, err := svc.Upload(ctx, userID, path)
		if err != nil {
			return uploadDoneMsg{err: err}
		}
		return uploadDoneMsg{media: models.MediaAttachment{
			Filename: filenameFromPath(path),
			Filetype: filetypeFromPath(path),
			FileURL:  result.FileURL,
		}}
	}
}

// cmdAssistantReply composes the reply immediately (the generator is pure) and
// delivers it after the configured thinking pause. The generation captured
// here is compared against the live transcript on arrival.
func (m appModel) cmdAssistantReply(generation int, userText string) tea.Cmd {
	score := 3
	if records := m.services.MoodLogService.Records(); len(records) > 0 {
		score = records[0].Score
	}
	lastEntryText := ""
	if len(m.journal.entries) > 0 {
		lastEntryText = m.journal.entries[0].Text
	}

	reply := m.services.AssistantService.Reply(score, userText, lastEntryText)
	return tea.Tick(m.replyDelay, func(time.Time) tea.Msg {
		return assistantReplyMsg{generation: generation, text: reply}
	})
}

func cmdCopyToClipboard(text string) tea.Cmd {
	return func() tea.Msg {
		if err := clipboard.WriteAll(text); err != nil {
			return entrySavedMsg{err: fmt.Errorf("copy to clipboard: %w", err)}
		}
		return copiedMsg{}
	}
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(2*time.Second, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}

func toggleVisibility(v models.Visibility) models.Visibility {
	if v == models.VisibilityPrivate {
		return models.VisibilityPublic
	}
	return models.VisibilityPrivate
}

func focusNextCompose(m composeModel) composeModel {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + 1) % len(m.inputs)
	m.inputs[m.focus].Focus()
	return m
}

func focusPrevCompose(m composeModel) composeModel {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus - 1 + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
	return m
}

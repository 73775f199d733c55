package tui

import (
	"github.com/MKhiriev/go-journal-keeper/models"
	"github.com/charmbracelet/bubbles/textinput"
)

// chatModel owns the assistant transcript. generation counts transcript
// resets: a scheduled reply created before a reset carries the old value and
// is discarded on arrival.
type chatModel struct {
	transcript []models.AssistantMessage
	generation int
	input      textinput.Model
	thinking   bool
}

func newChatModel(greeting models.AssistantMessage) chatModel {
	input := textinput.New()
	input.Width = 50
	input.Focus()

	return chatModel{transcript: []models.AssistantMessage{greeting}, input: input}
}

func (m *chatModel) append(msg models.AssistantMessage) {
	m.transcript = append(m.transcript, msg)
}

func (m *chatModel) reset(greeting models.AssistantMessage) {
	m.transcript = []models.AssistantMessage{greeting}
	m.generation++
	m.thinking = false
}

func roleName(r models.Role) string {
	if r == models.RoleUser {
		return "Вы"
	}
	return "Ассистент"
}

func (m chatModel) View() string {
	out := titleStyle.Render("Ассистент") + "\n" + uiDivider + "\n\n"

	for _, msg := range m.transcript {
		out += roleName(msg.Role) + ": " + msg.Text + "\n\n"
	}

	if m.thinking {
		out += "Ассистент печатает...\n\n"
	}

	out += "Сообщение: [" + m.input.View() + "]\n"
	out += "\n" + helpStyle.Render("enter отправить  ctrl+n новый разговор  esc назад")
	return out
}

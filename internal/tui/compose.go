package tui

import (
	"github.com/MKhiriev/go-journal-keeper/models"
	"github.com/charmbracelet/bubbles/textinput"
)

// composeModel is the new-entry form. Besides the text it owns the per-session
// upload state: a completed upload survives until a create consumes it or the
// user leaves the screen.
type composeModel struct {
	inputs     []textinput.Model // 0: текст записи, 1: путь к файлу
	focus      int
	visibility models.Visibility

	uploading  bool
	media      *models.MediaAttachment
	submitting bool
}

func newComposeModel() composeModel {
	inputs := make([]textinput.Model, 2)
	for i := range inputs {
		inputs[i] = textinput.New()
		inputs[i].Width = 50
	}
	inputs[0].Focus()

	return composeModel{inputs: inputs, visibility: models.VisibilityPrivate}
}

func visibilityName(v models.Visibility) string {
	if v == models.VisibilityPublic {
		return "публичная"
	}
	return "личная"
}

func (m composeModel) View() string {
	out := titleStyle.Render("Новая запись") + "\n\n"
	out += "Текст:      [" + m.inputs[0].View() + "]\n"
	out += "Файл:       [" + m.inputs[1].View() + "]\n"
	out += "Видимость:  " + visibilityName(m.visibility) + "\n"

	switch {
	case m.uploading:
		out += "Вложение:   загрузка...\n"
	case m.media != nil:
		out += "Вложение:   " + m.media.Filename + " ✓\n"
	default:
		out += "Вложение:   нет\n"
	}

	if m.submitting {
		out += "\nСохранение...\n"
	}

	out += "\n" + helpStyle.Render("enter сохранить  ctrl+u загрузить файл  ctrl+v видимость  tab поле  esc назад")
	return out
}

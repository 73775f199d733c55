package tui

import (
	"github.com/MKhiriev/go-journal-keeper/models"
	"github.com/charmbracelet/bubbles/textinput"
)

type editModel struct {
	entryID    string
	input      textinput.Model
	visibility models.Visibility
	submitting bool
}

func newEditModel(entry models.JournalEntry) editModel {
	input := textinput.New()
	input.Width = 50
	input.SetValue(entry.Text)
	input.Focus()

	return editModel{entryID: entry.ID, input: input, visibility: entry.Visibility}
}

func (m editModel) View() string {
	out := titleStyle.Render("Редактирование записи") + "\n\n"
	out += "Текст:      [" + m.input.View() + "]\n"
	out += "Видимость:  " + visibilityName(m.visibility) + "\n"

	if m.submitting {
		out += "\nСохранение...\n"
	}

	out += "\n" + helpStyle.Render("enter сохранить  ctrl+v видимость  esc отмена")
	return out
}

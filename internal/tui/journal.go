package tui

import (
	"fmt"

	"github.com/MKhiriev/go-journal-keeper/models"
	"github.com/charmbracelet/bubbles/spinner"
)

type journalModel struct {
	entries []models.JournalEntry
	idx     int
	loading bool
	spinner spinner.Model
	status  string
}

func newJournalModel() journalModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot
	return journalModel{spinner: s, loading: true}
}

func (m journalModel) current() (models.JournalEntry, bool) {
	if len(m.entries) == 0 || m.idx < 0 || m.idx >= len(m.entries) {
		return models.JournalEntry{}, false
	}
	return m.entries[m.idx], true
}

func visibilityIcon(v models.Visibility) string {
	if v == models.VisibilityPublic {
		return "[о]"
	}
	return "[л]"
}

func (m journalModel) View() string {
	header := titleStyle.Render("Мой дневник")
	if m.loading {
		header += "  " + m.spinner.View()
	}
	out := header + "\n" + uiDivider + "\n\n"

	if m.loading {
		out += "Загрузка...\n"
	} else if len(m.entries) == 0 {
		out += "Нет записей\n"
	} else {
		for i, entry := range m.entries {
			cursor := "  "
			if i == m.idx {
				cursor = "> "
			}
			media := "   "
			if entry.HasMedia() {
				media = " 📎"
			}
			out += fmt.Sprintf("%s%s%s %s\n", cursor, visibilityIcon(entry.Visibility), media, fitText(firstLine(entry.Text), 60))
		}
	}

	if m.status != "" {
		out += "\n" + m.status + "\n"
	}

	out += "\n" + helpStyle.Render("n новая  e редакт.  d удалить  c копир.  m настроение  a ассистент  r обновить  q выход")
	return out
}

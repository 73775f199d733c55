package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-journal-keeper/models"
	"github.com/charmbracelet/bubbles/textinput"
)

type moodModel struct {
	score   int
	note    textinput.Model
	records []models.MoodRecord
	status  string
}

func newMoodModel() moodModel {
	note := textinput.New()
	note.Width = 40
	note.Focus()

	return moodModel{score: 3, note: note}
}

func moodScale(score int) string {
	var b strings.Builder
	for i := 1; i <= 5; i++ {
		if i == score {
			b.WriteString(fmt.Sprintf("[%d]", i))
		} else {
			b.WriteString(fmt.Sprintf(" %d ", i))
		}
	}
	return b.String()
}

func (m moodModel) View() string {
	out := titleStyle.Render("Настроение") + "\n\n"
	out += "Оценка:  " + moodScale(m.score) + "\n"
	out += "Заметка: [" + m.note.View() + "]\n"

	if m.status != "" {
		out += "\n" + m.status + "\n"
	}

	if len(m.records) > 0 {
		out += "\n" + uiDivider + "\n"
		for _, record := range m.records {
			note := ""
			if record.Note != "" {
				note = "  " + fitText(record.Note, 40)
			}
			out += fmt.Sprintf("%s  %d/5%s\n", record.Timestamp.Format("02.01 15:04"), record.Score, note)
		}
	}

	out += "\n" + helpStyle.Render("←/→ оценка  enter сохранить  esc назад")
	return out
}

package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
)

type userIDModel struct {
	input textinput.Model
}

func newUserIDModel() userIDModel {
	input := textinput.New()
	input.Width = 30
	input.Focus()

	return userIDModel{input: input}
}

func (m userIDModel) View() string {
	out := titleStyle.Render("Мой дневник") + "\n\n"
	out += "Введите идентификатор пользователя:\n\n"
	out += "[" + m.input.View() + "]\n"
	out += "\n" + helpStyle.Render("enter продолжить  ctrl+c выход")
	return out
}

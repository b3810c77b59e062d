package app

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// TextField wraps a bubbles textinput with the small surface the model needs.
type TextField struct {
	input textinput.Model
}

func NewTextField(placeholder string, width, charLimit int) *TextField {
	input := textinput.New()
	input.Placeholder = placeholder
	input.CharLimit = charLimit
	input.Width = width
	input.Prompt = ""
	return &TextField{input: input}
}

func (f *TextField) Focus() tea.Cmd {
	return f.input.Focus()
}

func (f *TextField) Blur() {
	f.input.Blur()
}

func (f *TextField) Focused() bool {
	return f.input.Focused()
}

func (f *TextField) SetValue(value string) {
	f.input.SetValue(value)
	f.input.CursorEnd()
}

func (f *TextField) Value() string {
	return f.input.Value()
}

func (f *TextField) SetWidth(width int) {
	if width < 1 {
		width = 1
	}
	f.input.Width = width
}

func (f *TextField) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	f.input, cmd = f.input.Update(msg)
	return cmd
}

func (f *TextField) View() string {
	return f.input.View()
}

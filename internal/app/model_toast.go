package app

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const toastDuration = 3 * time.Second

type toastLevel int

const (
	toastLevelInfo toastLevel = iota
	toastLevelError
)

type toastExpiredMsg struct{}

func (m *Model) showInfoToast(message string) tea.Cmd {
	return m.showToast(toastLevelInfo, message)
}

func (m *Model) showErrorToast(message string) tea.Cmd {
	return m.showToast(toastLevelError, message)
}

func (m *Model) showToast(level toastLevel, message string) tea.Cmd {
	message = strings.TrimSpace(message)
	if message == "" {
		return nil
	}
	m.toastText = message
	m.toastLevel = level
	m.toastUntil = time.Now().Add(toastDuration)
	return tea.Tick(toastDuration+50*time.Millisecond, func(time.Time) tea.Msg {
		return toastExpiredMsg{}
	})
}

func (m *Model) toastActive(at time.Time) bool {
	if m.toastText == "" {
		return false
	}
	return at.Before(m.toastUntil)
}

func (m *Model) clearToast() {
	m.toastText = ""
	m.toastLevel = toastLevelInfo
	m.toastUntil = time.Time{}
}

func (m *Model) toastLine(width int) string {
	if !m.toastActive(time.Now()) {
		return ""
	}
	style := toastInfoStyle
	if m.toastLevel == toastLevelError {
		style = toastErrorStyle
	}
	text := style.Render(" " + m.toastText + " ")
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, text)
}

package app

import (
	tea "github.com/charmbracelet/bubbletea"
)

func (m *Model) reduceKey(msg tea.KeyMsg) tea.Cmd {
	key := msg.String()
	if key == "ctrl+c" {
		return tea.Quit
	}
	switch m.mode {
	case uiModeEditor:
		return m.reduceEditorKey(msg, key)
	case uiModeConfirmDelete:
		return m.reduceConfirmKey(key)
	}
	if m.searchFocused {
		return m.reduceSearchKey(msg, key)
	}
	return m.reduceListKey(key)
}

func (m *Model) reduceListKey(key string) tea.Cmd {
	switch key {
	case "q":
		return tea.Quit
	case "/":
		m.searchFocused = true
		return m.searchInput.Focus()
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
			m.syncPreview()
		}
	case "down", "j":
		if m.cursor < len(m.visibleNotes())-1 {
			m.cursor++
			m.syncPreview()
		}
	case "g", "home":
		m.cursor = 0
		m.syncPreview()
	case "G", "end":
		if count := len(m.visibleNotes()); count > 0 {
			m.cursor = count - 1
			m.syncPreview()
		}
	case "pgup":
		m.preview.HalfViewUp()
	case "pgdown":
		m.preview.HalfViewDown()
	case "a", "n":
		return m.enterAddNote()
	case "e", "enter":
		return m.enterEditNote()
	case "d":
		m.enterConfirmDelete()
	case "r":
		return m.startListFetch()
	case "y":
		return m.copySelectedNote()
	case "esc":
		if m.searchQuery != "" {
			m.searchInput.SetValue("")
			return m.setSearchQuery("")
		}
	}
	return nil
}

func (m *Model) reduceSearchKey(msg tea.KeyMsg, key string) tea.Cmd {
	switch key {
	case "esc":
		m.searchFocused = false
		m.searchInput.Blur()
		m.searchInput.SetValue("")
		return m.setSearchQuery("")
	case "enter", "down":
		m.searchFocused = false
		m.searchInput.Blur()
		return nil
	}
	inputCmd := m.searchInput.Update(msg)
	queryCmd := m.setSearchQuery(m.searchInput.Value())
	return tea.Batch(inputCmd, queryCmd)
}

func (m *Model) reduceEditorKey(msg tea.KeyMsg, key string) tea.Cmd {
	switch key {
	case "esc":
		m.dismissModal()
		return nil
	case "ctrl+s":
		return m.submitEditor()
	case "tab", "shift+tab":
		return m.toggleEditorFocus()
	case "enter":
		if m.editorFocus == editorFocusTitle {
			return m.toggleEditorFocus()
		}
		return m.submitEditor()
	}
	if m.editorFocus == editorFocusTitle {
		return m.titleInput.Update(msg)
	}
	return m.contentInput.Update(msg)
}

func (m *Model) toggleEditorFocus() tea.Cmd {
	if m.editorFocus == editorFocusTitle {
		m.editorFocus = editorFocusContent
		m.titleInput.Blur()
		return m.contentInput.Focus()
	}
	m.editorFocus = editorFocusTitle
	m.contentInput.Blur()
	return m.titleInput.Focus()
}

func (m *Model) reduceConfirmKey(key string) tea.Cmd {
	switch key {
	case "y", "enter":
		return m.submitDelete()
	case "n", "esc":
		m.dismissModal()
	}
	return nil
}

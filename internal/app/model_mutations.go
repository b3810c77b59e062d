package app

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

func (m *Model) enterAddNote() tea.Cmd {
	m.mode = uiModeEditor
	m.editID = ""
	m.titleInput.SetValue("")
	m.contentInput.SetValue("")
	m.contentInput.Blur()
	m.editorFocus = editorFocusTitle
	m.status = ""
	return m.titleInput.Focus()
}

func (m *Model) enterEditNote() tea.Cmd {
	note := m.selectedNote()
	if note == nil {
		m.setValidationStatus("no note selected")
		return nil
	}
	if note.ID == "" {
		m.setValidationStatus("note has no id; refresh and try again")
		return nil
	}
	m.mode = uiModeEditor
	m.editID = note.ID
	m.titleInput.SetValue(note.Title)
	m.contentInput.SetValue(note.Content)
	m.contentInput.Blur()
	m.editorFocus = editorFocusTitle
	m.status = ""
	return m.titleInput.Focus()
}

// submitEditor validates locally before any network traffic and leaves the
// editor open until the save resolves.
func (m *Model) submitEditor() tea.Cmd {
	if m.busy {
		m.setValidationStatus("save already in progress")
		return nil
	}
	title := strings.TrimSpace(m.titleInput.Value())
	if title == "" {
		m.setValidationStatus("title is required")
		return nil
	}
	content := m.contentInput.Value()
	m.busy = true
	m.errMsg = ""
	m.status = "saving..."
	if m.editID == "" {
		return tea.Batch(createNoteCmd(m.api, title, content), m.loader.Tick)
	}
	return tea.Batch(updateNoteCmd(m.api, m.editID, title, content), m.loader.Tick)
}

func (m *Model) enterConfirmDelete() {
	note := m.selectedNote()
	if note == nil {
		m.setValidationStatus("no note selected")
		return
	}
	if note.ID == "" {
		m.setValidationStatus("note has no id; refresh and try again")
		return
	}
	m.mode = uiModeConfirmDelete
	m.deleteID = note.ID
	// Remember the title now: the note may come from server search results
	// that are not part of the last full listing.
	m.deleteTitle = note.Title
	m.status = ""
}

func (m *Model) submitDelete() tea.Cmd {
	if m.busy {
		return nil
	}
	if m.deleteID == "" {
		m.mode = uiModeList
		return nil
	}
	m.busy = true
	m.errMsg = ""
	m.status = "deleting..."
	return tea.Batch(deleteNoteCmd(m.api, m.deleteID), m.loader.Tick)
}

// dismissModal closes the editor or confirm dialog. While a mutation is in
// flight the modal stays put so its outcome has somewhere to land.
func (m *Model) dismissModal() {
	if m.busy {
		m.setValidationStatus("request in flight")
		return
	}
	m.mode = uiModeList
	m.editID = ""
	m.deleteID = ""
	m.deleteTitle = ""
	m.titleInput.Blur()
	m.contentInput.Blur()
	m.status = ""
}

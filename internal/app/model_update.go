package app

import (
	tea "github.com/charmbracelet/bubbletea"
)

// reduceStateMessage handles the async results. It returns handled=false for
// anything that is not one of the request messages.
func (m *Model) reduceStateMessage(msg tea.Msg) (bool, tea.Cmd) {
	switch msg := msg.(type) {
	case notesMsg:
		return true, m.reduceNotes(msg)
	case searchDebounceMsg:
		return true, m.reduceSearchDebounce(msg)
	case searchResultsMsg:
		m.reduceSearchResults(msg)
		return true, nil
	case noteSavedMsg:
		return true, m.reduceNoteSaved(msg)
	case noteDeletedMsg:
		return true, m.reduceNoteDeleted(msg)
	case clipboardResultMsg:
		return true, m.reduceClipboardResult(msg)
	}
	return false, nil
}

func (m *Model) reduceNotes(msg notesMsg) tea.Cmd {
	if msg.seq != m.listSeq || isCanceledRequestError(msg.err) {
		// Superseded by a newer fetch. Even a successful result is stale
		// here; whatever state and error the user was looking at stands.
		return nil
	}
	m.loading = false
	m.cancelRequestScope(requestScopeList)
	if msg.err != nil {
		m.errMsg = msg.err.Error()
		return m.showErrorToast("failed to load notes")
	}
	m.errMsg = ""
	m.allNotes = msg.notes
	m.serverSearch = false
	m.searchResults = nil
	m.clampCursor()
	m.syncPreview()
	return nil
}

func (m *Model) reduceNoteSaved(msg noteSavedMsg) tea.Cmd {
	m.busy = false
	if msg.err != nil {
		// The editor stays open so nothing typed is lost.
		m.errMsg = msg.err.Error()
		return m.showErrorToast("save failed: " + msg.err.Error())
	}
	m.errMsg = ""
	m.status = ""
	m.mode = uiModeList
	m.editID = ""
	m.titleInput.Blur()
	m.contentInput.Blur()
	// The server may or may not echo the saved record; reloading the listing
	// keeps the view server-authoritative either way.
	return tea.Batch(m.showInfoToast("note saved"), m.startListFetch())
}

func (m *Model) reduceNoteDeleted(msg noteDeletedMsg) tea.Cmd {
	m.busy = false
	m.mode = uiModeList
	m.deleteID = ""
	m.deleteTitle = ""
	if msg.err != nil {
		m.errMsg = msg.err.Error()
		return m.showErrorToast("delete failed: " + msg.err.Error())
	}
	m.errMsg = ""
	m.status = ""
	return tea.Batch(m.showInfoToast("note deleted"), m.startListFetch())
}

func (m *Model) reduceClipboardResult(msg clipboardResultMsg) tea.Cmd {
	if msg.err != nil {
		return m.showErrorToast("copy failed: " + msg.err.Error())
	}
	return m.showInfoToast(msg.success)
}

package app

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// setSearchQuery is the single entry point for query changes. Every change
// bumps the sequence counter, which is what invalidates pending debounce
// timers and in-flight search responses.
func (m *Model) setSearchQuery(query string) tea.Cmd {
	if query == m.searchQuery {
		return nil
	}
	m.searchQuery = query
	m.searchSeq++
	if len([]rune(strings.TrimSpace(query))) < m.searchMinLength {
		// Below the threshold the client-side filter takes over and any
		// pending server search must not land later.
		m.cancelRequestScope(requestScopeSearch)
		m.searching = false
		m.serverSearch = false
		m.searchResults = nil
		m.clampCursor()
		m.syncPreview()
		return nil
	}
	m.clampCursor()
	m.syncPreview()
	return debounceSearchCmd(query, m.searchSeq, m.searchDebounce)
}

func (m *Model) reduceSearchDebounce(msg searchDebounceMsg) tea.Cmd {
	if msg.seq != m.searchSeq || msg.query != m.searchQuery {
		// Superseded while the timer was armed.
		return nil
	}
	ctx := m.replaceRequestScope(requestScopeSearch)
	m.searching = true
	return tea.Batch(searchNotesCmd(ctx, m.api, msg.query, msg.seq), m.loader.Tick)
}

func (m *Model) reduceSearchResults(msg searchResultsMsg) {
	if msg.seq != m.searchSeq {
		return
	}
	m.searching = false
	m.cancelRequestScope(requestScopeSearch)
	if msg.err != nil {
		// Search is best effort: failures and cancellations alike fall back
		// to the client-side filter without surfacing an error.
		m.serverSearch = false
		return
	}
	m.searchResults = msg.notes
	m.serverSearch = true
	m.cursor = 0
	m.syncPreview()
}

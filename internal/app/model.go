package app

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"noted/internal/config"
	"noted/internal/types"
)

type uiMode int

const (
	uiModeList uiMode = iota
	uiModeEditor
	uiModeConfirmDelete
)

const (
	editorFocusTitle = iota
	editorFocusContent
)

type Model struct {
	api NotesAPI

	// allNotes is the last full listing the server confirmed. searchResults
	// only replaces the view while serverSearch is set; a failed or stale
	// search never touches allNotes.
	allNotes      []types.Note
	searchResults []types.Note
	serverSearch  bool

	listSeq int

	searchQuery     string
	searchSeq       int
	searchDebounce  time.Duration
	searchMinLength int
	searchFocused   bool
	searching       bool

	loading bool
	busy    bool
	errMsg  string
	status  string

	mode        uiMode
	cursor      int
	editID      string
	deleteID    string
	deleteTitle string
	editorFocus int

	searchInput  *TextField
	titleInput   *TextField
	contentInput *TextField

	preview viewport.Model
	loader  spinner.Model

	toastText  string
	toastLevel toastLevel
	toastUntil time.Time

	requestScopes map[string]requestScope

	width  int
	height int
}

func NewModel(api NotesAPI, cfg config.Config) Model {
	loader := spinner.New()
	loader.Spinner = spinner.MiniDot

	return Model{
		api:             api,
		searchDebounce:  cfg.SearchDebounce(),
		searchMinLength: cfg.SearchMinLength(),
		searchInput:     NewTextField("search notes", 40, 256),
		titleInput:      NewTextField("title", 48, 256),
		contentInput:    NewTextField("content", 48, 0),
		preview:         viewport.New(0, 0),
		loader:          loader,
		requestScopes:   map[string]requestScope{},
		width:           80,
		height:          24,
	}
}

func Run(api NotesAPI, cfg config.Config) error {
	model := NewModel(api, cfg)
	program := tea.NewProgram(&model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("run ui: %w", err)
	}
	return nil
}

func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.startListFetch(), m.loader.Tick)
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil
	case spinner.TickMsg:
		if !m.loading && !m.busy && !m.searching {
			return m, nil
		}
		var cmd tea.Cmd
		m.loader, cmd = m.loader.Update(msg)
		return m, cmd
	case toastExpiredMsg:
		if !m.toastActive(time.Now()) {
			m.clearToast()
		}
		return m, nil
	}
	if handled, cmd := m.reduceStateMessage(msg); handled {
		return m, cmd
	}
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		return m, m.reduceKey(keyMsg)
	}
	return m, nil
}

// startListFetch supersedes any fetch already in flight: the old scope is
// canceled and the seq bump makes a late result from it unrecognizable.
func (m *Model) startListFetch() tea.Cmd {
	m.listSeq++
	ctx := m.replaceRequestScope(requestScopeList)
	m.loading = true
	return tea.Batch(fetchNotesCmd(ctx, m.api, m.listSeq), m.loader.Tick)
}

// visibleNotes is what the list renders: server results while an accepted
// search is in effect, otherwise the full listing narrowed by the
// client-side filter.
func (m *Model) visibleNotes() []types.Note {
	if m.serverSearch {
		return m.searchResults
	}
	return filterNotes(m.allNotes, m.searchQuery)
}

func (m *Model) selectedNote() *types.Note {
	notes := m.visibleNotes()
	if m.cursor < 0 || m.cursor >= len(notes) {
		return nil
	}
	return &notes[m.cursor]
}

func (m *Model) clampCursor() {
	count := len(m.visibleNotes())
	if count == 0 {
		m.cursor = 0
		return
	}
	if m.cursor >= count {
		m.cursor = count - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m *Model) setValidationStatus(message string) {
	m.status = message
}

func (m *Model) resize(width, height int) {
	if width < 20 {
		width = 20
	}
	if height < 6 {
		height = 6
	}
	m.width = width
	m.height = height

	listWidth := m.listWidth()
	m.searchInput.SetWidth(width - 12)
	m.titleInput.SetWidth(width - 16)
	m.contentInput.SetWidth(width - 16)
	previewWidth := width - listWidth - 3
	if previewWidth < 0 {
		previewWidth = 0
	}
	m.preview.Width = previewWidth
	m.preview.Height = m.bodyHeight()
	m.syncPreview()
}

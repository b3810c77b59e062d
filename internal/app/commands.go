package app

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

const (
	listRequestTimeout   = 10 * time.Second
	searchRequestTimeout = 10 * time.Second
	mutateRequestTimeout = 15 * time.Second
)

func fetchNotesCmd(ctx context.Context, api NotesAPI, seq int) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(ctx, listRequestTimeout)
		defer cancel()
		notes, err := api.ListNotes(ctx)
		return notesMsg{seq: seq, notes: notes, err: err}
	}
}

// debounceSearchCmd arms the quiet-period timer. The seq stamp lets the
// reducer drop the tick when further typing has superseded it.
func debounceSearchCmd(query string, seq int, wait time.Duration) tea.Cmd {
	return tea.Tick(wait, func(time.Time) tea.Msg {
		return searchDebounceMsg{query: query, seq: seq}
	})
}

func searchNotesCmd(ctx context.Context, api NotesAPI, query string, seq int) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(ctx, searchRequestTimeout)
		defer cancel()
		notes, err := api.SearchNotes(ctx, query)
		return searchResultsMsg{query: query, seq: seq, notes: notes, err: err}
	}
}

func createNoteCmd(api NotesAPI, title, content string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), mutateRequestTimeout)
		defer cancel()
		note, err := api.CreateNote(ctx, title, content)
		return noteSavedMsg{note: note, err: err}
	}
}

func updateNoteCmd(api NotesAPI, id, title, content string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), mutateRequestTimeout)
		defer cancel()
		note, err := api.UpdateNote(ctx, id, title, content)
		return noteSavedMsg{note: note, err: err}
	}
}

func deleteNoteCmd(api NotesAPI, id string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), mutateRequestTimeout)
		defer cancel()
		err := api.DeleteNote(ctx, id)
		return noteDeletedMsg{id: id, err: err}
	}
}

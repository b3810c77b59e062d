package app

import "noted/internal/types"

type notesMsg struct {
	seq   int
	notes []types.Note
	err   error
}

type searchDebounceMsg struct {
	query string
	seq   int
}

type searchResultsMsg struct {
	query string
	seq   int
	notes []types.Note
	err   error
}

type noteSavedMsg struct {
	note *types.Note
	err  error
}

type noteDeletedMsg struct {
	id  string
	err error
}

type clipboardResultMsg struct {
	success string
	err     error
}

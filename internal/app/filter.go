package app

import (
	"strings"

	"noted/internal/types"
)

// filterNotes is the client-side fallback match: case-insensitive substring
// over title or content. An empty or whitespace query matches everything.
func filterNotes(notes []types.Note, query string) []types.Note {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return notes
	}
	filtered := make([]types.Note, 0, len(notes))
	for _, note := range notes {
		if strings.Contains(strings.ToLower(note.Title), query) ||
			strings.Contains(strings.ToLower(note.Content), query) {
			filtered = append(filtered, note)
		}
	}
	return filtered
}

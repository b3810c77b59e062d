package client

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"

	"noted/internal/types"
)

// Identifier aliases seen across backends, checked in order. "body" is the
// content alias.
var noteIDAliases = []string{"id", "note_id", "_id", "uuid"}

func noteFromRaw(raw map[string]any) types.Note {
	var note types.Note
	for _, key := range noteIDAliases {
		if id := stringValue(raw[key]); id != "" {
			note.ID = id
			break
		}
	}
	note.Title = stringValue(raw["title"])
	if content, ok := raw["content"]; ok {
		note.Content = stringValue(content)
	} else {
		note.Content = stringValue(raw["body"])
	}
	extra := map[string]any{}
	for key, value := range raw {
		switch key {
		case "id", "note_id", "_id", "uuid", "title", "content", "body":
			continue
		}
		extra[key] = value
	}
	if len(extra) > 0 {
		note.Extra = extra
	}
	return note
}

func stringValue(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case json.Number:
		return v.String()
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	default:
		return fmt.Sprintf("%v", v)
	}
}

// decodeNote tolerates an empty or null body: some backends return the created
// or updated record, others return nothing.
func decodeNote(data []byte) (*types.Note, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil, nil
	}
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("unexpected note payload: %w", err)
	}
	note := noteFromRaw(raw)
	return &note, nil
}

// decodeNoteList accepts a bare array or an object wrapping the array under an
// "items" or "notes" key.
func decodeNoteList(data []byte) ([]types.Note, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return []types.Note{}, nil
	}
	var rows []map[string]any
	if err := json.Unmarshal(data, &rows); err == nil {
		return notesFromRows(rows), nil
	}
	var envelope struct {
		Items []map[string]any `json:"items"`
		Notes []map[string]any `json:"notes"`
	}
	if err := json.Unmarshal(data, &envelope); err != nil {
		return nil, fmt.Errorf("unexpected list payload: %w", err)
	}
	rows = envelope.Items
	if rows == nil {
		rows = envelope.Notes
	}
	return notesFromRows(rows), nil
}

func notesFromRows(rows []map[string]any) []types.Note {
	notes := make([]types.Note, 0, len(rows))
	for _, row := range rows {
		if row == nil {
			continue
		}
		notes = append(notes, noteFromRaw(row))
	}
	return notes
}

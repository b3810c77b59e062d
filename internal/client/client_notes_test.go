package client

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestListNotesAcceptsEnvelopeShapes(t *testing.T) {
	payloads := map[string]string{
		"bare array": `[{"id":"1","title":"Milk","content":"buy"}]`,
		"items key":  `{"items":[{"id":"1","title":"Milk","content":"buy"}]}`,
		"notes key":  `{"notes":[{"id":"1","title":"Milk","content":"buy"}]}`,
	}
	for name, payload := range payloads {
		t.Run(name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				_, _ = io.WriteString(w, payload)
			}))
			defer server.Close()

			c := NewWithBaseURL(server.URL)
			notes, err := c.ListNotes(context.Background())
			if err != nil {
				t.Fatalf("ListNotes: %v", err)
			}
			if len(notes) != 1 {
				t.Fatalf("expected 1 note, got %d", len(notes))
			}
			if notes[0].ID != "1" || notes[0].Title != "Milk" || notes[0].Content != "buy" {
				t.Fatalf("unexpected note: %#v", notes[0])
			}
		})
	}
}

func TestListNotesNormalizesAliases(t *testing.T) {
	payload := `[
		{"note_id":"a","title":"A","body":"first"},
		{"_id":"b","content":"second"},
		{"uuid":"c","title":"C"},
		{"title":"D","content":"fourth","pinned":true}
	]`
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, payload)
	}))
	defer server.Close()

	c := NewWithBaseURL(server.URL)
	notes, err := c.ListNotes(context.Background())
	if err != nil {
		t.Fatalf("ListNotes: %v", err)
	}
	if len(notes) != 4 {
		t.Fatalf("expected 4 notes, got %d", len(notes))
	}
	if notes[0].ID != "a" || notes[0].Content != "first" {
		t.Fatalf("note_id/body alias not coalesced: %#v", notes[0])
	}
	if notes[1].ID != "b" || notes[1].Title != "" || notes[1].Content != "second" {
		t.Fatalf("_id alias or title default wrong: %#v", notes[1])
	}
	if notes[2].ID != "c" || notes[2].Content != "" {
		t.Fatalf("uuid alias or content default wrong: %#v", notes[2])
	}
	if notes[3].ID != "" {
		t.Fatalf("id should stay empty when no alias present: %#v", notes[3])
	}
	if pinned, ok := notes[3].Extra["pinned"].(bool); !ok || !pinned {
		t.Fatalf("extra field not passed through: %#v", notes[3].Extra)
	}
}

func TestCreateNoteSendsExactBodyAndHeaders(t *testing.T) {
	var gotBody []byte
	var gotContentType, gotAccept string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotBody, _ = io.ReadAll(r.Body)
		gotContentType = r.Header.Get("Content-Type")
		gotAccept = r.Header.Get("Accept")
		w.WriteHeader(http.StatusCreated)
	}))
	defer server.Close()

	c := NewWithBaseURL(server.URL)
	note, err := c.CreateNote(context.Background(), "Milk", "buy")
	if err != nil {
		t.Fatalf("CreateNote: %v", err)
	}
	if note != nil {
		t.Fatalf("empty response body should yield nil note, got %#v", note)
	}
	if string(gotBody) != `{"title":"Milk","content":"buy"}` {
		t.Fatalf("unexpected request body: %s", gotBody)
	}
	if gotContentType != "application/json" {
		t.Fatalf("unexpected content type: %q", gotContentType)
	}
	if gotAccept != "application/json" {
		t.Fatalf("unexpected accept header: %q", gotAccept)
	}
}

func TestListNotesOmitsContentTypeWithoutBody(t *testing.T) {
	var gotContentType string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotContentType = r.Header.Get("Content-Type")
		_, _ = io.WriteString(w, "[]")
	}))
	defer server.Close()

	c := NewWithBaseURL(server.URL)
	if _, err := c.ListNotes(context.Background()); err != nil {
		t.Fatalf("ListNotes: %v", err)
	}
	if gotContentType != "" {
		t.Fatalf("GET should carry no content type, got %q", gotContentType)
	}
}

func TestDeleteNoteTreats204AsSuccess(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodDelete {
			t.Errorf("unexpected method %s", r.Method)
		}
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	c := NewWithBaseURL(server.URL)
	if err := c.DeleteNote(context.Background(), "n1"); err != nil {
		t.Fatalf("DeleteNote: %v", err)
	}
}

func TestBaseURLTrailingSlashStripped(t *testing.T) {
	c := NewWithBaseURL("http://example.test///")
	if c.baseURL != "http://example.test" {
		t.Fatalf("unexpected base url: %q", c.baseURL)
	}
}

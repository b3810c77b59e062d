package client

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
)

func TestSearchNotesEmptyQuerySkipsNetwork(t *testing.T) {
	var requests atomic.Int64
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
	}))
	defer server.Close()

	c := NewWithBaseURL(server.URL)
	for _, query := range []string{"", "  ", "\t"} {
		notes, err := c.SearchNotes(context.Background(), query)
		if err != nil {
			t.Fatalf("SearchNotes(%q): %v", query, err)
		}
		if len(notes) != 0 {
			t.Fatalf("expected empty result for %q, got %d", query, len(notes))
		}
	}
	if requests.Load() != 0 {
		t.Fatalf("empty query must not hit the network, saw %d requests", requests.Load())
	}
}

func TestSearchNotesTriesCandidatesInOrder(t *testing.T) {
	var seen []string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = append(seen, r.URL.Path+"?"+r.URL.RawQuery)
		if r.URL.Path == "/notes" && r.URL.Query().Get("q") == "milk" {
			w.Header().Set("Content-Type", "application/json")
			_, _ = io.WriteString(w, `[{"id":"1","title":"Milk","content":"buy"}]`)
			return
		}
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	c := NewWithBaseURL(server.URL)
	notes, err := c.SearchNotes(context.Background(), "milk")
	if err != nil {
		t.Fatalf("SearchNotes: %v", err)
	}
	if len(notes) != 1 || notes[0].ID != "1" {
		t.Fatalf("unexpected result: %#v", notes)
	}
	want := []string{
		"/notes/search?q=milk",
		"/notes/search?query=milk",
		"/notes?q=milk",
	}
	if len(seen) != len(want) {
		t.Fatalf("unexpected request count: %v", seen)
	}
	for i := range want {
		if seen[i] != want[i] {
			t.Fatalf("candidate %d: got %q want %q", i, seen[i], want[i])
		}
	}
}

func TestSearchNotesFirstSuccessShortCircuits(t *testing.T) {
	var requests int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		_, _ = io.WriteString(w, "[]")
	}))
	defer server.Close()

	c := NewWithBaseURL(server.URL)
	if _, err := c.SearchNotes(context.Background(), "milk"); err != nil {
		t.Fatalf("SearchNotes: %v", err)
	}
	if requests != 1 {
		t.Fatalf("expected a single request, got %d", requests)
	}
}

func TestSearchNotesPropagatesFinalFailure(t *testing.T) {
	statuses := []int{http.StatusInternalServerError, http.StatusBadGateway, http.StatusServiceUnavailable}
	var requests int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		status := statuses[requests%len(statuses)]
		requests++
		w.WriteHeader(status)
	}))
	defer server.Close()

	c := NewWithBaseURL(server.URL)
	_, err := c.SearchNotes(context.Background(), "milk")
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected APIError, got %v", err)
	}
	if apiErr.StatusCode != http.StatusServiceUnavailable {
		t.Fatalf("expected the final candidate's failure, got %d", apiErr.StatusCode)
	}
	if requests != 3 {
		t.Fatalf("expected 3 attempts, got %d", requests)
	}
}

func TestSearchNotesStopsChainOnCancellation(t *testing.T) {
	var requests int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	c := NewWithBaseURL(server.URL)
	_, err := c.SearchNotes(ctx, "milk")
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if requests > 1 {
		t.Fatalf("canceled search must not walk the fallback chain, saw %d requests", requests)
	}
}

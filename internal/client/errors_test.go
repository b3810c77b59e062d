package client

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestAPIErrorMessageExtraction(t *testing.T) {
	cases := []struct {
		name   string
		status int
		body   string
		want   string
	}{
		{"detail field", http.StatusBadRequest, `{"detail":"title too long"}`, "title too long"},
		{"message field", http.StatusConflict, `{"message":"duplicate note"}`, "duplicate note"},
		{"detail wins over message", http.StatusBadRequest, `{"detail":"d","message":"m"}`, "d"},
		{"json without known fields", http.StatusBadRequest, `{"code":42}`, `{"code":42}`},
		{"plain text", http.StatusBadGateway, "upstream exploded", "upstream exploded"},
		{"empty body", http.StatusNotFound, "", "Request failed (404)"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.status)
				_, _ = io.WriteString(w, tc.body)
			}))
			defer server.Close()

			c := NewWithBaseURL(server.URL)
			_, err := c.ListNotes(context.Background())
			var apiErr *APIError
			if !errors.As(err, &apiErr) {
				t.Fatalf("expected APIError, got %v", err)
			}
			if apiErr.StatusCode != tc.status {
				t.Fatalf("unexpected status: %d", apiErr.StatusCode)
			}
			if apiErr.Message != tc.want {
				t.Fatalf("unexpected message: %q want %q", apiErr.Message, tc.want)
			}
		})
	}
}

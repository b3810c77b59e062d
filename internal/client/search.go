package client

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"noted/internal/logging"
	"noted/internal/types"
)

// The backend's search surface is not standardized. Three endpoint conventions
// are tried in order; the first request that succeeds wins and the rest are
// skipped. When every candidate fails the final failure propagates.
type searchCandidate struct {
	path  string
	param string
}

var searchCandidates = []searchCandidate{
	{path: notesPath + "/search", param: "q"},
	{path: notesPath + "/search", param: "query"},
	{path: notesPath, param: "q"},
}

// SearchNotes returns an empty sequence without touching the network when the
// trimmed query is empty.
func (c *Client) SearchNotes(ctx context.Context, query string) ([]types.Note, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return []types.Note{}, nil
	}
	var lastErr error
	for _, candidate := range searchCandidates {
		path := candidate.path + "?" + candidate.param + "=" + url.QueryEscape(query)
		body, err := c.do(ctx, http.MethodGet, path, nil)
		if err != nil {
			if ctx.Err() != nil {
				// Cancellation is not a candidate failure; stop the chain.
				return nil, err
			}
			c.log.Debug("search candidate failed",
				logging.F("path", candidate.path),
				logging.F("param", candidate.param),
				logging.F("err", err))
			lastErr = err
			continue
		}
		return decodeNoteList(body)
	}
	return nil, lastErr
}

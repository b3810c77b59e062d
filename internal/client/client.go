package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"noted/internal/config"
	"noted/internal/logging"
	"noted/internal/types"
)

const notesPath = "/notes"

// Client talks to a notes backend over JSON HTTP and normalizes the varying
// response shapes into canonical Note records.
type Client struct {
	baseURL string
	http    *http.Client
	log     logging.Logger
}

func New(cfg config.Config) *Client {
	return NewWithBaseURL(cfg.ServerBaseURL())
}

func NewWithBaseURL(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		http: &http.Client{
			Timeout: 10 * time.Second,
		},
		log: logging.Nop(),
	}
}

func (c *Client) SetLogger(log logging.Logger) {
	if log == nil {
		log = logging.Nop()
	}
	c.log = log
}

func (c *Client) ListNotes(ctx context.Context) ([]types.Note, error) {
	body, err := c.do(ctx, http.MethodGet, notesPath, nil)
	if err != nil {
		return nil, err
	}
	return decodeNoteList(body)
}

// notePayload is the only body shape ever sent; caller-supplied extra fields
// are dropped on create and update.
type notePayload struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// CreateNote returns the created note when the backend echoes one back, or nil
// when it responds with an empty body.
func (c *Client) CreateNote(ctx context.Context, title, content string) (*types.Note, error) {
	body, err := c.do(ctx, http.MethodPost, notesPath, notePayload{Title: title, Content: content})
	if err != nil {
		return nil, err
	}
	return decodeNote(body)
}

// UpdateNote tries PUT first and repeats the identical body with PATCH when
// the server answers 405. Any other failure propagates without a retry.
func (c *Client) UpdateNote(ctx context.Context, id, title, content string) (*types.Note, error) {
	if strings.TrimSpace(id) == "" {
		return nil, errors.New("note id is required")
	}
	path := notesPath + "/" + url.PathEscape(id)
	payload := notePayload{Title: title, Content: content}
	body, err := c.do(ctx, http.MethodPut, path, payload)
	if err != nil {
		apiErr := asAPIError(err)
		if apiErr == nil || apiErr.StatusCode != http.StatusMethodNotAllowed {
			return nil, err
		}
		c.log.Debug("PUT not allowed, retrying with PATCH", logging.F("id", id))
		body, err = c.do(ctx, http.MethodPatch, path, payload)
		if err != nil {
			return nil, err
		}
	}
	return decodeNote(body)
}

// DeleteNote treats any 2xx, including 204 with no body, as success.
func (c *Client) DeleteNote(ctx context.Context, id string) error {
	if strings.TrimSpace(id) == "" {
		return errors.New("note id is required")
	}
	_, err := c.do(ctx, http.MethodDelete, notesPath+"/"+url.PathEscape(id), nil)
	return err
}

// do performs a request and returns the raw response body. Accept is always
// set; Content-Type only when a body is present. Non-2xx responses come back
// as *APIError.
func (c *Client) do(ctx context.Context, method, path string, body any) ([]byte, error) {
	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, decodeAPIError(resp)
	}
	if resp.StatusCode == http.StatusNoContent {
		return nil, nil
	}
	return io.ReadAll(resp.Body)
}

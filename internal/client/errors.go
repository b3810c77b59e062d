package client

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
)

const maxErrorBodyBytes = 64 * 1024

// APIError is returned for every non-2xx response so callers can branch on the
// status code (the update fallback keys off 405).
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("api error (%d): %s", e.StatusCode, e.Message)
}

func asAPIError(err error) *APIError {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr
	}
	return nil
}

func decodeAPIError(resp *http.Response) error {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes))
	message := errorMessage(body)
	if message == "" {
		message = fmt.Sprintf("Request failed (%d)", resp.StatusCode)
	}
	return &APIError{StatusCode: resp.StatusCode, Message: message}
}

// errorMessage prefers a JSON body's detail or message field, then the raw
// response text. Empty means the caller should fall back to a generic message.
func errorMessage(body []byte) string {
	text := strings.TrimSpace(string(body))
	if text == "" {
		return ""
	}
	var payload struct {
		Detail  string `json:"detail"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &payload); err == nil {
		if strings.TrimSpace(payload.Detail) != "" {
			return strings.TrimSpace(payload.Detail)
		}
		if strings.TrimSpace(payload.Message) != "" {
			return strings.TrimSpace(payload.Message)
		}
	}
	return text
}

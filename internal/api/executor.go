package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"golang.org/x/oauth2"
)

// executor performs one HTTP round trip against the backend
type executor struct {
	baseURL string
	http    *http.Client
	tokens  oauth2.TokenSource
}

type errorBody struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// execute sends body as JSON to baseURL+path and decodes the response into
// out. out may be nil when the response body is not needed.
func (e *executor) execute(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, e.baseURL+path, reader)
	if err != nil {
		return &NetworkError{Message: "network error", Err: err}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if tok, err := e.tokens.Token(); err == nil {
		tok.SetAuthHeader(req)
	}

	resp, err := e.http.Do(req)
	if err != nil {
		return &NetworkError{Message: "network error", Err: err}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return &NetworkError{Message: "network error", Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &APIError{Status: resp.StatusCode, Message: errorMessage(resp.StatusCode, data)}
	}

	if out == nil || len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return &APIError{Status: resp.StatusCode, Message: "invalid response body"}
	}
	return nil
}

func errorMessage(status int, data []byte) string {
	var body errorBody
	if err := json.Unmarshal(data, &body); err == nil {
		if body.Error != "" {
			return body.Error
		}
		if body.Message != "" {
			return body.Message
		}
	}
	return fmt.Sprintf("API Error: %d", status)
}

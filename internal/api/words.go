package api

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strconv"

	"wordadventure/internal/models"
)

// DefaultRandomCount is used when GetRandomWords is asked for no words
const DefaultRandomCount = 10

func filterQuery(filter models.WordFilter) url.Values {
	params := url.Values{}
	if filter.Category != "" {
		params.Set("category", filter.Category)
	}
	if filter.Difficulty != "" {
		params.Set("difficulty", string(filter.Difficulty))
	}
	if filter.UserID != 0 {
		params.Set("user_id", strconv.FormatInt(filter.UserID, 10))
	}
	return params
}

// GetWords lists words. When the backend fails the local words are
// returned unfiltered.
func (c *Client) GetWords(ctx context.Context, filter models.WordFilter) Result[[]models.Word] {
	path := "/words"
	if params := filterQuery(filter); len(params) > 0 {
		path += "?" + params.Encode()
	}

	var words []models.Word
	if err := c.exec.execute(ctx, http.MethodGet, path, nil, &words); err != nil {
		log.Printf("Warning: Failed to fetch words from API, using local data: %v", err)
		return degraded(c.dataset.AllWords(), err)
	}
	return remote(words)
}

// GetRandomWords returns count random words. When the backend fails a
// random selection of the local words is returned.
func (c *Client) GetRandomWords(ctx context.Context, count int, filter models.WordFilter) Result[[]models.Word] {
	if count <= 0 {
		count = DefaultRandomCount
	}
	params := filterQuery(filter)
	params.Set("count", strconv.Itoa(count))

	var words []models.Word
	if err := c.exec.execute(ctx, http.MethodGet, "/words/random?"+params.Encode(), nil, &words); err != nil {
		log.Printf("Warning: Failed to fetch random words from API, using local data: %v", err)
		return degraded(c.dataset.RandomWords(count), err)
	}
	return remote(words)
}

// CreateWord adds a word
func (c *Client) CreateWord(ctx context.Context, word models.Word) (json.RawMessage, error) {
	var resp json.RawMessage
	if err := c.exec.execute(ctx, http.MethodPost, "/words", word, &resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// UpdateWord applies a partial update to a word
func (c *Client) UpdateWord(ctx context.Context, id int64, updates map[string]any) (json.RawMessage, error) {
	var resp json.RawMessage
	if err := c.exec.execute(ctx, http.MethodPut, fmt.Sprintf("/words/%d", id), updates, &resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// DeleteWord removes a word
func (c *Client) DeleteWord(ctx context.Context, id int64) (json.RawMessage, error) {
	var resp json.RawMessage
	if err := c.exec.execute(ctx, http.MethodDelete, fmt.Sprintf("/words/%d", id), nil, &resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// BulkImportWords uploads many words at once
func (c *Client) BulkImportWords(ctx context.Context, words []models.Word) (json.RawMessage, error) {
	body := struct {
		Words []models.Word `json:"words"`
	}{Words: words}

	var resp json.RawMessage
	if err := c.exec.execute(ctx, http.MethodPost, "/words/bulk", body, &resp); err != nil {
		return nil, err
	}
	return resp, nil
}

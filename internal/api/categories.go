package api

import (
	"bytes"
	"context"
	"encoding/json"
	"log"
	"net/http"

	"wordadventure/internal/models"
)

// decodeList accepts a bare JSON array or an object holding the array
// under key. An object without key decodes to an empty list.
func decodeList[T any](data json.RawMessage, key string) ([]T, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return []T{}, nil
	}

	if data[0] == '[' {
		var list []T
		if err := json.Unmarshal(data, &list); err != nil {
			return nil, &APIError{Status: http.StatusOK, Message: "invalid response body"}
		}
		return list, nil
	}

	var wrapped map[string]json.RawMessage
	if err := json.Unmarshal(data, &wrapped); err != nil {
		return nil, &APIError{Status: http.StatusOK, Message: "invalid response body"}
	}
	inner, ok := wrapped[key]
	if !ok {
		return []T{}, nil
	}
	list := []T{}
	if err := json.Unmarshal(inner, &list); err != nil {
		return nil, &APIError{Status: http.StatusOK, Message: "invalid response body"}
	}
	return list, nil
}

// GetCategories lists categories. When the backend fails the local
// categories are returned.
func (c *Client) GetCategories(ctx context.Context) Result[[]models.Category] {
	var raw json.RawMessage
	err := c.exec.execute(ctx, http.MethodGet, "/categories", nil, &raw)
	if err == nil {
		var categories []models.Category
		if categories, err = decodeList[models.Category](raw, "categories"); err == nil {
			return remote(categories)
		}
	}

	log.Printf("Warning: Failed to fetch categories from API, using local data: %v", err)
	return degraded(c.dataset.AllCategories(), err)
}

// GetDifficulties lists difficulty bands, falling back to easy, medium
// and hard
func (c *Client) GetDifficulties(ctx context.Context) Result[[]models.Difficulty] {
	var raw json.RawMessage
	err := c.exec.execute(ctx, http.MethodGet, "/difficulties", nil, &raw)
	if err == nil {
		var difficulties []models.Difficulty
		if difficulties, err = decodeList[models.Difficulty](raw, "difficulties"); err == nil {
			return remote(difficulties)
		}
	}

	log.Printf("Warning: Failed to fetch difficulties from API, using local data: %v", err)
	return degraded(c.dataset.AllDifficulties(), err)
}

// CreateCategory adds a category
func (c *Client) CreateCategory(ctx context.Context, category models.Category) (json.RawMessage, error) {
	var resp json.RawMessage
	if err := c.exec.execute(ctx, http.MethodPost, "/categories", category, &resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// InitCategories asks the backend to seed its default categories
func (c *Client) InitCategories(ctx context.Context) (json.RawMessage, error) {
	var resp json.RawMessage
	if err := c.exec.execute(ctx, http.MethodPost, "/init-categories", nil, &resp); err != nil {
		return nil, err
	}
	return resp, nil
}

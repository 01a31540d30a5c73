package client

import (
	"context"
	"fmt"
	"net/http"

	"github.com/killallgit/catalog-api/internal/models"
)

// CreateTimestampRequest bookmarks a moment on a video's timeline. When Time
// is nil the server anchors the bookmark at CurrentPosition.
type CreateTimestampRequest struct {
	Time            *float64 `json:"time,omitempty"`
	CurrentPosition float64  `json:"currentPosition,omitempty"`
	Label           string   `json:"label"`
	Description     string   `json:"description,omitempty"`
	Category        string   `json:"category,omitempty"`
	Color           string   `json:"color,omitempty"`
}

// UpdateTimestampRequest edits a bookmark. Nil fields are left unchanged.
type UpdateTimestampRequest struct {
	Time        *float64 `json:"time,omitempty"`
	Label       *string  `json:"label,omitempty"`
	Description *string  `json:"description,omitempty"`
	Category    *string  `json:"category,omitempty"`
	Color       *string  `json:"color,omitempty"`
}

// ListTimestamps fetches a video's bookmarks, ordered by time ascending
func (c *Client) ListTimestamps(ctx context.Context, videoID uint) ([]models.Timestamp, error) {
	var timestamps []models.Timestamp
	path := fmt.Sprintf("/api/v1/videos/%d/timestamps", videoID)
	if err := c.do(ctx, http.MethodGet, path, nil, nil, &timestamps); err != nil {
		return nil, err
	}
	return timestamps, nil
}

// CreateTimestamp bookmarks a moment on a video's timeline
func (c *Client) CreateTimestamp(ctx context.Context, videoID uint, req CreateTimestampRequest) (*models.Timestamp, error) {
	var timestamp models.Timestamp
	path := fmt.Sprintf("/api/v1/videos/%d/timestamps", videoID)
	if err := c.do(ctx, http.MethodPost, path, nil, req, &timestamp); err != nil {
		return nil, err
	}
	return &timestamp, nil
}

// UpdateTimestamp edits a bookmark
func (c *Client) UpdateTimestamp(ctx context.Context, id uint, req UpdateTimestampRequest) (*models.Timestamp, error) {
	var timestamp models.Timestamp
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/api/v1/timestamps/%d", id), nil, req, &timestamp); err != nil {
		return nil, err
	}
	return &timestamp, nil
}

// DeleteTimestamp removes a bookmark. Callers should drop it from their view
// only after this resolves without error.
func (c *Client) DeleteTimestamp(ctx context.Context, id uint) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/v1/timestamps/%d", id), nil, nil, nil)
}

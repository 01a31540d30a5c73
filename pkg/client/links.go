package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/killallgit/catalog-api/internal/models"
	"github.com/killallgit/catalog-api/internal/services/links"
)

// CreateLinkRequest creates a shareable link. A present EndTime makes the
// link a highlight range and must exceed StartTime.
type CreateLinkRequest struct {
	Title       string   `json:"title"`
	Description string   `json:"description,omitempty"`
	StartTime   float64  `json:"startTime"`
	EndTime     *float64 `json:"endTime,omitempty"`
	Tags        []string `json:"tags,omitempty"`
	IsPublic    *bool    `json:"isPublic,omitempty"`
}

// UpdateLinkRequest edits a link. Nil fields are left unchanged;
// ClearEndTime turns a highlight range back into a point link.
type UpdateLinkRequest struct {
	Title        *string  `json:"title,omitempty"`
	Description  *string  `json:"description,omitempty"`
	StartTime    *float64 `json:"startTime,omitempty"`
	EndTime      *float64 `json:"endTime,omitempty"`
	ClearEndTime bool     `json:"clearEndTime,omitempty"`
	Tags         []string `json:"tags,omitempty"`
	IsPublic     *bool    `json:"isPublic,omitempty"`
}

// SharedLink is a resolved share token: the link plus its video
type SharedLink struct {
	Link  models.TimestampLink `json:"link"`
	Video models.Video         `json:"video"`
}

// ListLinks fetches a video's shareable links, ordered by start time
func (c *Client) ListLinks(ctx context.Context, videoID uint) ([]models.TimestampLink, error) {
	var list []models.TimestampLink
	path := fmt.Sprintf("/api/v1/videos/%d/links", videoID)
	if err := c.do(ctx, http.MethodGet, path, nil, nil, &list); err != nil {
		return nil, err
	}
	return list, nil
}

// CreateLink creates a shareable link on a video. An end time at or before
// the start time is rejected locally, before any request is made.
func (c *Client) CreateLink(ctx context.Context, videoID uint, req CreateLinkRequest) (*models.TimestampLink, error) {
	if req.EndTime != nil && *req.EndTime <= req.StartTime {
		return nil, fmt.Errorf("end time must be after start time: %w", ErrValidation)
	}

	var link models.TimestampLink
	path := fmt.Sprintf("/api/v1/videos/%d/links", videoID)
	if err := c.do(ctx, http.MethodPost, path, nil, req, &link); err != nil {
		return nil, err
	}
	return &link, nil
}

// GetLink fetches one link by ID
func (c *Client) GetLink(ctx context.Context, id uint) (*models.TimestampLink, error) {
	var link models.TimestampLink
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/v1/links/%d", id), nil, nil, &link); err != nil {
		return nil, err
	}
	return &link, nil
}

// GetShareAssets fetches the share URL and embed code for a link
func (c *Client) GetShareAssets(ctx context.Context, id uint) (*links.ShareAssets, error) {
	var assets links.ShareAssets
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/v1/links/%d/share", id), nil, nil, &assets); err != nil {
		return nil, err
	}
	return &assets, nil
}

// ResolveShared resolves a share token to its link and video. Private and
// unknown tokens both surface ErrNotFound.
func (c *Client) ResolveShared(ctx context.Context, token string) (*SharedLink, error) {
	var shared SharedLink
	path := "/api/v1/links/shared/" + url.PathEscape(token)
	if err := c.do(ctx, http.MethodGet, path, nil, nil, &shared); err != nil {
		return nil, err
	}
	return &shared, nil
}

// UpdateLink edits a link
func (c *Client) UpdateLink(ctx context.Context, id uint, req UpdateLinkRequest) (*models.TimestampLink, error) {
	var link models.TimestampLink
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/api/v1/links/%d", id), nil, req, &link); err != nil {
		return nil, err
	}
	return &link, nil
}

// DeleteLink removes a link; its share token stops resolving
func (c *Client) DeleteLink(ctx context.Context, id uint) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/v1/links/%d", id), nil, nil, nil)
}

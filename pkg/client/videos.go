package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/killallgit/catalog-api/internal/models"
	"github.com/killallgit/catalog-api/internal/services/videos"
	"github.com/killallgit/catalog-api/internal/services/youtube"
)

// CreateVideoRequest registers a video by URL. Any supported YouTube URL
// form is accepted; the server stores the canonical watch URL.
type CreateVideoRequest struct {
	YouTubeURL string                `json:"youtubeUrl"`
	Metadata   *models.VideoMetadata `json:"metadata,omitempty"`
	Tags       []string              `json:"tags,omitempty"`
}

// UpdateVideoRequest edits the mutable fields of a video. An absent metadata
// object or tags array leaves that part unchanged.
type UpdateVideoRequest struct {
	Metadata *models.VideoMetadata `json:"metadata,omitempty"`
	Tags     []string              `json:"tags,omitempty"`
}

// ListOptions filter the catalog listing. Zero values are omitted from the
// query entirely, never sent as empty strings.
type ListOptions struct {
	Page      int
	Limit     int
	Search    string
	TeamName  string
	EventName string
	Year      int
	Tags      []string
}

func (o ListOptions) query() url.Values {
	query := url.Values{}
	if o.Page > 0 {
		query.Set("page", strconv.Itoa(o.Page))
	}
	if o.Limit > 0 {
		query.Set("limit", strconv.Itoa(o.Limit))
	}
	if o.Search != "" {
		query.Set("search", o.Search)
	}
	if o.TeamName != "" {
		query.Set("teamName", o.TeamName)
	}
	if o.EventName != "" {
		query.Set("eventName", o.EventName)
	}
	if o.Year > 0 {
		query.Set("year", strconv.Itoa(o.Year))
	}
	if len(o.Tags) > 0 {
		query.Set("tags", strings.Join(o.Tags, ","))
	}
	return query
}

// PreviewVideo fetches source metadata for a URL without registering it
func (c *Client) PreviewVideo(ctx context.Context, rawURL string) (*youtube.VideoInfo, error) {
	query := url.Values{}
	query.Set("url", rawURL)

	var info youtube.VideoInfo
	if err := c.do(ctx, http.MethodGet, "/api/v1/videos/youtube-info", query, nil, &info); err != nil {
		return nil, err
	}
	return &info, nil
}

// CreateVideo registers a video in the catalog
func (c *Client) CreateVideo(ctx context.Context, req CreateVideoRequest) (*models.Video, error) {
	var video models.Video
	if err := c.do(ctx, http.MethodPost, "/api/v1/videos", nil, req, &video); err != nil {
		return nil, err
	}
	return &video, nil
}

// ListVideos fetches one page of the catalog. When a newer ListVideos call
// is issued while this one is in flight, the older response is discarded
// and ErrStaleResponse is returned: only the latest request's result is
// ever applied.
func (c *Client) ListVideos(ctx context.Context, opts ListOptions) (*videos.ListResult, error) {
	generation := c.listGen.Add(1)

	var result videos.ListResult
	if err := c.do(ctx, http.MethodGet, "/api/v1/videos", opts.query(), nil, &result); err != nil {
		return nil, err
	}

	if c.listGen.Load() != generation {
		return nil, ErrStaleResponse
	}
	return &result, nil
}

// GetVideo fetches one video by ID
func (c *Client) GetVideo(ctx context.Context, id uint) (*models.Video, error) {
	var video models.Video
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/v1/videos/%d", id), nil, nil, &video); err != nil {
		return nil, err
	}
	return &video, nil
}

// UpdateVideo edits a video's cataloging fields
func (c *Client) UpdateVideo(ctx context.Context, id uint, req UpdateVideoRequest) (*models.Video, error) {
	var video models.Video
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/api/v1/videos/%d", id), nil, req, &video); err != nil {
		return nil, err
	}
	return &video, nil
}

// DeleteVideo removes a video and its annotations. The video should be
// dropped from the caller's view only after this resolves without error.
func (c *Client) DeleteVideo(ctx context.Context, id uint) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/v1/videos/%d", id), nil, nil, nil)
}

// UpdatePlayback records the last playback position and played flag
func (c *Client) UpdatePlayback(ctx context.Context, id uint, position int, played bool) error {
	body := map[string]interface{}{"position": position, "played": played}
	return c.do(ctx, http.MethodPut, fmt.Sprintf("/api/v1/videos/%d/playback", id), nil, body, nil)
}

// GetStats fetches the aggregate catalog statistics
func (c *Client) GetStats(ctx context.Context) (*videos.Stats, error) {
	var stats videos.Stats
	if err := c.do(ctx, http.MethodGet, "/api/v1/videos/stats/summary", nil, nil, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

package youtube

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"time"

	"google.golang.org/api/option"
	yt "google.golang.org/api/youtube/v3"

	ytpkg "github.com/killallgit/catalog-api/pkg/youtube"
)

// DataAPIClient fetches video metadata through the YouTube Data API v3. It
// requires an API key but, unlike oEmbed, returns upload date and
// description.
type DataAPIClient struct {
	service *yt.Service
}

// NewDataAPIClient creates a Data API metadata client
func NewDataAPIClient(ctx context.Context, apiKey string) (*DataAPIClient, error) {
	service, err := yt.NewService(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("creating youtube service: %w", err)
	}
	return &DataAPIClient{service: service}, nil
}

// FetchVideoInfo fetches snippet and duration metadata for a video ID
func (c *DataAPIClient) FetchVideoInfo(ctx context.Context, videoID string) (*VideoInfo, error) {
	call := c.service.Videos.List([]string{"snippet", "contentDetails"}).Id(videoID).Context(ctx)
	resp, err := call.Do()
	if err != nil {
		return nil, fmt.Errorf("youtube data api lookup for %s: %w", videoID, err)
	}
	if len(resp.Items) == 0 {
		return nil, ErrVideoNotFound
	}

	item := resp.Items[0]
	snippet := item.Snippet
	info := &VideoInfo{
		VideoID:     videoID,
		URL:         ytpkg.CanonicalURL(videoID),
		Title:       snippet.Title,
		ChannelName: snippet.ChannelTitle,
		Description: snippet.Description,
	}

	if published, err := time.Parse(time.RFC3339, snippet.PublishedAt); err == nil {
		info.UploadDate = published
	}

	if item.ContentDetails != nil {
		info.Duration = parseISO8601Duration(item.ContentDetails.Duration)
	}

	info.ThumbnailURL = ytpkg.ThumbnailURL(videoID)
	if snippet.Thumbnails != nil && snippet.Thumbnails.High != nil {
		info.ThumbnailURL = snippet.Thumbnails.High.Url
	}

	return info, nil
}

// iso8601Duration matches the PT#H#M#S durations the Data API returns
var iso8601Duration = regexp.MustCompile(`^PT(?:(\d+)H)?(?:(\d+)M)?(?:(\d+)S)?$`)

// parseISO8601Duration converts an ISO 8601 duration to whole seconds,
// returning 0 for anything it cannot parse (live streams report P0D)
func parseISO8601Duration(d string) int {
	m := iso8601Duration.FindStringSubmatch(d)
	if m == nil {
		return 0
	}
	hours, _ := strconv.Atoi(m[1])
	minutes, _ := strconv.Atoi(m[2])
	seconds, _ := strconv.Atoi(m[3])
	return hours*3600 + minutes*60 + seconds
}

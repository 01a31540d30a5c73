package youtube

import (
	"context"
	"time"
)

// VideoInfo is the source-video metadata shown on the registration preview
// step and copied onto the Video record at creation.
type VideoInfo struct {
	VideoID      string    `json:"videoId"`
	URL          string    `json:"url"` // Canonical watch URL
	Title        string    `json:"title"`
	ChannelName  string    `json:"channelName"`
	UploadDate   time.Time `json:"uploadDate,omitempty"`
	Description  string    `json:"description,omitempty"`
	ThumbnailURL string    `json:"thumbnailUrl,omitempty"`
	Duration     int       `json:"duration,omitempty"` // Seconds; 0 when the source omits it
}

// MetadataFetcher fetches metadata for a YouTube video ID
type MetadataFetcher interface {
	FetchVideoInfo(ctx context.Context, videoID string) (*VideoInfo, error)
}

// oembedResponse mirrors the fields we use from YouTube's oEmbed endpoint
type oembedResponse struct {
	Title        string `json:"title"`
	AuthorName   string `json:"author_name"`
	ThumbnailURL string `json:"thumbnail_url"`
}

package videos

import "github.com/killallgit/catalog-api/internal/models"

// CreateVideoRequest registers a video by URL. Any supported YouTube URL
// form is accepted; the canonical watch URL is what gets stored.
type CreateVideoRequest struct {
	YouTubeURL string                `json:"youtubeUrl" binding:"required"`
	Metadata   *models.VideoMetadata `json:"metadata"`
	Tags       []string              `json:"tags"`
}

// UpdateVideoRequest edits the mutable fields. An absent metadata object or
// tags array leaves that part unchanged; an empty tags array clears them.
type UpdateVideoRequest struct {
	Metadata *models.VideoMetadata `json:"metadata"`
	Tags     []string              `json:"tags"`
}

// PlaybackUpdateRequest represents a playback state update request
type PlaybackUpdateRequest struct {
	Position int  `json:"position"` // Playback position in seconds
	Played   bool `json:"played"`   // Whether the video has been watched
}

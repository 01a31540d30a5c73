package videos

import (
	"context"

	"github.com/killallgit/catalog-api/internal/models"
	"github.com/killallgit/catalog-api/internal/services/youtube"
)

// ListParams are the list filters. Zero values mean "no filter"; the API
// layer never turns an absent query param into an empty-string filter.
type ListParams struct {
	Page      int
	Limit     int
	Search    string // Matches title, channel and performance name
	TeamName  string
	EventName string
	Year      int
	Tags      []string // Video must carry every listed tag
}

// ListResult is one page of videos plus pagination bookkeeping
type ListResult struct {
	Videos []models.Video `json:"videos"`
	Page   int            `json:"page"`
	Limit  int            `json:"limit"`
	Total  int64          `json:"total"`
	Pages  int            `json:"pages"`
}

// CountBucket is one aggregate row in the stats summary
type CountBucket struct {
	Key   string `json:"key"`
	Count int64  `json:"count"`
}

// Stats is the aggregate summary for the catalog
type Stats struct {
	TotalVideos int64         `json:"totalVideos"`
	ByYear      []CountBucket `json:"byYear"`
	ByTeam      []CountBucket `json:"byTeam"`
	ByEvent     []CountBucket `json:"byEvent"`
}

// UpdateParams carries the mutable fields of a video. Nil means "leave
// unchanged"; identity fields are not updatable at all.
type UpdateParams struct {
	Metadata *models.VideoMetadata
	Tags     []string // nil leaves tags unchanged, empty slice clears them
}

// Repository defines the interface for video data access
type Repository interface {
	CreateVideo(ctx context.Context, video *models.Video) error
	GetVideoByID(ctx context.Context, id uint) (*models.Video, error)
	GetVideoByYouTubeID(ctx context.Context, youtubeID string) (*models.Video, error)
	ListVideos(ctx context.Context, params ListParams) ([]models.Video, int64, error)
	UpdateVideo(ctx context.Context, video *models.Video) error
	DeleteVideo(ctx context.Context, id uint) error
	UpdatePlaybackState(ctx context.Context, id uint, position int, played bool) error
	GetStats(ctx context.Context) (*Stats, error)
}

// Service defines the interface for video business logic
type Service interface {
	// PreviewVideo resolves a pasted URL to source metadata without persisting
	PreviewVideo(ctx context.Context, rawURL string) (*youtube.VideoInfo, error)

	// CreateVideo registers a video by URL, storing the canonical form
	CreateVideo(ctx context.Context, rawURL string, metadata *models.VideoMetadata, tags []string) (*models.Video, error)

	ListVideos(ctx context.Context, params ListParams) (*ListResult, error)
	GetVideo(ctx context.Context, id uint) (*models.Video, error)
	UpdateVideo(ctx context.Context, id uint, params UpdateParams) (*models.Video, error)
	DeleteVideo(ctx context.Context, id uint) error
	UpdatePlaybackState(ctx context.Context, id uint, position int, played bool) error
	GetStats(ctx context.Context) (*Stats, error)
}

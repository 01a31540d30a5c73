package videos

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/killallgit/catalog-api/internal/models"
	"github.com/killallgit/catalog-api/internal/services/cache"
	"github.com/killallgit/catalog-api/internal/services/youtube"
	ytpkg "github.com/killallgit/catalog-api/pkg/youtube"
)

const (
	defaultLimit = 20
	maxLimit     = 100

	statsCacheKey = "videos:stats:summary"
	statsCacheTTL = 5 * time.Minute
)

// ServiceImpl implements the Service interface
type ServiceImpl struct {
	repository Repository
	fetcher    youtube.MetadataFetcher
	cache      cache.Cache
}

// Option configures the service
type Option func(*ServiceImpl)

// WithCache enables stats caching through the given cache
func WithCache(c cache.Cache) Option {
	return func(s *ServiceImpl) {
		s.cache = c
	}
}

// NewService creates a new video service
func NewService(repository Repository, fetcher youtube.MetadataFetcher, opts ...Option) Service {
	s := &ServiceImpl{
		repository: repository,
		fetcher:    fetcher,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// PreviewVideo resolves a pasted URL to source metadata without persisting
func (s *ServiceImpl) PreviewVideo(ctx context.Context, rawURL string) (*youtube.VideoInfo, error) {
	_, videoID, err := ytpkg.Canonicalize(rawURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrValidation, err)
	}
	return s.fetcher.FetchVideoInfo(ctx, videoID)
}

// CreateVideo registers a video by URL. The URL is canonicalized first and
// the canonical form is what gets stored.
func (s *ServiceImpl) CreateVideo(ctx context.Context, rawURL string, metadata *models.VideoMetadata, tags []string) (*models.Video, error) {
	canonicalURL, videoID, err := ytpkg.Canonicalize(rawURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrValidation, err)
	}

	if _, err := s.repository.GetVideoByYouTubeID(ctx, videoID); err == nil {
		return nil, ErrAlreadyExists
	} else if !errors.Is(err, ErrNotFound) {
		return nil, err
	}

	normalizedTags, err := models.NormalizeTags(tags)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrValidation, err)
	}

	info, err := s.fetcher.FetchVideoInfo(ctx, videoID)
	if err != nil {
		if errors.Is(err, youtube.ErrVideoNotFound) {
			return nil, fmt.Errorf("%w: source video not found", ErrValidation)
		}
		return nil, fmt.Errorf("fetching source metadata: %w", err)
	}

	video := &models.Video{
		YouTubeID:    videoID,
		URL:          canonicalURL,
		Title:        info.Title,
		ChannelName:  info.ChannelName,
		UploadDate:   info.UploadDate,
		Description:  info.Description,
		ThumbnailURL: info.ThumbnailURL,
		Duration:     info.Duration,
		Tags:         normalizedTags,
	}
	if metadata != nil {
		video.Metadata = *metadata
	}

	if err := s.repository.CreateVideo(ctx, video); err != nil {
		return nil, err
	}
	s.invalidateStats(ctx)
	return video, nil
}

// ListVideos returns one page of videos matching the filters
func (s *ServiceImpl) ListVideos(ctx context.Context, params ListParams) (*ListResult, error) {
	if params.Page < 1 {
		params.Page = 1
	}
	if params.Limit < 1 {
		params.Limit = defaultLimit
	}
	if params.Limit > maxLimit {
		params.Limit = maxLimit
	}

	videos, total, err := s.repository.ListVideos(ctx, params)
	if err != nil {
		return nil, err
	}

	pages := int((total + int64(params.Limit) - 1) / int64(params.Limit))
	return &ListResult{
		Videos: videos,
		Page:   params.Page,
		Limit:  params.Limit,
		Total:  total,
		Pages:  pages,
	}, nil
}

// GetVideo retrieves a single video by ID
func (s *ServiceImpl) GetVideo(ctx context.Context, id uint) (*models.Video, error) {
	return s.repository.GetVideoByID(ctx, id)
}

// UpdateVideo applies metadata/tag changes. Identity fields are untouched.
func (s *ServiceImpl) UpdateVideo(ctx context.Context, id uint, params UpdateParams) (*models.Video, error) {
	video, err := s.repository.GetVideoByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if params.Metadata != nil {
		video.Metadata = *params.Metadata
	}
	if params.Tags != nil {
		normalized, err := models.NormalizeTags(params.Tags)
		if err != nil {
			return nil, fmt.Errorf("%w: %s", ErrValidation, err)
		}
		if normalized == nil {
			normalized = []string{}
		}
		video.Tags = normalized
	}

	if err := s.repository.UpdateVideo(ctx, video); err != nil {
		return nil, err
	}
	s.invalidateStats(ctx)
	return video, nil
}

// DeleteVideo removes a video and its annotations
func (s *ServiceImpl) DeleteVideo(ctx context.Context, id uint) error {
	if err := s.repository.DeleteVideo(ctx, id); err != nil {
		return err
	}
	s.invalidateStats(ctx)
	return nil
}

// UpdatePlaybackState stores the last playback position and played flag
func (s *ServiceImpl) UpdatePlaybackState(ctx context.Context, id uint, position int, played bool) error {
	if position < 0 {
		return fmt.Errorf("%w: position cannot be negative", ErrValidation)
	}
	return s.repository.UpdatePlaybackState(ctx, id, position, played)
}

// GetStats returns the aggregate summary, served from cache when possible
func (s *ServiceImpl) GetStats(ctx context.Context) (*Stats, error) {
	if s.cache != nil {
		if data, ok := s.cache.Get(ctx, statsCacheKey); ok {
			var stats Stats
			if err := json.Unmarshal(data, &stats); err == nil {
				return &stats, nil
			}
			// Corrupt cache entries are dropped, not fatal
			_ = s.cache.Delete(ctx, statsCacheKey)
		}
	}

	stats, err := s.repository.GetStats(ctx)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if data, err := json.Marshal(stats); err == nil {
			if err := s.cache.Set(ctx, statsCacheKey, data, statsCacheTTL); err != nil {
				log.Printf("[WARN] Failed to cache stats summary: %v", err)
			}
		}
	}
	return stats, nil
}

func (s *ServiceImpl) invalidateStats(ctx context.Context) {
	if s.cache != nil {
		_ = s.cache.Delete(ctx, statsCacheKey)
	}
}

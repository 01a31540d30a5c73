package timestamps

import (
	"context"
	"fmt"

	"github.com/killallgit/catalog-api/internal/models"
)

// ServiceImpl implements the Service interface
type ServiceImpl struct {
	store         Store
	videoDuration func(ctx context.Context, videoID uint) (int, error)
}

// Option configures the service
type Option func(*ServiceImpl)

// WithVideoDuration supplies a lookup for the owning video's duration so
// that update-path times clamp the same way creation does
func WithVideoDuration(lookup func(ctx context.Context, videoID uint) (int, error)) Option {
	return func(s *ServiceImpl) {
		s.videoDuration = lookup
	}
}

// NewService creates a timestamp service over the given persistence strategy
func NewService(store Store, opts ...Option) Service {
	service := &ServiceImpl{store: store}
	for _, opt := range opts {
		opt(service)
	}
	return service
}

// ListByVideo returns a video's timestamps ordered by time ascending
func (s *ServiceImpl) ListByVideo(ctx context.Context, videoID uint) ([]models.Timestamp, error) {
	return s.store.ListByVideoID(ctx, videoID)
}

// CreateTimestamp validates and stores a new bookmark. A nil time defaults
// to the caller's current playback position; times are clamped to the video
// duration when the duration is known.
func (s *ServiceImpl) CreateTimestamp(ctx context.Context, video *models.Video, params CreateParams) (*models.Timestamp, error) {
	if video == nil {
		return nil, fmt.Errorf("%w: video is required", ErrValidation)
	}
	if params.Label == "" {
		return nil, fmt.Errorf("%w: label is required", ErrValidation)
	}

	at := params.CurrentPosition
	if params.Time != nil {
		at = *params.Time
	}
	at, err := clampTime(at, video.Duration)
	if err != nil {
		return nil, err
	}

	timestamp := &models.Timestamp{
		VideoID:     video.ID,
		Time:        at,
		Label:       params.Label,
		Description: params.Description,
		Category:    params.Category,
		Color:       params.Color,
	}
	if err := s.store.CreateTimestamp(ctx, timestamp); err != nil {
		return nil, err
	}
	return timestamp, nil
}

// UpdateTimestamp applies partial changes to an existing bookmark
func (s *ServiceImpl) UpdateTimestamp(ctx context.Context, id uint, params UpdateParams) (*models.Timestamp, error) {
	timestamp, err := s.store.GetTimestampByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if params.Label != nil {
		if *params.Label == "" {
			return nil, fmt.Errorf("%w: label is required", ErrValidation)
		}
		timestamp.Label = *params.Label
	}
	if params.Time != nil {
		// A failed lookup leaves the duration unknown; the clamp only
		// applies when the duration is known, same as creation
		duration := 0
		if s.videoDuration != nil {
			if d, err := s.videoDuration(ctx, timestamp.VideoID); err == nil {
				duration = d
			}
		}
		at, err := clampTime(*params.Time, duration)
		if err != nil {
			return nil, err
		}
		timestamp.Time = at
	}
	if params.Description != nil {
		timestamp.Description = *params.Description
	}
	if params.Category != nil {
		timestamp.Category = *params.Category
	}
	if params.Color != nil {
		timestamp.Color = *params.Color
	}

	if err := s.store.UpdateTimestamp(ctx, timestamp); err != nil {
		return nil, err
	}
	return timestamp, nil
}

// DeleteTimestamp removes a bookmark by its ID
func (s *ServiceImpl) DeleteTimestamp(ctx context.Context, id uint) error {
	return s.store.DeleteTimestamp(ctx, id)
}

// clampTime rejects negative offsets and clamps to the duration when known
func clampTime(at float64, duration int) (float64, error) {
	if at < 0 {
		return 0, fmt.Errorf("%w: time cannot be negative", ErrValidation)
	}
	if duration > 0 && at > float64(duration) {
		return float64(duration), nil
	}
	return at, nil
}

// Package timestamps manages bookmark annotations on a video's timeline.
// The two historical bookmark variants (ephemeral and stored) share one
// service; which one a deployment gets is purely a question of the Store
// implementation wired in (memory or database).
package timestamps

import (
	"context"

	"github.com/killallgit/catalog-api/internal/models"
)

// CreateParams carries the fields for a new timestamp. A nil Time defaults
// the bookmark to the caller's current playback position.
type CreateParams struct {
	Time            *float64
	CurrentPosition float64
	Label           string
	Description     string
	Category        string
	Color           string
}

// UpdateParams carries the mutable fields of a timestamp. Nil pointers mean
// "leave unchanged".
type UpdateParams struct {
	Time        *float64
	Label       *string
	Description *string
	Category    *string
	Color       *string
}

// Store defines the persistence strategy for timestamps. Implementations:
// the GORM repository (durable) and MemoryStore (scoped to process lifetime).
type Store interface {
	CreateTimestamp(ctx context.Context, timestamp *models.Timestamp) error
	GetTimestampByID(ctx context.Context, id uint) (*models.Timestamp, error)
	ListByVideoID(ctx context.Context, videoID uint) ([]models.Timestamp, error)
	UpdateTimestamp(ctx context.Context, timestamp *models.Timestamp) error
	DeleteTimestamp(ctx context.Context, id uint) error
}

// Service defines the interface for timestamp business logic
type Service interface {
	// ListByVideo returns a video's timestamps ordered by time ascending
	ListByVideo(ctx context.Context, videoID uint) ([]models.Timestamp, error)

	CreateTimestamp(ctx context.Context, video *models.Video, params CreateParams) (*models.Timestamp, error)
	UpdateTimestamp(ctx context.Context, id uint, params UpdateParams) (*models.Timestamp, error)
	DeleteTimestamp(ctx context.Context, id uint) error
}

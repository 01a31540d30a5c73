// Package links manages shareable timestamp links: point or range references
// into a video that resolve through a share token.
package links

import (
	"context"

	"github.com/killallgit/catalog-api/internal/models"
)

// CreateParams carries the fields for a new link. A non-nil EndTime makes
// the link a highlight range.
type CreateParams struct {
	Title       string
	Description string
	StartTime   float64
	EndTime     *float64
	Tags        []string
	IsPublic    *bool // nil defaults to public
}

// UpdateParams carries the mutable fields of a link. Nil pointers mean
// "leave unchanged"; ClearEndTime turns a highlight back into a point link.
type UpdateParams struct {
	Title        *string
	Description  *string
	StartTime    *float64
	EndTime      *float64
	ClearEndTime bool
	Tags         []string
	IsPublic     *bool
}

// Repository defines the interface for link data access
type Repository interface {
	CreateLink(ctx context.Context, link *models.TimestampLink) error
	GetLinkByID(ctx context.Context, id uint) (*models.TimestampLink, error)
	GetLinkByShareToken(ctx context.Context, token string) (*models.TimestampLink, error)
	ListByVideoID(ctx context.Context, videoID uint) ([]models.TimestampLink, error)
	UpdateLink(ctx context.Context, link *models.TimestampLink) error
	DeleteLink(ctx context.Context, id uint) error
	IncrementViewCount(ctx context.Context, id uint) error
}

// Service defines the interface for link business logic
type Service interface {
	// ListByVideo returns a video's links ordered by start time ascending
	ListByVideo(ctx context.Context, videoID uint) ([]models.TimestampLink, error)

	CreateLink(ctx context.Context, video *models.Video, params CreateParams) (*models.TimestampLink, error)
	GetLink(ctx context.Context, id uint) (*models.TimestampLink, error)
	UpdateLink(ctx context.Context, id uint, params UpdateParams) (*models.TimestampLink, error)
	DeleteLink(ctx context.Context, id uint) error

	// ResolveShareToken returns the public link for a token and counts the view
	ResolveShareToken(ctx context.Context, token string) (*models.TimestampLink, error)
}

package links

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/killallgit/catalog-api/internal/models"
)

// RepositoryImpl implements the Repository interface
type RepositoryImpl struct {
	db *gorm.DB
}

// NewRepository creates a new link repository
func NewRepository(db *gorm.DB) Repository {
	return &RepositoryImpl{db: db}
}

// CreateLink creates a new link in the database
func (r *RepositoryImpl) CreateLink(ctx context.Context, link *models.TimestampLink) error {
	if err := r.db.WithContext(ctx).Create(link).Error; err != nil {
		return fmt.Errorf("creating link: %w", err)
	}
	return nil
}

// GetLinkByID retrieves a link by its ID
func (r *RepositoryImpl) GetLinkByID(ctx context.Context, id uint) (*models.TimestampLink, error) {
	var link models.TimestampLink
	if err := r.db.WithContext(ctx).First(&link, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("getting link: %w", err)
	}
	return &link, nil
}

// GetLinkByShareToken retrieves a link by its share token
func (r *RepositoryImpl) GetLinkByShareToken(ctx context.Context, token string) (*models.TimestampLink, error) {
	var link models.TimestampLink
	if err := r.db.WithContext(ctx).Where("share_token = ?", token).First(&link).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("getting link by token: %w", err)
	}
	return &link, nil
}

// ListByVideoID retrieves a video's links ordered by start time ascending
func (r *RepositoryImpl) ListByVideoID(ctx context.Context, videoID uint) ([]models.TimestampLink, error) {
	var links []models.TimestampLink
	if err := r.db.WithContext(ctx).
		Where("video_id = ?", videoID).
		Order("start_time ASC, id ASC").
		Find(&links).Error; err != nil {
		return nil, fmt.Errorf("listing links for video: %w", err)
	}
	return links, nil
}

// UpdateLink updates an existing link
func (r *RepositoryImpl) UpdateLink(ctx context.Context, link *models.TimestampLink) error {
	result := r.db.WithContext(ctx).Save(link)
	if result.Error != nil {
		return fmt.Errorf("updating link: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteLink deletes a link by its ID
func (r *RepositoryImpl) DeleteLink(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.TimestampLink{}, id)
	if result.Error != nil {
		return fmt.Errorf("deleting link: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// IncrementViewCount atomically bumps a link's view counter
func (r *RepositoryImpl) IncrementViewCount(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Model(&models.TimestampLink{}).
		Where("id = ?", id).
		UpdateColumn("view_count", gorm.Expr("view_count + 1"))
	if result.Error != nil {
		return fmt.Errorf("incrementing view count: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

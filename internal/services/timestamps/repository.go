package timestamps

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/killallgit/catalog-api/internal/models"
)

// Repository is the database-backed Store
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new timestamp repository
func NewRepository(db *gorm.DB) Store {
	return &Repository{db: db}
}

// CreateTimestamp creates a new timestamp in the database
func (r *Repository) CreateTimestamp(ctx context.Context, timestamp *models.Timestamp) error {
	if err := r.db.WithContext(ctx).Create(timestamp).Error; err != nil {
		return fmt.Errorf("creating timestamp: %w", err)
	}
	return nil
}

// GetTimestampByID retrieves a timestamp by its ID
func (r *Repository) GetTimestampByID(ctx context.Context, id uint) (*models.Timestamp, error) {
	var timestamp models.Timestamp
	if err := r.db.WithContext(ctx).First(&timestamp, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("getting timestamp: %w", err)
	}
	return &timestamp, nil
}

// ListByVideoID retrieves a video's timestamps ordered by time ascending
func (r *Repository) ListByVideoID(ctx context.Context, videoID uint) ([]models.Timestamp, error) {
	var timestamps []models.Timestamp
	if err := r.db.WithContext(ctx).
		Where("video_id = ?", videoID).
		Order("time ASC, id ASC").
		Find(&timestamps).Error; err != nil {
		return nil, fmt.Errorf("listing timestamps for video: %w", err)
	}
	return timestamps, nil
}

// UpdateTimestamp updates an existing timestamp
func (r *Repository) UpdateTimestamp(ctx context.Context, timestamp *models.Timestamp) error {
	result := r.db.WithContext(ctx).Save(timestamp)
	if result.Error != nil {
		return fmt.Errorf("updating timestamp: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteTimestamp deletes a timestamp by its ID
func (r *Repository) DeleteTimestamp(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.Timestamp{}, id)
	if result.Error != nil {
		return fmt.Errorf("deleting timestamp: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

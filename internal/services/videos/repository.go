package videos

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

// NewRepository creates a new video repository
func NewRepository(db *gorm.DB) Repository {
	return &RepositoryImpl{db: db}
}

// CreateVideo creates a new video in the database
func (r *RepositoryImpl) CreateVideo(ctx context.Context, video *models.Video) error {
	if err := r.db.WithContext(ctx).Create(video).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrAlreadyExists
		}
		return fmt.Errorf("creating video: %w", err)
	}
	return nil
}

// GetVideoByID retrieves a video by its database ID
func (r *RepositoryImpl) GetVideoByID(ctx context.Context, id uint) (*models.Video, error) {
	var video models.Video
	if err := r.db.WithContext(ctx).First(&video, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("getting video: %w", err)
	}
	return &video, nil
}

// GetVideoByYouTubeID retrieves a video by its source video identifier
func (r *RepositoryImpl) GetVideoByYouTubeID(ctx context.Context, youtubeID string) (*models.Video, error) {
	var video models.Video
	if err := r.db.WithContext(ctx).Where("youtube_id = ?", youtubeID).First(&video).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("getting video by youtube id: %w", err)
	}
	return &video, nil
}

// ListVideos returns one page of videos matching the filters, newest first,
// together with the unpaginated total
func (r *RepositoryImpl) ListVideos(ctx context.Context, params ListParams) ([]models.Video, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.Video{})

	if params.Search != "" {
		like := "%" + params.Search + "%"
		query = query.Where(
			"title LIKE ? OR channel_name LIKE ? OR meta_performance_name LIKE ?",
			like, like, like,
		)
	}
	if params.TeamName != "" {
		query = query.Where("meta_team_name = ?", params.TeamName)
	}
	if params.EventName != "" {
		query = query.Where("meta_event_name = ?", params.EventName)
	}
	if params.Year != 0 {
		query = query.Where("meta_year = ?", params.Year)
	}
	// Tags are stored as a JSON array; a quoted-substring match finds videos
	// carrying every requested tag without a join table.
	for _, tag := range params.Tags {
		query = query.Where("tags LIKE ?", fmt.Sprintf(`%%"%s"%%`, tag))
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("counting videos: %w", err)
	}

	var videos []models.Video
	offset := (params.Page - 1) * params.Limit
	if err := query.Order("created_at DESC").Limit(params.Limit).Offset(offset).Find(&videos).Error; err != nil {
		return nil, 0, fmt.Errorf("listing videos: %w", err)
	}

	return videos, total, nil
}

// UpdateVideo persists changes to an existing video
func (r *RepositoryImpl) UpdateVideo(ctx context.Context, video *models.Video) error {
	result := r.db.WithContext(ctx).Save(video)
	if result.Error != nil {
		return fmt.Errorf("updating video: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteVideo deletes a video and its dependent timestamps and links
func (r *RepositoryImpl) DeleteVideo(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Delete(&models.Video{}, id)
		if result.Error != nil {
			return fmt.Errorf("deleting video: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return ErrNotFound
		}
		// SQLite does not always enforce the declared cascades
		if err := tx.Where("video_id = ?", id).Delete(&models.Timestamp{}).Error; err != nil {
			return fmt.Errorf("deleting video timestamps: %w", err)
		}
		if err := tx.Where("video_id = ?", id).Delete(&models.TimestampLink{}).Error; err != nil {
			return fmt.Errorf("deleting video links: %w", err)
		}
		return nil
	})
}

// UpdatePlaybackState stores the last playback position and played flag
func (r *RepositoryImpl) UpdatePlaybackState(ctx context.Context, id uint, position int, played bool) error {
	result := r.db.WithContext(ctx).Model(&models.Video{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{"position": position, "played": played})
	if result.Error != nil {
		return fmt.Errorf("updating playback state: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// GetStats computes the aggregate summary grouped by year, team and event
func (r *RepositoryImpl) GetStats(ctx context.Context) (*Stats, error) {
	stats := &Stats{}

	if err := r.db.WithContext(ctx).Model(&models.Video{}).Count(&stats.TotalVideos).Error; err != nil {
		return nil, fmt.Errorf("counting videos: %w", err)
	}

	groups := []struct {
		column string
		unset  string // Predicate excluding "not set" rows
		dest   *[]CountBucket
	}{
		{"meta_year", "meta_year != 0", &stats.ByYear},
		{"meta_team_name", "meta_team_name != ''", &stats.ByTeam},
		{"meta_event_name", "meta_event_name != ''", &stats.ByEvent},
	}
	for _, g := range groups {
		rows := []CountBucket{}
		err := r.db.WithContext(ctx).Model(&models.Video{}).
			Select(fmt.Sprintf("CAST(%s AS TEXT) AS key, COUNT(*) AS count", g.column)).
			Where(g.unset).
			Group(g.column).
			Order("count DESC").
			Scan(&rows).Error
		if err != nil {
			return nil, fmt.Errorf("aggregating by %s: %w", g.column, err)
		}
		*g.dest = rows
	}

	return stats, nil
}

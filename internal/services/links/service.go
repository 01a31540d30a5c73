package links

import (
	"context"
	"fmt"
	"log"

	"github.com/killallgit/catalog-api/internal/models"
)

// ServiceImpl implements the Service interface
type ServiceImpl struct {
	repository Repository
}

// NewService creates a new link service
func NewService(repository Repository) Service {
	return &ServiceImpl{repository: repository}
}

// ListByVideo returns a video's links ordered by start time ascending
func (s *ServiceImpl) ListByVideo(ctx context.Context, videoID uint) ([]models.TimestampLink, error) {
	return s.repository.ListByVideoID(ctx, videoID)
}

// CreateLink validates and stores a new link. Presence of an end time is
// what makes a link a highlight; the flag is derived, never taken from input.
func (s *ServiceImpl) CreateLink(ctx context.Context, video *models.Video, params CreateParams) (*models.TimestampLink, error) {
	if video == nil {
		return nil, fmt.Errorf("%w: video is required", ErrValidation)
	}
	if params.Title == "" {
		return nil, fmt.Errorf("%w: title is required", ErrValidation)
	}
	if err := validateRange(params.StartTime, params.EndTime); err != nil {
		return nil, err
	}

	tags, err := models.NormalizeTags(params.Tags)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrValidation, err)
	}

	isPublic := true
	if params.IsPublic != nil {
		isPublic = *params.IsPublic
	}

	link := &models.TimestampLink{
		VideoID:     video.ID,
		Title:       params.Title,
		Description: params.Description,
		StartTime:   params.StartTime,
		EndTime:     params.EndTime,
		IsHighlight: params.EndTime != nil,
		Tags:        tags,
		IsPublic:    isPublic,
	}
	if err := s.repository.CreateLink(ctx, link); err != nil {
		return nil, err
	}
	return link, nil
}

// GetLink retrieves a link by its ID
func (s *ServiceImpl) GetLink(ctx context.Context, id uint) (*models.TimestampLink, error) {
	return s.repository.GetLinkByID(ctx, id)
}

// UpdateLink applies partial changes to an existing link
func (s *ServiceImpl) UpdateLink(ctx context.Context, id uint, params UpdateParams) (*models.TimestampLink, error) {
	link, err := s.repository.GetLinkByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if params.Title != nil {
		if *params.Title == "" {
			return nil, fmt.Errorf("%w: title is required", ErrValidation)
		}
		link.Title = *params.Title
	}
	if params.Description != nil {
		link.Description = *params.Description
	}
	if params.StartTime != nil {
		link.StartTime = *params.StartTime
	}
	if params.ClearEndTime {
		link.EndTime = nil
	} else if params.EndTime != nil {
		link.EndTime = params.EndTime
	}
	if err := validateRange(link.StartTime, link.EndTime); err != nil {
		return nil, err
	}
	link.IsHighlight = link.EndTime != nil

	if params.Tags != nil {
		tags, err := models.NormalizeTags(params.Tags)
		if err != nil {
			return nil, fmt.Errorf("%w: %s", ErrValidation, err)
		}
		if tags == nil {
			tags = []string{}
		}
		link.Tags = tags
	}
	if params.IsPublic != nil {
		link.IsPublic = *params.IsPublic
	}

	if err := s.repository.UpdateLink(ctx, link); err != nil {
		return nil, err
	}
	return link, nil
}

// DeleteLink removes a link by its ID
func (s *ServiceImpl) DeleteLink(ctx context.Context, id uint) error {
	return s.repository.DeleteLink(ctx, id)
}

// ResolveShareToken returns the public link for a token and counts the view.
// Private links resolve exactly like unknown tokens so the token space leaks
// nothing.
func (s *ServiceImpl) ResolveShareToken(ctx context.Context, token string) (*models.TimestampLink, error) {
	link, err := s.repository.GetLinkByShareToken(ctx, token)
	if err != nil {
		return nil, err
	}
	if !link.IsPublic {
		return nil, ErrNotFound
	}

	if err := s.repository.IncrementViewCount(ctx, link.ID); err != nil {
		// A failed counter bump should not break the share view
		log.Printf("[WARN] Failed to count view for link %d: %v", link.ID, err)
	} else {
		link.ViewCount++
	}
	return link, nil
}

// validateRange checks the start/end invariants shared by create and update
func validateRange(start float64, end *float64) error {
	if start < 0 {
		return fmt.Errorf("%w: start time cannot be negative", ErrValidation)
	}
	if end != nil && *end <= start {
		return fmt.Errorf("%w: end time must be greater than start time", ErrValidation)
	}
	return nil
}

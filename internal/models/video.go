package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Tag limits enforced at validation time. Tag sets are deduplicated before
// they reach the database, but the schema itself does not forbid duplicates.
const (
	MaxTagsPerEntity = 10
	MaxTagLength     = 30
)

// VideoMetadata holds the user-editable cataloging fields. All fields are
// optional; Year of 0 means "not set".
type VideoMetadata struct {
	TeamName        string `json:"teamName,omitempty" gorm:"index"`
	PerformanceName string `json:"performanceName,omitempty"`
	EventName       string `json:"eventName,omitempty" gorm:"index"`
	Year            int    `json:"year,omitempty" gorm:"index"`
	Location        string `json:"location,omitempty"`
}

// Video represents a cataloged YouTube video. The identity fields
// (YouTubeID, URL, Title, ChannelName, UploadDate, ThumbnailURL) are fixed at
// registration; only Metadata, Tags and playback state may change afterwards.
type Video struct {
	gorm.Model
	UUID string `json:"uuid" gorm:"uniqueIndex;not null"`

	// Source video identity, never edited after creation
	YouTubeID    string    `json:"youtubeId" gorm:"column:youtube_id;uniqueIndex;not null;size:16"`
	URL          string    `json:"url" gorm:"not null;size:500"` // Canonical watch URL
	Title        string    `json:"title" gorm:"not null"`
	ChannelName  string    `json:"channelName"`
	UploadDate   time.Time `json:"uploadDate"`
	Description  string    `json:"description" gorm:"type:text"`
	ThumbnailURL string    `json:"thumbnailUrl" gorm:"size:500"`
	Duration     int       `json:"duration" gorm:"default:0"` // Seconds; 0 when unknown

	// User-editable cataloging fields
	Metadata VideoMetadata `json:"metadata" gorm:"embedded;embeddedPrefix:meta_"`
	Tags     []string      `json:"tags" gorm:"serializer:json"`

	// Playback state
	Position int  `json:"position" gorm:"default:0"` // Last playback position in seconds
	Played   bool `json:"played" gorm:"default:false"`

	// Relationships
	Timestamps []Timestamp     `json:"timestamps,omitempty" gorm:"foreignKey:VideoID;constraint:OnDelete:CASCADE"`
	Links      []TimestampLink `json:"links,omitempty" gorm:"foreignKey:VideoID;constraint:OnDelete:CASCADE"`
}

// BeforeCreate generates a UUID before creating a new video
func (v *Video) BeforeCreate(tx *gorm.DB) error {
	if v.UUID == "" {
		v.UUID = uuid.New().String()
	}
	return nil
}

// TableName returns the table name for the Video model
func (Video) TableName() string {
	return "videos"
}

// HasMetadata reports whether any cataloging field has been set
func (m VideoMetadata) HasMetadata() bool {
	return m.TeamName != "" || m.PerformanceName != "" || m.EventName != "" ||
		m.Year != 0 || m.Location != ""
}

package models

import (
	"crypto/rand"
	"encoding/base64"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// shareTokenBytes gives 12 URL-safe base64 characters, enough to make
// guessing a token impractical while keeping share URLs short.
const shareTokenBytes = 9

// TimestampLink represents a shareable reference to a point or range in a
// video. EndTime is present only for highlight ranges and must exceed
// StartTime.
type TimestampLink struct {
	gorm.Model
	UUID    string `json:"uuid" gorm:"uniqueIndex"`
	VideoID uint   `json:"videoId" gorm:"not null;index"`

	Title       string   `json:"title" gorm:"not null"`
	Description string   `json:"description,omitempty"`
	StartTime   float64  `json:"startTime" gorm:"not null"`
	EndTime     *float64 `json:"endTime,omitempty"` // NULL unless IsHighlight
	IsHighlight bool     `json:"isHighlight" gorm:"default:false"`
	Tags        []string `json:"tags" gorm:"serializer:json"`

	IsPublic   bool   `json:"isPublic" gorm:"default:true;index"`
	ViewCount  int64  `json:"viewCount" gorm:"default:0"`
	ShareToken string `json:"shareToken" gorm:"uniqueIndex;size:32"`

	Video *Video `json:"-" gorm:"foreignKey:VideoID"`
}

// BeforeCreate generates the UUID and share token for a new link
func (l *TimestampLink) BeforeCreate(tx *gorm.DB) error {
	if l.UUID == "" {
		l.UUID = uuid.New().String()
	}
	if l.ShareToken == "" {
		token, err := NewShareToken()
		if err != nil {
			return err
		}
		l.ShareToken = token
	}
	return nil
}

// TableName returns the table name for the TimestampLink model
func (TimestampLink) TableName() string {
	return "timestamp_links"
}

// Duration returns the range length in seconds, or 0 for point links
func (l *TimestampLink) Duration() float64 {
	if l.EndTime == nil {
		return 0
	}
	return *l.EndTime - l.StartTime
}

// NewShareToken returns a URL-safe random token
func NewShareToken() (string, error) {
	buf := make([]byte, shareTokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}

package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Timestamp categories. Category is free-form in the schema; these are the
// values the stock UI offers.
const (
	CategoryGeneral    = "general"
	CategoryChoreo     = "choreography"
	CategoryFormation  = "formation"
	CategoryTransition = "transition"
	CategoryHighlight  = "highlight"
)

// Timestamp represents a bookmark anchored to a point in a video's timeline.
// Timestamps are listed ordered by Time ascending.
type Timestamp struct {
	gorm.Model
	UUID    string `json:"uuid" gorm:"uniqueIndex"`
	VideoID uint   `json:"videoId" gorm:"not null;index"`

	Time        float64 `json:"time" gorm:"not null"` // Offset in seconds, >= 0
	Label       string  `json:"label" gorm:"not null"`
	Description string  `json:"description,omitempty"`
	Category    string  `json:"category,omitempty" gorm:"size:50"`
	Color       string  `json:"color,omitempty" gorm:"size:20"` // CSS color for the marker

	Video *Video `json:"-" gorm:"foreignKey:VideoID"`
}

// BeforeCreate generates a UUID before creating a new timestamp
func (t *Timestamp) BeforeCreate(tx *gorm.DB) error {
	if t.UUID == "" {
		t.UUID = uuid.New().String()
	}
	return nil
}

// TableName returns the table name for the Timestamp model
func (Timestamp) TableName() string {
	return "timestamps"
}

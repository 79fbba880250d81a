package models

import (
	"time"

	"gorm.io/gorm"
)

// Outfit represents a named, ordered grouping of clothing items.
// Only the favorite flag and last-worn timestamp are mutable outside of
// an explicit edit by the owning user.
type Outfit struct {
	ID             uint           `gorm:"primaryKey" json:"outfit_id"`
	UserID         uint           `gorm:"not null;index" json:"user_id"`
	User           User           `gorm:"foreignKey:UserID" json:"-"`
	Name           string         `gorm:"not null" json:"name"`
	Rating         *int           `json:"rating,omitempty"`
	IsFavorite     bool           `gorm:"not null;default:false" json:"is_favorite"`
	LastWornAt     *time.Time     `json:"last_worn_at,omitempty"`
	EventType      string         `json:"event_type,omitempty"`
	Mood           string         `json:"mood,omitempty"`
	WeatherSummary string         `json:"weather_summary,omitempty"`
	Items          []OutfitItem   `gorm:"foreignKey:OutfitID" json:"items,omitempty"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"-"`
}

// OutfitItem links a clothing item into an outfit at a given position.
// Position preserves the caller-supplied ordering of items.
type OutfitItem struct {
	ID       uint         `gorm:"primaryKey" json:"id"`
	OutfitID uint         `gorm:"not null;index;uniqueIndex:idx_outfit_item" json:"outfit_id"`
	ItemID   uint         `gorm:"not null;uniqueIndex:idx_outfit_item" json:"item_id"`
	Item     ClothingItem `gorm:"foreignKey:ItemID" json:"item"`
	Position int          `gorm:"not null;default:0" json:"position"`
}

package models

import (
	"time"

	"gorm.io/gorm"
)

// Clothing item categories.
const (
	CategoryTop       = "top"
	CategoryPants     = "pants"
	CategoryDress     = "dress"
	CategoryOuterwear = "outerwear"
	CategoryShoes     = "shoes"
	CategoryAccessory = "accessory"
	CategoryOther     = "other"
)

// Formality levels, ordered from most casual to most formal.
const (
	FormalityCasual   = "casual"
	FormalitySmart    = "smart-casual"
	FormalityBusiness = "business"
	FormalityFormal   = "formal"
)

// ClothingItem represents a single garment in a user's closet.
// Warmth level runs 1 (lightest) to 5 (warmest).
type ClothingItem struct {
	ID              uint           `gorm:"primaryKey" json:"item_id"`
	UserID          uint           `gorm:"not null;index" json:"user_id"`
	Name            string         `gorm:"not null" json:"name"`
	Category        string         `gorm:"not null;default:other" json:"category"`
	Color           string         `json:"color"`
	Season          string         `json:"season"`
	WarmthLevel     int            `json:"warmth_level,omitempty"`
	Formality       string         `json:"formality,omitempty"`
	Tags            []string       `gorm:"serializer:json" json:"tags,omitempty"`
	PrimaryImageURL string         `json:"primary_image_url,omitempty"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"-"`
}

// ValidCategory reports whether c is one of the known clothing categories.
func ValidCategory(c string) bool {
	switch c {
	case CategoryTop, CategoryPants, CategoryDress, CategoryOuterwear,
		CategoryShoes, CategoryAccessory, CategoryOther:
		return true
	}
	return false
}

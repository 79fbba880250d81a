package models

import (
	"time"

	"gorm.io/gorm"
)

// Collection is a user-curated, taggable set of outfit references.
// Membership is not ownership: an outfit may belong to any number of
// collections, and archiving a collection does not delete membership.
type Collection struct {
	ID          uint           `gorm:"primaryKey" json:"collection_id"`
	UserID      uint           `gorm:"not null;index" json:"user_id"`
	Name        string         `gorm:"not null" json:"name"`
	Description string         `json:"description,omitempty"`
	IsArchived  bool           `gorm:"not null;default:false" json:"is_archived"`
	Tags        []string       `gorm:"serializer:json" json:"tags,omitempty"`
	Outfits     []Outfit       `gorm:"many2many:collection_outfits" json:"outfits,omitempty"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

// HasAnyTag reports whether the collection's tag set intersects tags.
func (c *Collection) HasAnyTag(tags map[string]struct{}) bool {
	for _, t := range c.Tags {
		if _, ok := tags[t]; ok {
			return true
		}
	}
	return false
}

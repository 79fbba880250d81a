package models

import (
	"time"

	"gorm.io/gorm"
)

// Post represents a shared outfit in the community feed.
// The reaction counters and the viewer's own reaction flags are derived
// from the reactions table at query time, never stored, so they cannot
// drift from the underlying reaction records.
type Post struct {
	ID       uint    `gorm:"primaryKey" json:"post_id"`
	UserID   uint    `gorm:"not null;index" json:"user_id"`
	User     User    `gorm:"foreignKey:UserID" json:"-"`
	OutfitID uint    `gorm:"not null;index" json:"outfit_id"`
	Outfit   *Outfit `gorm:"foreignKey:OutfitID" json:"outfit,omitempty"`
	Caption  string  `gorm:"type:text;not null" json:"caption"`
	// IsVisible defaults to true; only an explicit false hides a post.
	IsVisible bool     `gorm:"not null;default:true" json:"is_visible"`
	CityName  string   `json:"city_name,omitempty"`
	Tags      []string `gorm:"serializer:json" json:"tags,omitempty"`
	// Author is the denormalized author snapshot rendered with the post.
	Author UserSummary `gorm:"-" json:"author"`
	// LikeCount is not persisted; computed from reactions at query time
	LikeCount int `gorm:"->" json:"like_count"`
	// SaveCount is not persisted; computed from reactions at query time
	SaveCount int `gorm:"->" json:"save_count"`
	// CommentCount is not persisted; computed at query time
	CommentCount int `gorm:"->" json:"comment_count"`
	// Liked indicates whether the current requesting user liked this post (computed)
	Liked bool `gorm:"->" json:"is_liked_by_current_user"`
	// Saved indicates whether the current requesting user saved this post (computed)
	Saved     bool           `gorm:"->" json:"is_saved_by_current_user"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

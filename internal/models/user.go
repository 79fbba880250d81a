// Package models contains data structures for the application's domain models.
package models

import (
	"time"

	"gorm.io/gorm"
)

// User represents an account in the OOTD application. Signup and login
// are handled by an external identity service; this table only stores
// the profile needed to attribute outfits, collections and posts.
type User struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	Email       string         `gorm:"unique;not null" json:"email"`
	DisplayName string         `gorm:"not null" json:"display_name"`
	AvatarURL   string         `json:"avatar_url,omitempty"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
	Outfits     []Outfit       `gorm:"foreignKey:UserID" json:"outfits,omitempty"`
}

// UserSummary is the denormalized author snapshot embedded in feed posts.
type UserSummary struct {
	ID          uint   `json:"id"`
	DisplayName string `json:"display_name"`
	AvatarURL   string `json:"avatar_url,omitempty"`
}

// Summary returns the denormalized author snapshot for this user.
func (u *User) Summary() UserSummary {
	return UserSummary{
		ID:          u.ID,
		DisplayName: u.DisplayName,
		AvatarURL:   u.AvatarURL,
	}
}

package models

import "time"

// Reaction kinds.
const (
	ReactionLike = "like"
	ReactionSave = "save"
)

// Reaction is a per-user, per-post, per-kind toggleable state. The
// (post_id, user_id, kind) triple is unique; toggling off hard-deletes
// the row rather than soft-deleting it.
type Reaction struct {
	ID        uint      `gorm:"primaryKey" json:"reaction_id"`
	PostID    uint      `gorm:"not null;uniqueIndex:idx_post_user_kind" json:"post_id"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_post_user_kind" json:"user_id"`
	Kind      string    `gorm:"not null;uniqueIndex:idx_post_user_kind" json:"kind"`
	CreatedAt time.Time `json:"created_at"`
}

// ValidReactionKind reports whether kind is a supported reaction kind.
func ValidReactionKind(kind string) bool {
	return kind == ReactionLike || kind == ReactionSave
}

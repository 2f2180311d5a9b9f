package models

import (
	"time"
)

// Like represents a user liking a post. The composite unique index closes the
// race between two concurrent like requests for the same pair; an application
// level pre-check alone would not. Likes are hard-deleted so an unlike frees
// the (user, post) slot again.
type Like struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`

	UserID uint `gorm:"not null;uniqueIndex:idx_likes_user_post" json:"user_id"`
	User   User `json:"-"`

	PostID uint `gorm:"not null;uniqueIndex:idx_likes_user_post" json:"post_id"`
	Post   Post `json:"-"`
}

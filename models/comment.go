package models

import (
	"time"
)

// Comment represents a user comment on a post. Deleting the post or the author
// deletes the comment; comments themselves are immutable once created.
type Comment struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`

	UserID uint `gorm:"not null;index" json:"user_id"`
	User   User `json:"user,omitempty"`

	PostID uint `gorm:"not null;index" json:"post_id"`
	Post   Post `json:"-"`

	Content string `gorm:"type:text;not null" json:"content"`
}

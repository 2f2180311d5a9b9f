package models

import (
	"time"
)

// ExcerptLength is how much of the content is exposed in list previews.
const ExcerptLength = 200

// Post represents a piece of content published by a user. Who may read or edit
// it is decided dynamically from its privacy levels and the author's current
// team; nothing about visibility is denormalized onto the row.
type Post struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	AuthorID uint `gorm:"not null;index" json:"author_id"`
	Author   User `json:"author,omitempty"`

	Title   string `gorm:"size:100;not null" json:"title"`
	Content string `gorm:"type:text;not null" json:"content"`

	PrivacyRead  Privacy `gorm:"size:20;not null;default:'public'" json:"privacy_read"`
	PrivacyWrite Privacy `gorm:"size:20;not null;default:'author'" json:"privacy_write"`

	// Relations
	Comments []Comment `gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE" json:"comments,omitempty"`
	Likes    []Like    `gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE" json:"likes,omitempty"`
}

// Excerpt returns the leading slice of the content for previews.
func (p *Post) Excerpt() string {
	runes := []rune(p.Content)
	if len(runes) <= ExcerptLength {
		return p.Content
	}
	return string(runes[:ExcerptLength])
}

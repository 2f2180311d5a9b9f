package models

import (
	"strings"
	"unicode/utf8"

	"blogbackend/apperrors"
)

// Title length limits for posts, measured on the trimmed title.
const (
	MinTitleLength = 3
	MaxTitleLength = 100
)

// ValidateFields runs the mutation guards for a post before it is persisted.
// These run regardless of the access-control outcome and are stricter than the
// permission checks: a privacy_write of "public" can never be written, even
// though the engine still resolves it deterministically if a legacy row has it.
func (p *Post) ValidateFields() error {
	verr := &apperrors.ValidationError{}

	title := strings.TrimSpace(p.Title)
	switch {
	case utf8.RuneCountInString(title) < MinTitleLength:
		verr.Add("title", "title must be at least 3 characters")
	case utf8.RuneCountInString(title) > MaxTitleLength:
		verr.Add("title", "title must be at most 100 characters")
	}

	if strings.TrimSpace(p.Content) == "" {
		verr.Add("content", "content cannot be empty")
	}

	if !p.PrivacyRead.Valid() {
		verr.Add("privacy_read", "unknown privacy level")
	}

	if p.PrivacyWrite == PrivacyPublic {
		verr.Add("privacy_write", "posts cannot be publicly editable")
	} else if !p.PrivacyWrite.Valid() {
		verr.Add("privacy_write", "unknown privacy level")
	}

	if verr.HasErrors() {
		return verr
	}
	return nil
}

// ValidateFields runs the mutation guards for a comment.
func (c *Comment) ValidateFields() error {
	if strings.TrimSpace(c.Content) == "" {
		return apperrors.NewValidationError("content", "comment content cannot be empty")
	}
	return nil
}

// ValidateName checks the team name guard: non-empty, at most 100 characters.
func (t *Team) ValidateName() error {
	name := strings.TrimSpace(t.Name)
	if name == "" {
		return apperrors.NewValidationError("name", "team name cannot be empty")
	}
	if utf8.RuneCountInString(name) > 100 {
		return apperrors.NewValidationError("name", "team name must be at most 100 characters")
	}
	return nil
}

package models

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blogbackend/apperrors"
)

func validPost() *Post {
	return &Post{
		AuthorID:     1,
		Title:        "Hello world",
		Content:      "Some content",
		PrivacyRead:  PrivacyPublic,
		PrivacyWrite: PrivacyAuthor,
	}
}

func TestPostValidateFields(t *testing.T) {
	t.Run("valid post passes", func(t *testing.T) {
		assert.NoError(t, validPost().ValidateFields())
	})

	t.Run("short title rejected", func(t *testing.T) {
		post := validPost()
		post.Title = "ab"
		verr := requireValidation(t, post.ValidateFields())
		assert.Contains(t, verr.Fields, "title")
	})

	t.Run("whitespace-padded short title rejected", func(t *testing.T) {
		post := validPost()
		post.Title = "   ab   "
		verr := requireValidation(t, post.ValidateFields())
		assert.Contains(t, verr.Fields, "title")
	})

	t.Run("three non-whitespace characters suffice", func(t *testing.T) {
		post := validPost()
		post.Title = "  abc  "
		assert.NoError(t, post.ValidateFields())
	})

	t.Run("overlong title rejected", func(t *testing.T) {
		post := validPost()
		post.Title = strings.Repeat("x", MaxTitleLength+1)
		verr := requireValidation(t, post.ValidateFields())
		assert.Contains(t, verr.Fields, "title")
	})

	t.Run("empty content rejected", func(t *testing.T) {
		post := validPost()
		post.Content = "   \n\t  "
		verr := requireValidation(t, post.ValidateFields())
		assert.Contains(t, verr.Fields, "content")
	})

	t.Run("public write policy can never be set", func(t *testing.T) {
		post := validPost()
		post.PrivacyWrite = PrivacyPublic
		verr := requireValidation(t, post.ValidateFields())
		assert.Contains(t, verr.Fields, "privacy_write")
	})

	t.Run("unknown privacy levels rejected", func(t *testing.T) {
		post := validPost()
		post.PrivacyRead = Privacy("secret")
		post.PrivacyWrite = Privacy("hidden")
		verr := requireValidation(t, post.ValidateFields())
		assert.Contains(t, verr.Fields, "privacy_read")
		assert.Contains(t, verr.Fields, "privacy_write")
	})

	t.Run("multiple failures accumulate", func(t *testing.T) {
		post := validPost()
		post.Title = "x"
		post.Content = ""
		verr := requireValidation(t, post.ValidateFields())
		assert.Len(t, verr.Fields, 2)
	})
}

func TestCommentValidateFields(t *testing.T) {
	comment := &Comment{UserID: 1, PostID: 1, Content: "nice"}
	assert.NoError(t, comment.ValidateFields())

	comment.Content = "   "
	verr := requireValidation(t, comment.ValidateFields())
	assert.Contains(t, verr.Fields, "content")
}

func TestTeamValidateName(t *testing.T) {
	assert.NoError(t, (&Team{Name: "Backend"}).ValidateName())

	verr := requireValidation(t, (&Team{Name: "  "}).ValidateName())
	assert.Contains(t, verr.Fields, "name")

	long := &Team{Name: strings.Repeat("x", 101)}
	verr = requireValidation(t, long.ValidateName())
	assert.Contains(t, verr.Fields, "name")
}

func requireValidation(t *testing.T, err error) *apperrors.ValidationError {
	t.Helper()
	require.Error(t, err)
	verr, ok := apperrors.AsValidation(err)
	require.True(t, ok, "expected a validation error, got %v", err)
	return verr
}

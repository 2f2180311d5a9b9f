package permissions

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"blogbackend/models"
)

func TestCanCreateComment(t *testing.T) {
	author := newUser(1, newTeam(2, "Blue"))

	t.Run("anonymous cannot comment even on public posts", func(t *testing.T) {
		post := newPost(author, models.PrivacyPublic, models.PrivacyAuthor)
		assert.False(t, CanCreateComment(post, Anonymous()))
	})

	t.Run("reader of the post may comment", func(t *testing.T) {
		post := newPost(author, models.PrivacyPublic, models.PrivacyAuthor)
		assert.True(t, CanCreateComment(post, ForUser(newUser(2, newTeam(3, "Red")))))
	})

	t.Run("non-reader may not comment", func(t *testing.T) {
		post := newPost(author, models.PrivacyAuthor, models.PrivacyAuthor)
		assert.False(t, CanCreateComment(post, ForUser(newUser(2, newTeam(3, "Red")))))
	})

	t.Run("team reader may comment on team posts", func(t *testing.T) {
		blue := newTeam(2, "Blue")
		post := newPost(newUser(1, blue), models.PrivacyTeam, models.PrivacyAuthor)
		assert.True(t, CanCreateComment(post, ForUser(newUser(2, blue))))
	})
}

func TestCanDeleteComment(t *testing.T) {
	comment := &models.Comment{ID: 1, UserID: 5, PostID: 7}

	t.Run("author may delete", func(t *testing.T) {
		assert.True(t, CanDeleteComment(comment, ForUser(newUser(5, nil))))
	})

	t.Run("staff may delete any comment", func(t *testing.T) {
		staff := newUser(6, nil)
		staff.IsStaff = true
		assert.True(t, CanDeleteComment(comment, ForUser(staff)))
	})

	t.Run("superuser may delete any comment", func(t *testing.T) {
		super := newUser(7, nil)
		super.IsSuperuser = true
		assert.True(t, CanDeleteComment(comment, ForUser(super)))
	})

	t.Run("unrelated user may not delete", func(t *testing.T) {
		assert.False(t, CanDeleteComment(comment, ForUser(newUser(8, nil))))
	})

	t.Run("anonymous may not delete", func(t *testing.T) {
		assert.False(t, CanDeleteComment(comment, Anonymous()))
	})
}

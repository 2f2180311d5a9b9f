package permissions

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"blogbackend/models"
)

func TestCanLikePost(t *testing.T) {
	author := newUser(1, newTeam(2, "Blue"))

	t.Run("anonymous cannot like", func(t *testing.T) {
		post := newPost(author, models.PrivacyPublic, models.PrivacyAuthor)
		assert.False(t, CanLikePost(post, Anonymous()))
	})

	t.Run("reader may like", func(t *testing.T) {
		post := newPost(author, models.PrivacyPublic, models.PrivacyAuthor)
		assert.True(t, CanLikePost(post, ForUser(newUser(2, nil))))
	})

	t.Run("non-reader may not like", func(t *testing.T) {
		post := newPost(author, models.PrivacyTeam, models.PrivacyAuthor)
		assert.False(t, CanLikePost(post, ForUser(newUser(2, newTeam(3, "Red")))))
	})
}

func TestCanUnlike(t *testing.T) {
	like := &models.Like{ID: 1, UserID: 5, PostID: 7}

	t.Run("owner may unlike", func(t *testing.T) {
		assert.True(t, CanUnlike(like, ForUser(newUser(5, nil))))
	})

	t.Run("superuser may remove any like", func(t *testing.T) {
		super := newUser(6, nil)
		super.IsSuperuser = true
		assert.True(t, CanUnlike(like, ForUser(super)))
	})

	t.Run("staff without superuser may not", func(t *testing.T) {
		staff := newUser(7, nil)
		staff.IsStaff = true
		assert.False(t, CanUnlike(like, ForUser(staff)))
	})

	t.Run("unrelated user may not", func(t *testing.T) {
		assert.False(t, CanUnlike(like, ForUser(newUser(8, nil))))
	})

	t.Run("anonymous may not", func(t *testing.T) {
		assert.False(t, CanUnlike(like, Anonymous()))
	})
}

package permissions

import (
	"blogbackend/models"
)

// CanCreateComment decides whether the actor may comment on a post: you must
// be signed in and able to read the post you are commenting on.
func CanCreateComment(post *models.Post, actor Actor) bool {
	return actor.IsAuthenticated() && CanReadPost(post, actor)
}

// CanDeleteComment decides comment deletion: the comment's author and staff
// users may delete it.
func CanDeleteComment(comment *models.Comment, actor Actor) bool {
	if actor.IsSuperuser() {
		return true
	}
	if !actor.IsAuthenticated() {
		return false
	}
	return comment.UserID == actor.UserID() || actor.IsStaff()
}

package permissions

import (
	"blogbackend/models"
)

// CanLikePost decides whether the actor may like a post: signed in and able to
// read it. Whether the actor already liked it is a storage concern, not a
// permission.
func CanLikePost(post *models.Post, actor Actor) bool {
	return actor.IsAuthenticated() && CanReadPost(post, actor)
}

// CanUnlike decides like removal: only the like's owner and superusers.
func CanUnlike(like *models.Like, actor Actor) bool {
	if !actor.IsAuthenticated() {
		return false
	}
	return actor.IsSuperuser() || like.UserID == actor.UserID()
}

// Package permissions implements the access-control decisions for posts,
// comments and likes. Every check is a pure, side-effect-free predicate over
// snapshots of the actor and the resource, so checks can run concurrently from
// any number of request handlers without locking.
package permissions

import (
	"blogbackend/models"
)

// Actor is the identity attempting an operation: either the anonymous actor or
// an authenticated user. Modelling absence explicitly means no branch of the
// engine ever has to probe for missing attributes.
type Actor struct {
	user *models.User
}

// Anonymous returns the unauthenticated actor.
func Anonymous() Actor {
	return Actor{}
}

// ForUser wraps an authenticated user. A nil user behaves as Anonymous.
func ForUser(u *models.User) Actor {
	return Actor{user: u}
}

// IsAuthenticated reports whether the actor is a signed-in user.
func (a Actor) IsAuthenticated() bool {
	return a.user != nil
}

// IsStaff reports whether the actor is a staff user.
func (a Actor) IsStaff() bool {
	return a.user != nil && a.user.IsStaff
}

// IsSuperuser reports whether the actor bypasses all policy checks.
func (a Actor) IsSuperuser() bool {
	return a.user != nil && a.user.IsSuperuser
}

// UserID returns the actor's user id, or zero for the anonymous actor.
func (a Actor) UserID() uint {
	if a.user == nil {
		return 0
	}
	return a.user.ID
}

// TeamID returns the actor's team id, or zero when the actor is anonymous.
func (a Actor) TeamID() uint {
	if a.user == nil {
		return 0
	}
	return a.user.TeamID
}

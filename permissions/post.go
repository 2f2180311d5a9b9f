package permissions

import (
	"blogbackend/models"
)

// CanReadPost decides read access for a post. The post's author must be loaded
// with their current team: visibility of team-scoped posts follows the author's
// team at decision time, not at publish time.
func CanReadPost(post *models.Post, actor Actor) bool {
	if actor.IsSuperuser() {
		return true
	}

	switch post.PrivacyRead {
	case models.PrivacyPublic:
		return true
	case models.PrivacyAuthenticated:
		return actor.IsAuthenticated()
	case models.PrivacyTeam:
		return sameRealTeam(actor, &post.Author)
	case models.PrivacyAuthor:
		return actor.IsAuthenticated() && actor.UserID() == post.AuthorID
	}

	// Unknown or empty policy fails closed.
	return false
}

// CanWritePost decides edit and delete access for a post. The author is always
// allowed regardless of the configured policy; anonymous actors never are. A
// privacy_write of "public" cannot be set through any mutation path, but a
// legacy row carrying it resolves to deny: editable-by-anyone is unsound.
func CanWritePost(post *models.Post, actor Actor) bool {
	if actor.IsSuperuser() {
		return true
	}
	if !actor.IsAuthenticated() {
		return false
	}
	if actor.UserID() == post.AuthorID {
		return true
	}

	switch post.PrivacyWrite {
	case models.PrivacyPublic:
		return false
	case models.PrivacyAuthenticated:
		return true
	case models.PrivacyTeam:
		return sameRealTeam(actor, &post.Author)
	case models.PrivacyAuthor:
		// Non-author; the author was already granted above.
		return false
	}

	return false
}

// sameRealTeam reports whether the actor shares the author's team, where the
// sentinel Default team counts as no team at all. Without that exclusion every
// teamless account would implicitly share team-scoped content with every other
// teamless account.
func sameRealTeam(actor Actor, author *models.User) bool {
	if !actor.IsAuthenticated() {
		return false
	}
	if author.Team == nil || author.Team.IsDefault() {
		return false
	}
	if actor.TeamID() == 0 {
		return false
	}
	return actor.TeamID() == author.TeamID
}

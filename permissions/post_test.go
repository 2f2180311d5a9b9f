package permissions

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blogbackend/models"
)

func newTeam(id uint, name string) *models.Team {
	return &models.Team{ID: id, Name: name}
}

func newUser(id uint, team *models.Team) *models.User {
	u := &models.User{ID: id, IsActive: true}
	if team != nil {
		u.TeamID = team.ID
		u.Team = team
	}
	return u
}

func newPost(author *models.User, read, write models.Privacy) *models.Post {
	return &models.Post{
		ID:           1,
		AuthorID:     author.ID,
		Author:       *author,
		Title:        "A post",
		Content:      "Some content",
		PrivacyRead:  read,
		PrivacyWrite: write,
	}
}

func TestCanReadPost_Public(t *testing.T) {
	author := newUser(1, newTeam(1, models.DefaultTeamName))
	post := newPost(author, models.PrivacyPublic, models.PrivacyAuthor)

	assert.True(t, CanReadPost(post, Anonymous()))
	assert.True(t, CanReadPost(post, ForUser(newUser(2, newTeam(2, "Blue")))))
	assert.True(t, CanReadPost(post, ForUser(author)))
}

func TestCanReadPost_Authenticated(t *testing.T) {
	author := newUser(1, newTeam(1, models.DefaultTeamName))
	post := newPost(author, models.PrivacyAuthenticated, models.PrivacyAuthor)

	assert.False(t, CanReadPost(post, Anonymous()))
	assert.True(t, CanReadPost(post, ForUser(newUser(2, newTeam(2, "Blue")))))
}

func TestCanReadPost_Team(t *testing.T) {
	blue := newTeam(2, "Blue")
	red := newTeam(3, "Red")
	defaultTeam := newTeam(1, models.DefaultTeamName)

	author := newUser(1, blue)
	post := newPost(author, models.PrivacyTeam, models.PrivacyAuthor)

	t.Run("same team grants access", func(t *testing.T) {
		assert.True(t, CanReadPost(post, ForUser(newUser(2, blue))))
	})

	t.Run("different team denies", func(t *testing.T) {
		assert.False(t, CanReadPost(post, ForUser(newUser(2, red))))
	})

	t.Run("anonymous denies", func(t *testing.T) {
		assert.False(t, CanReadPost(post, Anonymous()))
	})

	t.Run("shared Default team never grants", func(t *testing.T) {
		defaultAuthor := newUser(1, defaultTeam)
		defaultPost := newPost(defaultAuthor, models.PrivacyTeam, models.PrivacyAuthor)
		assert.False(t, CanReadPost(defaultPost, ForUser(newUser(2, defaultTeam))))
	})

	t.Run("author without loaded team denies", func(t *testing.T) {
		bare := &models.User{ID: 1, TeamID: blue.ID}
		barePost := newPost(bare, models.PrivacyTeam, models.PrivacyAuthor)
		assert.False(t, CanReadPost(barePost, ForUser(newUser(2, blue))))
	})

	t.Run("superuser bypasses policy", func(t *testing.T) {
		super := newUser(9, red)
		super.IsSuperuser = true
		assert.True(t, CanReadPost(post, ForUser(super)))
	})
}

func TestCanReadPost_Author(t *testing.T) {
	author := newUser(1, newTeam(2, "Blue"))
	post := newPost(author, models.PrivacyAuthor, models.PrivacyAuthor)

	assert.True(t, CanReadPost(post, ForUser(author)))
	assert.False(t, CanReadPost(post, ForUser(newUser(2, newTeam(2, "Blue")))))
	assert.False(t, CanReadPost(post, Anonymous()))
}

func TestCanReadPost_UnknownPolicyFailsClosed(t *testing.T) {
	author := newUser(1, newTeam(2, "Blue"))
	post := newPost(author, models.Privacy("secret"), models.PrivacyAuthor)

	assert.False(t, CanReadPost(post, ForUser(author)))
	assert.False(t, CanReadPost(post, Anonymous()))

	super := newUser(9, nil)
	super.IsSuperuser = true
	assert.True(t, CanReadPost(post, ForUser(super)))

	empty := newPost(author, models.Privacy(""), models.PrivacyAuthor)
	assert.False(t, CanReadPost(empty, ForUser(author)))
}

// Team-scoped visibility follows the author's current team: moving the reader
// or the author between teams changes the decision without touching the post.
func TestCanReadPost_TeamMembershipIsDynamic(t *testing.T) {
	t1 := newTeam(10, "T1")
	t2 := newTeam(11, "T2")

	authorA := newUser(1, t1)
	post := newPost(authorA, models.PrivacyTeam, models.PrivacyAuthor)

	userB := newUser(2, t1)
	require.True(t, CanReadPost(post, ForUser(userB)))

	// B moves to T2: no longer shares A's team.
	userB.TeamID = t2.ID
	userB.Team = t2
	require.False(t, CanReadPost(post, ForUser(userB)))

	// A moves to T2 as well: B shares A's new team again.
	post.Author.TeamID = t2.ID
	post.Author.Team = t2
	require.True(t, CanReadPost(post, ForUser(userB)))
}

func TestCanWritePost_AuthorSupersedesPolicy(t *testing.T) {
	author := newUser(1, newTeam(2, "Blue"))

	for _, policy := range []models.Privacy{
		models.PrivacyPublic,
		models.PrivacyAuthenticated,
		models.PrivacyTeam,
		models.PrivacyAuthor,
		models.Privacy("unknown"),
	} {
		post := newPost(author, models.PrivacyPublic, policy)
		assert.True(t, CanWritePost(post, ForUser(author)), "policy %q", policy)
	}
}

func TestCanWritePost_AnonymousAlwaysDenied(t *testing.T) {
	author := newUser(1, newTeam(2, "Blue"))

	for _, policy := range []models.Privacy{
		models.PrivacyPublic,
		models.PrivacyAuthenticated,
		models.PrivacyTeam,
		models.PrivacyAuthor,
	} {
		post := newPost(author, models.PrivacyPublic, policy)
		assert.False(t, CanWritePost(post, Anonymous()), "policy %q", policy)
	}
}

// A legacy row carrying privacy_write=public resolves to deny for everyone
// except the author and superusers.
func TestCanWritePost_PublicWriteDenied(t *testing.T) {
	author := newUser(1, newTeam(2, "Blue"))
	post := newPost(author, models.PrivacyPublic, models.PrivacyPublic)

	other := newUser(2, newTeam(2, "Blue"))
	assert.False(t, CanWritePost(post, ForUser(other)))

	super := newUser(3, nil)
	super.IsSuperuser = true
	assert.True(t, CanWritePost(post, ForUser(super)))
}

func TestCanWritePost_Authenticated(t *testing.T) {
	author := newUser(1, newTeam(2, "Blue"))
	post := newPost(author, models.PrivacyPublic, models.PrivacyAuthenticated)

	assert.True(t, CanWritePost(post, ForUser(newUser(2, newTeam(3, "Red")))))
	assert.False(t, CanWritePost(post, Anonymous()))
}

func TestCanWritePost_Team(t *testing.T) {
	blue := newTeam(2, "Blue")
	defaultTeam := newTeam(1, models.DefaultTeamName)

	author := newUser(1, blue)
	post := newPost(author, models.PrivacyPublic, models.PrivacyTeam)

	assert.True(t, CanWritePost(post, ForUser(newUser(2, blue))))
	assert.False(t, CanWritePost(post, ForUser(newUser(2, newTeam(3, "Red")))))

	defaultAuthor := newUser(1, defaultTeam)
	defaultPost := newPost(defaultAuthor, models.PrivacyPublic, models.PrivacyTeam)
	assert.False(t, CanWritePost(defaultPost, ForUser(newUser(2, defaultTeam))))
}

func TestCanWritePost_AuthorPolicy(t *testing.T) {
	author := newUser(1, newTeam(2, "Blue"))
	post := newPost(author, models.PrivacyPublic, models.PrivacyAuthor)

	assert.True(t, CanWritePost(post, ForUser(author)))
	assert.False(t, CanWritePost(post, ForUser(newUser(2, newTeam(2, "Blue")))))
}

func TestCanWritePost_UnknownPolicyFailsClosed(t *testing.T) {
	author := newUser(1, newTeam(2, "Blue"))
	post := newPost(author, models.PrivacyPublic, models.Privacy("secret"))

	assert.False(t, CanWritePost(post, ForUser(newUser(2, newTeam(2, "Blue")))))
}

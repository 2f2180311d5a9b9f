package models

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeEmail(t *testing.T) {
	assert.Equal(t, "a@x.com", NormalizeEmail("A@X.com"))
	assert.Equal(t, "a@x.com", NormalizeEmail("  a@x.com  "))
	assert.Equal(t, NormalizeEmail("A@x.com"), NormalizeEmail("a@X.COM"))
}

func TestPrivacyValid(t *testing.T) {
	for _, p := range []Privacy{PrivacyPublic, PrivacyAuthenticated, PrivacyTeam, PrivacyAuthor} {
		assert.True(t, p.Valid(), "policy %q", p)
	}
	assert.False(t, Privacy("").Valid())
	assert.False(t, Privacy("secret").Valid())
	assert.False(t, Privacy("Public").Valid())
}

func TestPostExcerpt(t *testing.T) {
	short := &Post{Content: "hello"}
	assert.Equal(t, "hello", short.Excerpt())

	long := &Post{Content: strings.Repeat("a", ExcerptLength+50)}
	assert.Len(t, long.Excerpt(), ExcerptLength)

	// Multibyte content is cut on rune boundaries.
	wide := &Post{Content: strings.Repeat("é", ExcerptLength+1)}
	assert.Equal(t, ExcerptLength, len([]rune(wide.Excerpt())))
}

func TestTeamIsDefault(t *testing.T) {
	assert.True(t, (&Team{Name: DefaultTeamName}).IsDefault())
	assert.False(t, (&Team{Name: "default"}).IsDefault())
	assert.False(t, (&Team{Name: "Blue"}).IsDefault())
}

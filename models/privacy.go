package models

// Privacy is a post visibility/editability policy level.
type Privacy string

const (
	PrivacyPublic        Privacy = "public"
	PrivacyAuthenticated Privacy = "authenticated"
	PrivacyTeam          Privacy = "team"
	PrivacyAuthor        Privacy = "author"
)

// Valid reports whether p is one of the four known policy levels. Anything
// else must be treated as deny-by-default by the permission checks.
func (p Privacy) Valid() bool {
	switch p {
	case PrivacyPublic, PrivacyAuthenticated, PrivacyTeam, PrivacyAuthor:
		return true
	}
	return false
}

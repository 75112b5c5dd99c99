package entity

// User represents a registered account. Password holds the bcrypt hash and
// must never cross the interface boundary; handlers expose only the
// {email, username, avatar_url} projection.
type User struct {
	Email     string
	Username  string
	Password  string
	AvatarURL string
}

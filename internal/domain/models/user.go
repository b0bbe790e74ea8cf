package models

// User is an account in the repository. Passwords are stored as bcrypt
// hashes and never serialized.
type User struct {
	ID           int    `json:"id"`
	Username     string `json:"username"`
	PasswordHash string `json:"-"`
	DisplayName  string `json:"displayName"`
	Role         string `json:"role"`
	AvatarURL    string `json:"avatarUrl"`
}

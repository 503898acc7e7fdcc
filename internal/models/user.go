package models

// User is the account shape returned by the users API drills.
type User struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email,omitempty"`
}

// Credentials is a login attempt.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Profile is a user's public profile.
type Profile struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	AvatarURL string `json:"avatar_url,omitempty"`
}

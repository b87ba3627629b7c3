package models

// User is the cached profile stored next to the auth token.
type User struct {
	Username string  `json:"username"`
	Balance  float64 `json:"balance"`
}

// Session pairs the auth token with the cached profile. The two are always
// persisted and cleared together.
type Session struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type AuthResponse struct {
	Success bool   `json:"success"`
	Token   string `json:"token"`
	User    *User  `json:"user"`
	Message string `json:"message"`
}

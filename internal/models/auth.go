package models

// RegisterRequest represents the body of POST /auth/register
type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

// LoginRequest represents the body of POST /auth/login
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// GoogleAuthRequest represents the body of POST /auth/google
type GoogleAuthRequest struct {
	IDToken string `json:"idToken" binding:"required"`
}

// AuthResponse is returned by all three auth endpoints
type AuthResponse struct {
	Token string `json:"token"`
	User  *User  `json:"user"`
}

package dto

// RegisterRequest is the JSON body for POST /auth/register.
type RegisterRequest struct {
	Email    string `json:"email" binding:"required,max=255"`
	Password string `json:"password" binding:"required,min=1"`
	Name     string `json:"name" binding:"max=255"`
	LastName string `json:"last_name" binding:"max=255"`
}

// LoginRequest is the JSON body for POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// UserResponse is returned when user info is needed (e.g. after login).
type UserResponse struct {
	ID       int64  `json:"id"`
	Email    string `json:"email"`
	Name     string `json:"name"`
	LastName string `json:"last_name"`
}

// TokenResponse is returned by register and login with the issued bearer token.
type TokenResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

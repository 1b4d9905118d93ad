package dto

// Data Transfer Objects for authentication requests and responses

// RegisterRequest: payload for user registration
type RegisterRequest struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginRequest: payload for user login
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginData: data payload of a successful login
type LoginData struct {
	Token string `json:"token"`
}

// RegisterData: data payload of a successful registration
type RegisterData struct {
	UserID string `json:"userId"`
}

// internal/domain/auth/dto.go
package auth

import "time"

// LoginRequest for admin login. Both fields are required up front;
// binding enforces the empty-credential case before the credential
// check runs.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse successful login response
type LoginResponse struct {
	AccessToken string    `json:"access_token"`
	TokenType   string    `json:"token_type"`
	ExpiresAt   time.Time `json:"expires_at"`
	User        User      `json:"user"`
}

package dto

import "time"

// AdminTokenRequest carries the shared admin secret.
type AdminTokenRequest struct {
	Secret string `json:"secret" binding:"required"`
}

// AdminTokenResponse represents the response for a successful token exchange.
type AdminTokenResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}

package auth

import (
	"github.com/miguelF21/Facepay/internal/user"
)

// MeResponse describes the caller behind the bearer token. User is the
// local account with the same email, when there is one.
type MeResponse struct {
	Subject string             `json:"sub"`
	Email   string             `json:"email,omitempty"`
	Claims  map[string]any     `json:"claims"`
	User    *user.UserResponse `json:"user"`
}

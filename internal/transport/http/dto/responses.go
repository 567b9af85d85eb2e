package dto

import "github.com/unifiedcommerce/shop-service/internal/domain"

// MessageData is the minimal success body: {"message": "..."}.
type MessageData struct {
	Message string `json:"message"`
}

// UserData wraps a public user under a message, the shape register and
// update respond with.
type UserData struct {
	Message string            `json:"message"`
	User    domain.PublicUser `json:"user"`
}

// LoginData adds the bearer token to the login response.
type LoginData struct {
	Message string            `json:"message"`
	User    domain.PublicUser `json:"user"`
	Token   string            `json:"token"`
}

// MeData is the authenticated profile body.
type MeData struct {
	User domain.PublicUser `json:"user"`
}

package dto

import "hanviet-cards/backend/app/models"

type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// PublicUser is what leaves the service: never the password hash.
type PublicUser struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

type AuthResponse struct {
	AccessToken string     `json:"accessToken"`
	User        PublicUser `json:"user"`
}

func NewPublicUser(u *models.User) PublicUser {
	return PublicUser{ID: u.ID, Username: u.Username, Role: u.Role}
}

// Package user provides HTTP handlers for the user endpoints. Responses
// carry only the public account projection, never the password hash.
package user

import "newsboard/internal/domain/entity"

// DTO is the public account projection.
type DTO struct {
	Email     string `json:"email"`
	Username  string `json:"username"`
	AvatarURL string `json:"avatar_url"`
}

func toDTO(u *entity.User) DTO {
	return DTO{
		Email:     u.Email,
		Username:  u.Username,
		AvatarURL: u.AvatarURL,
	}
}

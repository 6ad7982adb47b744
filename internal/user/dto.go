// AngelaMos | 2026
// dto.go

package user

import (
	"time"
)

type UpdateProfileRequest struct {
	Username  *string `json:"username,omitempty"   validate:"omitempty,min=1,max=50"`
	AvatarURL *string `json:"avatar_url,omitempty" validate:"omitempty,url,max=2048"`
}

// UserMetadata mirrors the session provider's free-form metadata object.
type UserMetadata struct {
	Username  string `json:"username"`
	AvatarURL string `json:"avatar_url,omitempty"`
}

type UserResponse struct {
	ID           string       `json:"id"`
	Email        string       `json:"email"`
	UserMetadata UserMetadata `json:"user_metadata"`
	IsAdmin      bool         `json:"is_admin"`
	CreatedAt    time.Time    `json:"created_at"`
}

func (s *Service) ToUserResponse(u *User) UserResponse {
	return UserResponse{
		ID:    u.ID,
		Email: u.Email,
		UserMetadata: UserMetadata{
			Username:  u.DisplayName(),
			AvatarURL: s.ResolveAvatarURL(u),
		},
		IsAdmin:   s.admins.IsAdmin(u.Email),
		CreatedAt: u.CreatedAt,
	}
}

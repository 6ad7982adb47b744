// AngelaMos | 2026
// dto.go

package startup

import (
	"time"
)

type CreateStartupRequest struct {
	Name        string  `json:"name"        validate:"required,min=1,max=200"`
	Description string  `json:"description" validate:"required,max=2000"`
	ImageURL    *string `json:"image_url,omitempty" validate:"omitempty,url,max=2048"`
	Visibility  string  `json:"visibility"  validate:"omitempty,oneof=public private"`
}

type UpdateStartupRequest struct {
	Name        *string `json:"name,omitempty"        validate:"omitempty,min=1,max=200"`
	Description *string `json:"description,omitempty" validate:"omitempty,max=2000"`
	ImageURL    *string `json:"image_url,omitempty"   validate:"omitempty,max=2048"`
	Visibility  *string `json:"visibility,omitempty"  validate:"omitempty,oneof=public private"`
}

// StartupResponse preserves the committed row contract bit-exact: id,
// user_id, name, description, image_url (nullable), visibility, created_at.
type StartupResponse struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	ImageURL    *string   `json:"image_url"`
	Visibility  string    `json:"visibility"`
	CreatedAt   time.Time `json:"created_at"`
}

// ShowcaseStartup is a row enriched with the resolved founder identity shown
// on showcase cards.
type ShowcaseStartup struct {
	StartupResponse
	Username  string `json:"username"`
	AvatarURL string `json:"avatar_url,omitempty"`
}

type ShowcaseResponse struct {
	Startups []ShowcaseStartup `json:"startups"`
	Total    int               `json:"total"`
	Showing  int               `json:"showing"`
}

type DashboardResponse struct {
	Startups      []StartupResponse `json:"startups"`
	StartupCount  int               `json:"startup_count"`
	PublicCount   int               `json:"public_count"`
	PrivateCount  int               `json:"private_count"`
	TotalUsers    int               `json:"total_users"`
	TotalStartups int               `json:"total_startups"`
}

func ToStartupResponse(s *Startup) StartupResponse {
	return StartupResponse{
		ID:          s.ID,
		UserID:      s.UserID,
		Name:        s.Name,
		Description: s.Description,
		ImageURL:    s.ImageURL,
		Visibility:  string(s.Visibility),
		CreatedAt:   s.CreatedAt,
	}
}

func ToStartupResponseList(startups []Startup) []StartupResponse {
	responses := make([]StartupResponse, 0, len(startups))
	for i := range startups {
		responses = append(responses, ToStartupResponse(&startups[i]))
	}
	return responses
}

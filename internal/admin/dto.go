// AngelaMos | 2026
// dto.go

package admin

import (
	"time"

	"github.com/solacehq/solace/internal/startup"
)

// UserSummary is one row of the moderation table: identity plus per-user
// startup counts.
type UserSummary struct {
	ID              string    `json:"id"`
	Email           string    `json:"email"`
	Username        string    `json:"username"`
	AvatarURL       string    `json:"avatar_url,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	IsAdmin         bool      `json:"is_admin"`
	StartupCount    int       `json:"startup_count"`
	PublicStartups  int       `json:"public_startups"`
	PrivateStartups int       `json:"private_startups"`
}

// ModeratedStartup is a startup row enriched with its owner's identity so
// moderators see who published what.
type ModeratedStartup struct {
	startup.StartupResponse
	UserEmail string `json:"user_email"`
	Username  string `json:"username"`
	AvatarURL string `json:"avatar_url,omitempty"`
}

// OverviewResponse is everything the moderation screen renders in one
// payload. Degraded is true when the user directory was unreachable and the
// user rows were reconstructed from startup ownership alone.
type OverviewResponse struct {
	Users         []UserSummary      `json:"users"`
	Startups      []ModeratedStartup `json:"startups"`
	TotalUsers    int                `json:"total_users"`
	TotalStartups int                `json:"total_startups"`
	Degraded      bool               `json:"degraded"`
}

// AngelaMos | 2026
// service.go

package admin

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/solacehq/solace/internal/startup"
	"github.com/solacehq/solace/internal/user"
)

type UserDirectory interface {
	ListAll(ctx context.Context) ([]user.User, error)
	DeleteUser(ctx context.Context, id string) error
	IsAdminEmail(email string) bool
	ResolveAvatarURL(u *user.User) string
}

type StartupCatalog interface {
	ListAll(ctx context.Context) ([]startup.Startup, error)
	Delete(ctx context.Context, actor startup.Actor, id string) error
	ToggleVisibility(
		ctx context.Context,
		actor startup.Actor,
		id string,
	) (*startup.Startup, error)
}

type Service struct {
	users    UserDirectory
	startups StartupCatalog
	logger   *slog.Logger
}

func NewService(
	users UserDirectory,
	startups StartupCatalog,
	logger *slog.Logger,
) *Service {
	return &Service{
		users:    users,
		startups: startups,
		logger:   logger,
	}
}

// Overview assembles the moderation payload. Startups are the authoritative
// half; if the user directory fails the overview still renders, with user
// rows reconstructed from startup ownership and marked degraded.
func (s *Service) Overview(ctx context.Context) (*OverviewResponse, error) {
	startups, err := s.startups.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list startups: %w", err)
	}

	degraded := false
	users, err := s.users.ListAll(ctx)
	if err != nil {
		s.logger.Warn("user directory unavailable, serving degraded overview",
			slog.String("error", err.Error()),
		)
		degraded = true
		users = synthesizeUsers(startups)
	}

	summaries := s.summarizeUsers(users, startups, degraded)
	moderated := s.enrichStartups(users, startups, degraded)

	return &OverviewResponse{
		Users:         summaries,
		Startups:      moderated,
		TotalUsers:    len(summaries),
		TotalStartups: len(moderated),
		Degraded:      degraded,
	}, nil
}

func (s *Service) DeleteUser(ctx context.Context, id string) error {
	return s.users.DeleteUser(ctx, id)
}

func (s *Service) DeleteStartup(
	ctx context.Context,
	actor startup.Actor,
	id string,
) error {
	return s.startups.Delete(ctx, actor, id)
}

func (s *Service) ToggleStartupVisibility(
	ctx context.Context,
	actor startup.Actor,
	id string,
) (*startup.Startup, error) {
	return s.startups.ToggleVisibility(ctx, actor, id)
}

func (s *Service) summarizeUsers(
	users []user.User,
	startups []startup.Startup,
	degraded bool,
) []UserSummary {
	counts := make(map[string]*UserSummary, len(users))
	summaries := make([]UserSummary, 0, len(users))

	for i := range users {
		u := &users[i]
		summary := UserSummary{
			ID:        u.ID,
			Email:     u.Email,
			Username:  u.DisplayName(),
			CreatedAt: u.CreatedAt,
		}
		if !degraded {
			summary.IsAdmin = s.users.IsAdminEmail(u.Email)
			summary.AvatarURL = s.users.ResolveAvatarURL(u)
		}
		summaries = append(summaries, summary)
	}

	for i := range summaries {
		counts[summaries[i].ID] = &summaries[i]
	}

	for i := range startups {
		summary, ok := counts[startups[i].UserID]
		if !ok {
			continue
		}
		summary.StartupCount++
		if startups[i].IsPublic() {
			summary.PublicStartups++
		} else {
			summary.PrivateStartups++
		}
	}

	return summaries
}

func (s *Service) enrichStartups(
	users []user.User,
	startups []startup.Startup,
	degraded bool,
) []ModeratedStartup {
	byID := make(map[string]*user.User, len(users))
	for i := range users {
		byID[users[i].ID] = &users[i]
	}

	moderated := make([]ModeratedStartup, 0, len(startups))
	for i := range startups {
		row := ModeratedStartup{
			StartupResponse: startup.ToStartupResponse(&startups[i]),
			UserEmail:       "Unknown",
			Username:        "Anonymous",
		}
		if u, ok := byID[startups[i].UserID]; ok {
			row.UserEmail = u.Email
			row.Username = u.DisplayName()
			if !degraded {
				row.AvatarURL = s.users.ResolveAvatarURL(u)
			}
		}
		moderated = append(moderated, row)
	}

	return moderated
}

// synthesizeUsers rebuilds a user list from distinct startup owners when the
// directory is down. Placeholder identities are clearly marked: email
// "Unknown", username derived from the owner id prefix.
func synthesizeUsers(startups []startup.Startup) []user.User {
	seen := make(map[string]struct{})
	users := make([]user.User, 0)

	for i := range startups {
		ownerID := startups[i].UserID
		if _, ok := seen[ownerID]; ok {
			continue
		}
		seen[ownerID] = struct{}{}

		users = append(users, user.User{
			ID:        ownerID,
			Email:     "Unknown",
			Username:  "User " + shortID(ownerID),
			CreatedAt: time.Now().UTC(),
		})
	}

	sort.Slice(users, func(i, j int) bool {
		return users[i].ID < users[j].ID
	})

	return users
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// AngelaMos | 2026
// service.go

package startup

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/solacehq/solace/internal/core"
	"github.com/solacehq/solace/internal/policy"
)

// Founder is the slice of a user record the showcase needs to label cards.
type Founder struct {
	ID        string
	Email     string
	Username  string
	AvatarURL string
}

// FounderDirectory resolves startup owners to display identities. The
// showcase treats it as best-effort: a failing directory degrades card
// labels, it never hides startups.
type FounderDirectory interface {
	ListFounders(ctx context.Context) ([]Founder, error)
	CountUsers(ctx context.Context) (int, error)
}

type Service struct {
	repo           Repository
	founders       FounderDirectory
	admins         *policy.AdminPolicy
	maxDescription int
	logger         *slog.Logger
}

func NewService(
	repo Repository,
	founders FounderDirectory,
	admins *policy.AdminPolicy,
	maxDescription int,
	logger *slog.Logger,
) *Service {
	return &Service{
		repo:           repo,
		founders:       founders,
		admins:         admins,
		maxDescription: maxDescription,
		logger:         logger,
	}
}

// Create validates the payload before anything touches the database. A name
// that trims to empty or a description over the cap is rejected with no
// write.
func (s *Service) Create(
	ctx context.Context,
	actor Actor,
	req CreateStartupRequest,
) (*Startup, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" || utf8.RuneCountInString(req.Description) > s.maxDescription {
		return nil, core.BadRequestError(fmt.Sprintf(
			"name is required and description must be %d characters or less",
			s.maxDescription,
		))
	}

	visibility := VisibilityPrivate
	if req.Visibility != "" {
		visibility = Visibility(req.Visibility)
		if !visibility.Valid() {
			return nil, core.BadRequestError("visibility must be public or private")
		}
	}

	startup := &Startup{
		ID:          uuid.New().String(),
		UserID:      actor.ID,
		Name:        name,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		Visibility:  visibility,
	}

	if err := s.repo.Insert(ctx, startup); err != nil {
		return nil, err
	}

	return startup, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (*Startup, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) Update(
	ctx context.Context,
	actor Actor,
	id string,
	req UpdateStartupRequest,
) (*Startup, error) {
	startup, err := s.authorize(ctx, actor, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, core.BadRequestError("name cannot be empty")
		}
		startup.Name = name
	}

	if req.Description != nil {
		if utf8.RuneCountInString(*req.Description) > s.maxDescription {
			return nil, core.BadRequestError(fmt.Sprintf(
				"description must be %d characters or less",
				s.maxDescription,
			))
		}
		startup.Description = *req.Description
	}

	if req.ImageURL != nil {
		if *req.ImageURL == "" {
			startup.ImageURL = nil
		} else {
			startup.ImageURL = req.ImageURL
		}
	}

	if req.Visibility != nil {
		visibility := Visibility(*req.Visibility)
		if !visibility.Valid() {
			return nil, core.BadRequestError("visibility must be public or private")
		}
		startup.Visibility = visibility
	}

	if err := s.repo.Update(ctx, startup); err != nil {
		return nil, err
	}

	return startup, nil
}

func (s *Service) Delete(ctx context.Context, actor Actor, id string) error {
	if _, err := s.authorize(ctx, actor, id); err != nil {
		return err
	}

	return s.repo.Delete(ctx, id)
}

// ToggleVisibility flips the stored visibility to its opposite. Toggling
// twice restores the original value.
func (s *Service) ToggleVisibility(
	ctx context.Context,
	actor Actor,
	id string,
) (*Startup, error) {
	startup, err := s.authorize(ctx, actor, id)
	if err != nil {
		return nil, err
	}

	startup.Visibility = startup.Visibility.Toggle()

	if err := s.repo.Update(ctx, startup); err != nil {
		return nil, err
	}

	return startup, nil
}

func (s *Service) ListOwn(
	ctx context.Context,
	userID string,
) ([]Startup, error) {
	return s.repo.ListByOwner(ctx, userID)
}

func (s *Service) ListAll(ctx context.Context) ([]Startup, error) {
	return s.repo.ListAll(ctx)
}

func (s *Service) Count(ctx context.Context) (int, error) {
	return s.repo.Count(ctx)
}

// Showcase returns every public startup enriched with founder identity,
// already filtered and sorted. Founder resolution failures fall back to
// "Anonymous" rather than failing the page.
func (s *Service) Showcase(
	ctx context.Context,
	search string,
	sort SortOrder,
) (*ShowcaseResponse, error) {
	startups, err := s.repo.ListPublic(ctx)
	if err != nil {
		return nil, err
	}

	foundersByID := make(map[string]Founder)
	founders, err := s.founders.ListFounders(ctx)
	if err != nil {
		s.logger.Warn("founder lookup failed, using anonymous labels",
			slog.String("error", err.Error()),
		)
	} else {
		for _, f := range founders {
			foundersByID[f.ID] = f
		}
	}

	cards := make([]ShowcaseStartup, 0, len(startups))
	for i := range startups {
		card := ShowcaseStartup{
			StartupResponse: ToStartupResponse(&startups[i]),
			Username:        "Anonymous",
		}
		if f, ok := foundersByID[startups[i].UserID]; ok {
			if f.Username != "" {
				card.Username = f.Username
			}
			card.AvatarURL = f.AvatarURL
		}
		cards = append(cards, card)
	}

	total := len(cards)
	cards = FilterAndSort(cards, search, sort)

	return &ShowcaseResponse{
		Startups: cards,
		Total:    total,
		Showing:  len(cards),
	}, nil
}

// Dashboard aggregates the caller's startups with platform-wide counts. The
// totals are best-effort; a failing count never hides the user's own rows.
func (s *Service) Dashboard(
	ctx context.Context,
	userID string,
) (*DashboardResponse, error) {
	startups, err := s.repo.ListByOwner(ctx, userID)
	if err != nil {
		return nil, err
	}

	publicCount := 0
	for i := range startups {
		if startups[i].IsPublic() {
			publicCount++
		}
	}

	totalUsers, err := s.founders.CountUsers(ctx)
	if err != nil {
		s.logger.Warn("user count failed",
			slog.String("error", err.Error()),
		)
		totalUsers = 0
	}

	totalStartups, err := s.repo.Count(ctx)
	if err != nil {
		s.logger.Warn("startup count failed",
			slog.String("error", err.Error()),
		)
		totalStartups = 0
	}

	return &DashboardResponse{
		Startups:      ToStartupResponseList(startups),
		StartupCount:  len(startups),
		PublicCount:   publicCount,
		PrivateCount:  len(startups) - publicCount,
		TotalUsers:    totalUsers,
		TotalStartups: totalStartups,
	}, nil
}

// authorize loads the startup and checks the actor may mutate it: owners
// always, admins by allow-list. Everyone else gets 403 regardless of what
// any client claims.
func (s *Service) authorize(
	ctx context.Context,
	actor Actor,
	id string,
) (*Startup, error) {
	startup, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if startup.UserID != actor.ID && !s.admins.IsAdmin(actor.Email) {
		return nil, fmt.Errorf(
			"startup %s: %w", id, core.ErrForbidden,
		)
	}

	return startup, nil
}

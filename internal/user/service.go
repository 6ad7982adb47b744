// AngelaMos | 2026
// service.go

package user

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/solacehq/solace/internal/auth"
	"github.com/solacehq/solace/internal/core"
	"github.com/solacehq/solace/internal/gravatar"
	"github.com/solacehq/solace/internal/policy"
	"github.com/solacehq/solace/internal/startup"
)

type Service struct {
	repo   Repository
	admins *policy.AdminPolicy
}

func NewService(repo Repository, admins *policy.AdminPolicy) *Service {
	return &Service{repo: repo, admins: admins}
}

func (s *Service) GetByID(
	ctx context.Context,
	id string,
) (*auth.UserInfo, error) {
	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return s.toUserInfo(user), nil
}

func (s *Service) GetByEmail(
	ctx context.Context,
	email string,
) (*auth.UserInfo, error) {
	user, err := s.repo.GetByEmail(ctx, strings.ToLower(email))
	if err != nil {
		return nil, err
	}

	return s.toUserInfo(user), nil
}

// Create registers a new user. The username defaults to the email local-part
// when the caller leaves it blank, matching the session provider's behavior.
func (s *Service) Create(
	ctx context.Context,
	email, passwordHash, username string,
) (*auth.UserInfo, error) {
	email = strings.ToLower(email)

	username = strings.TrimSpace(username)
	if username == "" {
		username = EmailLocalPart(email)
	}

	user := &User{
		ID:           uuid.New().String(),
		Email:        email,
		PasswordHash: passwordHash,
		Username:     username,
	}

	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}

	return s.toUserInfo(user), nil
}

func (s *Service) IncrementTokenVersion(
	ctx context.Context,
	userID string,
) error {
	return s.repo.IncrementTokenVersion(ctx, userID)
}

func (s *Service) UpdatePassword(
	ctx context.Context,
	userID, passwordHash string,
) error {
	return s.repo.UpdatePassword(ctx, userID, passwordHash)
}

func (s *Service) GetMe(ctx context.Context, userID string) (*User, error) {
	if userID == "" {
		return nil, fmt.Errorf("get me: %w", core.ErrUnauthorized)
	}

	return s.repo.GetByID(ctx, userID)
}

// UpdateProfile applies the settings-screen mutation: username and avatar
// URL live in user metadata; email and password change through auth flows.
func (s *Service) UpdateProfile(
	ctx context.Context,
	userID string,
	req UpdateProfileRequest,
) (*User, error) {
	if userID == "" {
		return nil, fmt.Errorf("update profile: %w", core.ErrUnauthorized)
	}

	user, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.Username != nil {
		user.Username = strings.TrimSpace(*req.Username)
	}

	if req.AvatarURL != nil {
		if *req.AvatarURL == "" {
			user.AvatarURL = nil
		} else {
			user.AvatarURL = req.AvatarURL
		}
	}

	if err := s.repo.UpdateProfile(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

func (s *Service) DeleteUser(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

func (s *Service) ListAll(ctx context.Context) ([]User, error) {
	return s.repo.ListAll(ctx)
}

func (s *Service) Count(ctx context.Context) (int, error) {
	return s.repo.Count(ctx)
}

// ListFounders projects every user into the identity slice the showcase
// needs for card labels.
func (s *Service) ListFounders(ctx context.Context) ([]startup.Founder, error) {
	users, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	founders := make([]startup.Founder, 0, len(users))
	for i := range users {
		u := &users[i]
		founders = append(founders, startup.Founder{
			ID:        u.ID,
			Email:     u.Email,
			Username:  u.DisplayName(),
			AvatarURL: s.ResolveAvatarURL(u),
		})
	}

	return founders, nil
}

func (s *Service) CountUsers(ctx context.Context) (int, error) {
	return s.repo.Count(ctx)
}

func (s *Service) IsAdminEmail(email string) bool {
	return s.admins.IsAdmin(email)
}

// ResolveAvatarURL returns the stored avatar, falling back to a gravatar
// derived from the email when none was set.
func (s *Service) ResolveAvatarURL(u *User) string {
	if u.AvatarURL != nil && *u.AvatarURL != "" {
		return *u.AvatarURL
	}
	return gravatar.URL(u.Email)
}

func (s *Service) toUserInfo(u *User) *auth.UserInfo {
	return &auth.UserInfo{
		ID:           u.ID,
		Email:        u.Email,
		Username:     u.DisplayName(),
		AvatarURL:    s.ResolveAvatarURL(u),
		PasswordHash: u.PasswordHash,
		TokenVersion: u.TokenVersion,
		CreatedAt:    u.CreatedAt,
	}
}

var (
	_ auth.UserProvider        = (*Service)(nil)
	_ startup.FounderDirectory = (*Service)(nil)
)

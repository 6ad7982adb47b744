// AngelaMos | 2026
// service_test.go

package admin

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/solacehq/solace/internal/startup"
	"github.com/solacehq/solace/internal/user"
)

type fakeUsers struct {
	users   []user.User
	listErr error
	deleted []string
	admins  map[string]bool
}

func (f *fakeUsers) ListAll(_ context.Context) ([]user.User, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.users, nil
}

func (f *fakeUsers) DeleteUser(_ context.Context, id string) error {
	f.deleted = append(f.deleted, id)
	return nil
}

func (f *fakeUsers) IsAdminEmail(email string) bool {
	return f.admins[strings.ToLower(email)]
}

func (f *fakeUsers) ResolveAvatarURL(u *user.User) string {
	if u.AvatarURL != nil {
		return *u.AvatarURL
	}
	return "https://avatars.test/" + u.ID
}

type fakeStartups struct {
	startups []startup.Startup
	listErr  error
	deleted  []string
}

func (f *fakeStartups) ListAll(_ context.Context) ([]startup.Startup, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.startups, nil
}

func (f *fakeStartups) Delete(
	_ context.Context,
	_ startup.Actor,
	id string,
) error {
	f.deleted = append(f.deleted, id)
	return nil
}

func (f *fakeStartups) ToggleVisibility(
	_ context.Context,
	_ startup.Actor,
	id string,
) (*startup.Startup, error) {
	for i := range f.startups {
		if f.startups[i].ID == id {
			f.startups[i].Visibility = f.startups[i].Visibility.Toggle()
			return &f.startups[i], nil
		}
	}
	return nil, errors.New("not found")
}

func testStartup(id, userID string, vis startup.Visibility) startup.Startup {
	return startup.Startup{
		ID:         id,
		UserID:     userID,
		Name:       "s-" + id,
		Visibility: vis,
		CreatedAt:  time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestOverview_AggregatesCountsPerUser(t *testing.T) {
	users := &fakeUsers{
		users: []user.User{
			{ID: "u1", Email: "ada@example.com", Username: "ada"},
			{ID: "u2", Email: "grace@example.com", Username: "grace"},
		},
		admins: map[string]bool{"ada@example.com": true},
	}
	startups := &fakeStartups{
		startups: []startup.Startup{
			testStartup("s1", "u1", startup.VisibilityPublic),
			testStartup("s2", "u1", startup.VisibilityPrivate),
			testStartup("s3", "u2", startup.VisibilityPublic),
		},
	}

	svc := NewService(users, startups, slog.New(slog.DiscardHandler))

	resp, err := svc.Overview(context.Background())
	require.NoError(t, err)

	assert.False(t, resp.Degraded)
	assert.Equal(t, 2, resp.TotalUsers)
	assert.Equal(t, 3, resp.TotalStartups)

	require.Len(t, resp.Users, 2)
	ada := resp.Users[0]
	assert.Equal(t, "u1", ada.ID)
	assert.True(t, ada.IsAdmin)
	assert.Equal(t, 2, ada.StartupCount)
	assert.Equal(t, 1, ada.PublicStartups)
	assert.Equal(t, 1, ada.PrivateStartups)

	grace := resp.Users[1]
	assert.False(t, grace.IsAdmin)
	assert.Equal(t, 1, grace.StartupCount)

	require.Len(t, resp.Startups, 3)
	assert.Equal(t, "ada@example.com", resp.Startups[0].UserEmail)
	assert.Equal(t, "ada", resp.Startups[0].Username)
}

func TestOverview_DegradesWhenUserDirectoryFails(t *testing.T) {
	users := &fakeUsers{listErr: errors.New("directory down")}
	startups := &fakeStartups{
		startups: []startup.Startup{
			testStartup("s1", "11112222-3333-4444-5555-666677778888", startup.VisibilityPublic),
			testStartup("s2", "11112222-3333-4444-5555-666677778888", startup.VisibilityPrivate),
			testStartup("s3", "99990000-aaaa-bbbb-cccc-ddddeeeeffff", startup.VisibilityPublic),
		},
	}

	svc := NewService(users, startups, slog.New(slog.DiscardHandler))

	resp, err := svc.Overview(context.Background())
	require.NoError(t, err)

	assert.True(t, resp.Degraded)
	assert.Equal(t, 3, resp.TotalStartups)

	require.Len(t, resp.Users, 2)
	first := resp.Users[0]
	assert.Equal(t, "11112222-3333-4444-5555-666677778888", first.ID)
	assert.Equal(t, "Unknown", first.Email)
	assert.Equal(t, "User 11112222", first.Username)
	assert.False(t, first.IsAdmin)
	assert.Equal(t, 2, first.StartupCount)
	assert.Equal(t, 1, first.PublicStartups)
	assert.Equal(t, 1, first.PrivateStartups)

	for _, row := range resp.Startups {
		assert.Equal(t, "Unknown", row.UserEmail)
		assert.NotEmpty(t, row.Username)
	}
}

func TestOverview_FailsWhenStartupsUnavailable(t *testing.T) {
	svc := NewService(
		&fakeUsers{},
		&fakeStartups{listErr: errors.New("db down")},
		slog.New(slog.DiscardHandler),
	)

	_, err := svc.Overview(context.Background())
	require.Error(t, err)
}

func TestOverview_UnknownOwnerLabeledAnonymous(t *testing.T) {
	users := &fakeUsers{
		users: []user.User{
			{ID: "u1", Email: "ada@example.com", Username: "ada"},
		},
	}
	startups := &fakeStartups{
		startups: []startup.Startup{
			testStartup("s1", "ghost", startup.VisibilityPublic),
		},
	}

	svc := NewService(users, startups, slog.New(slog.DiscardHandler))

	resp, err := svc.Overview(context.Background())
	require.NoError(t, err)

	require.Len(t, resp.Startups, 1)
	assert.Equal(t, "Unknown", resp.Startups[0].UserEmail)
	assert.Equal(t, "Anonymous", resp.Startups[0].Username)

	require.Len(t, resp.Users, 1)
	assert.Zero(t, resp.Users[0].StartupCount)
}

func TestDeleteActions_Delegate(t *testing.T) {
	users := &fakeUsers{}
	startups := &fakeStartups{
		startups: []startup.Startup{
			testStartup("s1", "u1", startup.VisibilityPublic),
		},
	}

	svc := NewService(users, startups, slog.New(slog.DiscardHandler))
	actor := startup.Actor{ID: "mod", Email: "admin@solace.dev"}

	require.NoError(t, svc.DeleteUser(context.Background(), "u1"))
	assert.Equal(t, []string{"u1"}, users.deleted)

	require.NoError(t, svc.DeleteStartup(context.Background(), actor, "s1"))
	assert.Equal(t, []string{"s1"}, startups.deleted)

	toggled, err := svc.ToggleStartupVisibility(
		context.Background(),
		actor,
		"s1",
	)
	require.NoError(t, err)
	assert.Equal(t, startup.VisibilityPrivate, toggled.Visibility)
}

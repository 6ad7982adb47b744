// AngelaMos | 2026
// service_test.go

package user

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/solacehq/solace/internal/core"
	"github.com/solacehq/solace/internal/policy"
)

type fakeRepo struct {
	byID    map[string]*User
	byEmail map[string]*User
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		byID:    make(map[string]*User),
		byEmail: make(map[string]*User),
	}
}

func (f *fakeRepo) Create(_ context.Context, u *User) error {
	if _, ok := f.byEmail[u.Email]; ok {
		return core.ErrDuplicateKey
	}
	u.CreatedAt = time.Now().UTC()
	u.UpdatedAt = u.CreatedAt
	copied := *u
	f.byID[u.ID] = &copied
	f.byEmail[u.Email] = &copied
	return nil
}

func (f *fakeRepo) GetByID(_ context.Context, id string) (*User, error) {
	u, ok := f.byID[id]
	if !ok {
		return nil, core.ErrNotFound
	}
	copied := *u
	return &copied, nil
}

func (f *fakeRepo) GetByEmail(_ context.Context, email string) (*User, error) {
	u, ok := f.byEmail[email]
	if !ok {
		return nil, core.ErrNotFound
	}
	copied := *u
	return &copied, nil
}

func (f *fakeRepo) UpdateProfile(_ context.Context, u *User) error {
	stored, ok := f.byID[u.ID]
	if !ok {
		return core.ErrNotFound
	}
	stored.Username = u.Username
	stored.AvatarURL = u.AvatarURL
	return nil
}

func (f *fakeRepo) UpdatePassword(_ context.Context, id, hash string) error {
	stored, ok := f.byID[id]
	if !ok {
		return core.ErrNotFound
	}
	stored.PasswordHash = hash
	return nil
}

func (f *fakeRepo) IncrementTokenVersion(_ context.Context, id string) error {
	stored, ok := f.byID[id]
	if !ok {
		return core.ErrNotFound
	}
	stored.TokenVersion++
	return nil
}

func (f *fakeRepo) Delete(_ context.Context, id string) error {
	stored, ok := f.byID[id]
	if !ok {
		return core.ErrNotFound
	}
	delete(f.byEmail, stored.Email)
	delete(f.byID, id)
	return nil
}

func (f *fakeRepo) ListAll(_ context.Context) ([]User, error) {
	out := make([]User, 0, len(f.byID))
	for _, u := range f.byID {
		out = append(out, *u)
	}
	return out, nil
}

func (f *fakeRepo) Count(_ context.Context) (int, error) {
	return len(f.byID), nil
}

func newTestService(repo Repository) *Service {
	return NewService(repo, policy.NewAdminPolicy([]string{"admin@solace.dev"}))
}

func TestCreate_UsernameDefaultsToEmailLocalPart(t *testing.T) {
	svc := newTestService(newFakeRepo())

	info, err := svc.Create(
		context.Background(),
		"Founder@Example.COM",
		"hash",
		"",
	)
	require.NoError(t, err)

	assert.Equal(t, "founder@example.com", info.Email)
	assert.Equal(t, "founder", info.Username)
}

func TestCreate_KeepsExplicitUsername(t *testing.T) {
	svc := newTestService(newFakeRepo())

	info, err := svc.Create(
		context.Background(),
		"founder@example.com",
		"hash",
		"  visionary  ",
	)
	require.NoError(t, err)

	assert.Equal(t, "visionary", info.Username)
}

func TestCreate_DuplicateEmail(t *testing.T) {
	svc := newTestService(newFakeRepo())

	_, err := svc.Create(context.Background(), "dup@example.com", "h", "")
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), "DUP@example.com", "h", "")
	assert.ErrorIs(t, err, core.ErrDuplicateKey)
}

func TestGetByEmail_IsCaseInsensitive(t *testing.T) {
	svc := newTestService(newFakeRepo())

	created, err := svc.Create(context.Background(), "ada@example.com", "h", "")
	require.NoError(t, err)

	found, err := svc.GetByEmail(context.Background(), "ADA@Example.com")
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)
}

func TestResolveAvatarURL_FallsBackToGravatar(t *testing.T) {
	svc := newTestService(newFakeRepo())

	stored := "https://cdn.example.com/me.png"
	withAvatar := &User{Email: "ada@example.com", AvatarURL: &stored}
	assert.Equal(t, stored, svc.ResolveAvatarURL(withAvatar))

	without := &User{Email: "ada@example.com"}
	resolved := svc.ResolveAvatarURL(without)
	assert.True(t, strings.HasPrefix(resolved, "https://www.gravatar.com/avatar/"))
}

func TestIsAdminEmail_UsesAllowList(t *testing.T) {
	svc := newTestService(newFakeRepo())

	assert.True(t, svc.IsAdminEmail("Admin@Solace.dev"))
	assert.False(t, svc.IsAdminEmail("someone@example.com"))
}

func TestListFounders_ResolvesDisplayIdentity(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestService(repo)

	_, err := svc.Create(context.Background(), "ada@example.com", "h", "")
	require.NoError(t, err)

	founders, err := svc.ListFounders(context.Background())
	require.NoError(t, err)
	require.Len(t, founders, 1)

	assert.Equal(t, "ada", founders[0].Username)
	assert.NotEmpty(t, founders[0].AvatarURL)
}

func TestUpdateProfile_ClearsAvatarOnEmptyString(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestService(repo)

	created, err := svc.Create(context.Background(), "ada@example.com", "h", "")
	require.NoError(t, err)

	avatar := "https://cdn.example.com/me.png"
	updated, err := svc.UpdateProfile(
		context.Background(),
		created.ID,
		UpdateProfileRequest{AvatarURL: &avatar},
	)
	require.NoError(t, err)
	require.NotNil(t, updated.AvatarURL)

	empty := ""
	updated, err = svc.UpdateProfile(
		context.Background(),
		created.ID,
		UpdateProfileRequest{AvatarURL: &empty},
	)
	require.NoError(t, err)
	assert.Nil(t, updated.AvatarURL)
}

func TestDeleteUser_LeavesNoRecord(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestService(repo)

	created, err := svc.Create(context.Background(), "gone@example.com", "h", "")
	require.NoError(t, err)

	require.NoError(t, svc.DeleteUser(context.Background(), created.ID))

	_, err = svc.GetByID(context.Background(), created.ID)
	assert.ErrorIs(t, err, core.ErrNotFound)
}

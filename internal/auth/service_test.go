// AngelaMos | 2026
// service_test.go

package auth

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/solacehq/solace/internal/config"
	"github.com/solacehq/solace/internal/core"
	"github.com/solacehq/solace/internal/policy"
)

type fakeTokenRepo struct {
	byID map[string]*RefreshToken
}

func newFakeTokenRepo() *fakeTokenRepo {
	return &fakeTokenRepo{byID: make(map[string]*RefreshToken)}
}

func (f *fakeTokenRepo) Create(_ context.Context, token *RefreshToken) error {
	token.CreatedAt = time.Now().UTC()
	copied := *token
	f.byID[token.ID] = &copied
	return nil
}

func (f *fakeTokenRepo) FindByHash(
	_ context.Context,
	tokenHash string,
) (*RefreshToken, error) {
	for _, t := range f.byID {
		if t.TokenHash == tokenHash {
			copied := *t
			return &copied, nil
		}
	}
	return nil, core.ErrNotFound
}

func (f *fakeTokenRepo) MarkAsUsed(
	_ context.Context,
	id, replacedByID string,
) error {
	t, ok := f.byID[id]
	if !ok {
		return core.ErrNotFound
	}
	now := time.Now().UTC()
	t.IsUsed = true
	t.UsedAt = &now
	t.ReplacedByID = &replacedByID
	return nil
}

func (f *fakeTokenRepo) RevokeByID(_ context.Context, id string) error {
	t, ok := f.byID[id]
	if !ok {
		return core.ErrNotFound
	}
	now := time.Now().UTC()
	t.RevokedAt = &now
	return nil
}

func (f *fakeTokenRepo) RevokeByFamilyID(
	_ context.Context,
	familyID string,
) error {
	now := time.Now().UTC()
	for _, t := range f.byID {
		if t.FamilyID == familyID {
			t.RevokedAt = &now
		}
	}
	return nil
}

func (f *fakeTokenRepo) RevokeAllForUser(
	_ context.Context,
	userID string,
) error {
	now := time.Now().UTC()
	for _, t := range f.byID {
		if t.UserID == userID {
			t.RevokedAt = &now
		}
	}
	return nil
}

func (f *fakeTokenRepo) GetActiveSessionsForUser(
	_ context.Context,
	userID string,
) ([]RefreshToken, error) {
	var out []RefreshToken
	for _, t := range f.byID {
		if t.UserID == userID && t.IsValid() {
			out = append(out, *t)
		}
	}
	return out, nil
}

func (f *fakeTokenRepo) DeleteExpired(_ context.Context) (int64, error) {
	var deleted int64
	for id, t := range f.byID {
		if t.IsExpired() {
			delete(f.byID, id)
			deleted++
		}
	}
	return deleted, nil
}

type fakeProvider struct {
	byID map[string]*UserInfo
}

func newFakeProvider() *fakeProvider {
	return &fakeProvider{byID: make(map[string]*UserInfo)}
}

func (f *fakeProvider) add(t *testing.T, email, password string) *UserInfo {
	t.Helper()
	hash, err := core.HashPassword(password)
	require.NoError(t, err)
	u := &UserInfo{
		ID:           uuid.New().String(),
		Email:        email,
		Username:     "tester",
		PasswordHash: hash,
		CreatedAt:    time.Now().UTC(),
	}
	f.byID[u.ID] = u
	return u
}

func (f *fakeProvider) GetByEmail(
	_ context.Context,
	email string,
) (*UserInfo, error) {
	for _, u := range f.byID {
		if u.Email == email {
			copied := *u
			return &copied, nil
		}
	}
	return nil, core.ErrNotFound
}

func (f *fakeProvider) GetByID(
	_ context.Context,
	id string,
) (*UserInfo, error) {
	u, ok := f.byID[id]
	if !ok {
		return nil, core.ErrNotFound
	}
	copied := *u
	return &copied, nil
}

func (f *fakeProvider) Create(
	_ context.Context,
	email, passwordHash, username string,
) (*UserInfo, error) {
	u := &UserInfo{
		ID:           uuid.New().String(),
		Email:        email,
		Username:     username,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now().UTC(),
	}
	f.byID[u.ID] = u
	return u, nil
}

func (f *fakeProvider) IncrementTokenVersion(
	_ context.Context,
	userID string,
) error {
	u, ok := f.byID[userID]
	if !ok {
		return core.ErrNotFound
	}
	u.TokenVersion++
	return nil
}

func (f *fakeProvider) UpdatePassword(
	_ context.Context,
	userID, passwordHash string,
) error {
	u, ok := f.byID[userID]
	if !ok {
		return core.ErrNotFound
	}
	u.PasswordHash = passwordHash
	return nil
}

type fakeBlacklist struct {
	entries map[string]time.Duration
}

func newFakeBlacklist() *fakeBlacklist {
	return &fakeBlacklist{entries: make(map[string]time.Duration)}
}

func (f *fakeBlacklist) Add(
	_ context.Context,
	jti string,
	ttl time.Duration,
) error {
	f.entries[jti] = ttl
	return nil
}

func (f *fakeBlacklist) Contains(
	_ context.Context,
	jti string,
) (bool, error) {
	_, ok := f.entries[jti]
	return ok, nil
}

func newTestJWTManager(t *testing.T) *JWTManager {
	t.Helper()

	dir := t.TempDir()
	privatePath := filepath.Join(dir, "ec_private.pem")
	publicPath := filepath.Join(dir, "ec_public.pem")
	require.NoError(t, GenerateKeyPair(privatePath, publicPath))

	manager, err := NewJWTManager(config.JWTConfig{
		PrivateKeyPath:     privatePath,
		PublicKeyPath:      publicPath,
		AccessTokenExpire:  15 * time.Minute,
		RefreshTokenExpire: 168 * time.Hour,
		Issuer:             "solace",
		Audience:           "solace-api",
	})
	require.NoError(t, err)
	return manager
}

type authFixture struct {
	svc       *Service
	repo      *fakeTokenRepo
	provider  *fakeProvider
	blacklist *fakeBlacklist
}

func newAuthFixture(t *testing.T) *authFixture {
	t.Helper()

	repo := newFakeTokenRepo()
	provider := newFakeProvider()
	blacklist := newFakeBlacklist()
	admins := policy.NewAdminPolicy([]string{"admin@solace.dev"})
	svc := NewService(repo, newTestJWTManager(t), provider, admins, blacklist)

	return &authFixture{
		svc:       svc,
		repo:      repo,
		provider:  provider,
		blacklist: blacklist,
	}
}

func TestVerifyAccessToken_AcceptsFreshLogin(t *testing.T) {
	fx := newAuthFixture(t)
	user := fx.provider.add(t, "ada@example.com", "hunter22")

	resp, err := fx.svc.Login(
		context.Background(),
		LoginRequest{Email: user.Email, Password: "hunter22"},
		"test-agent", "127.0.0.1",
	)
	require.NoError(t, err)

	claims, err := fx.svc.VerifyAccessToken(
		context.Background(),
		resp.Tokens.AccessToken,
	)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, user.Email, claims.Email)
	assert.NotEmpty(t, claims.JTI)
	assert.False(t, claims.ExpiresAt.IsZero())
}

func TestLogout_InvalidatesAccessTokenImmediately(t *testing.T) {
	fx := newAuthFixture(t)
	user := fx.provider.add(t, "ada@example.com", "hunter22")

	resp, err := fx.svc.Login(
		context.Background(),
		LoginRequest{Email: user.Email, Password: "hunter22"},
		"test-agent", "127.0.0.1",
	)
	require.NoError(t, err)

	claims, err := fx.svc.VerifyAccessToken(
		context.Background(),
		resp.Tokens.AccessToken,
	)
	require.NoError(t, err)

	err = fx.svc.Logout(context.Background(), resp.Tokens.RefreshToken, claims)
	require.NoError(t, err)

	// The access token is structurally valid for another 15 minutes, yet
	// verification must reject it the moment logout completes.
	_, err = fx.svc.VerifyAccessToken(
		context.Background(),
		resp.Tokens.AccessToken,
	)
	assert.ErrorIs(t, err, core.ErrTokenRevoked)

	// The refresh half is dead too.
	_, err = fx.svc.Refresh(
		context.Background(),
		resp.Tokens.RefreshToken,
		"test-agent", "127.0.0.1",
	)
	assert.ErrorIs(t, err, core.ErrTokenRevoked)
}

func TestLogout_RejectsAnotherUsersRefreshToken(t *testing.T) {
	fx := newAuthFixture(t)
	owner := fx.provider.add(t, "owner@example.com", "hunter22")
	thief := fx.provider.add(t, "thief@example.com", "hunter22")

	ownerResp, err := fx.svc.Login(
		context.Background(),
		LoginRequest{Email: owner.Email, Password: "hunter22"},
		"test-agent", "127.0.0.1",
	)
	require.NoError(t, err)

	thiefResp, err := fx.svc.Login(
		context.Background(),
		LoginRequest{Email: thief.Email, Password: "hunter22"},
		"test-agent", "127.0.0.1",
	)
	require.NoError(t, err)

	thiefClaims, err := fx.svc.VerifyAccessToken(
		context.Background(),
		thiefResp.Tokens.AccessToken,
	)
	require.NoError(t, err)

	err = fx.svc.Logout(
		context.Background(),
		ownerResp.Tokens.RefreshToken,
		thiefClaims,
	)
	assert.ErrorIs(t, err, core.ErrForbidden)

	// The owner's session is untouched.
	ownerClaims, err := fx.svc.VerifyAccessToken(
		context.Background(),
		ownerResp.Tokens.AccessToken,
	)
	require.NoError(t, err)
	assert.Equal(t, owner.ID, ownerClaims.UserID)
}

func TestLogoutAll_RejectsOutstandingAccessTokens(t *testing.T) {
	fx := newAuthFixture(t)
	user := fx.provider.add(t, "ada@example.com", "hunter22")

	resp, err := fx.svc.Login(
		context.Background(),
		LoginRequest{Email: user.Email, Password: "hunter22"},
		"test-agent", "127.0.0.1",
	)
	require.NoError(t, err)

	require.NoError(t, fx.svc.LogoutAll(context.Background(), user.ID))

	// token_version in the claims now predates the user's version.
	_, err = fx.svc.VerifyAccessToken(
		context.Background(),
		resp.Tokens.AccessToken,
	)
	assert.ErrorIs(t, err, core.ErrTokenRevoked)
}

func TestRevokeAccessToken_SkipsExpiredTokens(t *testing.T) {
	fx := newAuthFixture(t)

	err := fx.svc.RevokeAccessToken(
		context.Background(),
		"stale-jti",
		time.Now().Add(-time.Minute),
	)
	require.NoError(t, err)
	assert.Empty(t, fx.blacklist.entries, "expired tokens need no blacklist entry")
}

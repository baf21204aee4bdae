package session

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeStore is an in-memory state.Repository for session tests.
type fakeStore struct {
	values map[string]string
}

func newFakeStore() *fakeStore {
	return &fakeStore{values: make(map[string]string)}
}

func (f *fakeStore) Get(ctx context.Context, key string) (string, error) {
	return f.values[key], nil
}

func (f *fakeStore) Set(ctx context.Context, key string, value string) error {
	f.values[key] = value
	return nil
}

func (f *fakeStore) Delete(ctx context.Context, key string) error {
	delete(f.values, key)
	return nil
}

func (f *fakeStore) DeleteMany(ctx context.Context, keys ...string) error {
	for _, k := range keys {
		delete(f.values, k)
	}
	return nil
}

func (f *fakeStore) Clear(ctx context.Context) error {
	f.values = make(map[string]string)
	return nil
}

func liveToken(t *testing.T) string {
	t.Helper()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	s, err := tok.SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return s
}

func deadToken(t *testing.T) string {
	t.Helper()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"exp": time.Now().Add(-time.Hour).Unix(),
	})
	s, err := tok.SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return s
}

func TestNew_StartsDisconnected(t *testing.T) {
	s := New(newFakeStore())

	assert.False(t, s.Connected())
	assert.Empty(t, s.Identity())
	assert.Empty(t, s.Credential())
	assert.Equal(t, RoleUser, s.Role())
	assert.Nil(t, s.ShopProfile())
}

func TestSession_SettersMirrorToStorage(t *testing.T) {
	ctx := context.Background()
	store := newFakeStore()
	s := New(store)

	require.NoError(t, s.SetIdentity(ctx, "0x1111111111111111111111111111111111111111"))
	require.NoError(t, s.SetCredential(ctx, "tok"))
	require.NoError(t, s.SetRole(ctx, RoleMerchant))
	require.NoError(t, s.SetShopProfile(ctx, &ShopProfile{ShopName: "NFT corner", ShopStatus: ShopStatusApproved}))

	assert.Equal(t, "0x1111111111111111111111111111111111111111", store.values["identity"])
	assert.Equal(t, "tok", store.values["credential"])
	assert.Equal(t, "merchant", store.values["role"])
	assert.Contains(t, store.values["merchantProfile"], "NFT corner")
}

func TestSession_RestoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := newFakeStore()

	first := New(store)
	token := liveToken(t)
	require.NoError(t, first.SetIdentity(ctx, "0x2222222222222222222222222222222222222222"))
	require.NoError(t, first.SetCredential(ctx, token))
	require.NoError(t, first.SetRole(ctx, RoleMerchant))
	require.NoError(t, first.SetShopProfile(ctx, &ShopProfile{ShopName: "shop", ShopStatus: ShopStatusPending}))
	first.SetConnected(true)

	// fresh process over the same storage
	second := New(store)
	require.NoError(t, second.Restore(ctx))

	assert.True(t, second.Connected())
	assert.Equal(t, "0x2222222222222222222222222222222222222222", second.Identity())
	assert.Equal(t, token, second.Credential())
	assert.Equal(t, RoleMerchant, second.Role())
	require.NotNil(t, second.ShopProfile())
	assert.Equal(t, "shop", second.ShopProfile().ShopName)
}

func TestSession_RestoreMissingCredential(t *testing.T) {
	ctx := context.Background()
	store := newFakeStore()
	store.values["identity"] = "0xabc"

	s := New(store)
	require.NoError(t, s.Restore(ctx))

	assert.False(t, s.Connected())
	assert.Empty(t, s.Identity())
}

func TestSession_RestoreExpiredDiscardsStoredCopy(t *testing.T) {
	ctx := context.Background()
	store := newFakeStore()
	store.values["identity"] = "0xabc"
	store.values["credential"] = deadToken(t)
	store.values["role"] = "merchant"
	store.values["merchantProfile"] = `{"shopName":"x"}`

	s := New(store)
	require.NoError(t, s.Restore(ctx))

	assert.False(t, s.Connected())
	assert.Empty(t, s.Identity())
	assert.Equal(t, RoleUser, s.Role())
	assert.Empty(t, store.values, "expired restore must wipe every stored key")
}

func TestSession_RestoreCorruptShopProfile(t *testing.T) {
	ctx := context.Background()
	store := newFakeStore()
	store.values["identity"] = "0xabc"
	store.values["credential"] = liveToken(t)
	store.values["role"] = "merchant"
	store.values["merchantProfile"] = `{not json`

	s := New(store)
	require.NoError(t, s.Restore(ctx))

	assert.True(t, s.Connected())
	assert.Nil(t, s.ShopProfile(), "corrupt profile is dropped")
}

func TestSession_LogoutIdempotent(t *testing.T) {
	ctx := context.Background()
	store := newFakeStore()
	s := New(store)

	require.NoError(t, s.SetIdentity(ctx, "0xabc"))
	require.NoError(t, s.SetCredential(ctx, liveToken(t)))
	require.NoError(t, s.SetRole(ctx, RoleAdmin))
	s.SetConnected(true)

	require.NoError(t, s.Logout(ctx))
	require.NoError(t, s.Logout(ctx), "second logout must be a no-op")

	assert.False(t, s.Connected())
	assert.Empty(t, s.Identity())
	assert.Empty(t, s.Credential())
	assert.Equal(t, RoleUser, s.Role())
	assert.Nil(t, s.ShopProfile())
	assert.Empty(t, store.values)
}

func TestSession_ShortIdentity(t *testing.T) {
	ctx := context.Background()
	s := New(newFakeStore())

	assert.Empty(t, s.ShortIdentity())

	require.NoError(t, s.SetIdentity(ctx, "0x12345678901234567890123456789012345678ab"))
	assert.Equal(t, "0x1234...78ab", s.ShortIdentity())

	require.NoError(t, s.SetIdentity(ctx, "0xshort"))
	assert.Equal(t, "0xshort", s.ShortIdentity())
}

func TestSession_RolePredicates(t *testing.T) {
	ctx := context.Background()
	s := New(newFakeStore())

	assert.True(t, s.IsUser())

	require.NoError(t, s.SetRole(ctx, RoleMerchant))
	assert.True(t, s.IsMerchant())
	assert.False(t, s.IsUser())

	require.NoError(t, s.SetRole(ctx, RoleAdmin))
	assert.True(t, s.IsAdmin())
}

func TestParseRole_UnknownDefaultsToUser(t *testing.T) {
	assert.Equal(t, RoleUser, ParseRole("superuser"))
	assert.Equal(t, RoleUser, ParseRole(""))
	assert.Equal(t, RoleMerchant, ParseRole("merchant"))
	assert.Equal(t, RoleAdmin, ParseRole("admin"))
}

func TestSession_SetShopProfileNilRemovesEntry(t *testing.T) {
	ctx := context.Background()
	store := newFakeStore()
	s := New(store)

	require.NoError(t, s.SetShopProfile(ctx, &ShopProfile{ShopName: "x"}))
	require.Contains(t, store.values, "merchantProfile")

	require.NoError(t, s.SetShopProfile(ctx, nil))
	assert.NotContains(t, store.values, "merchantProfile")
	assert.False(t, s.HasShop())
}

func TestSession_Snapshot(t *testing.T) {
	ctx := context.Background()
	s := New(newFakeStore())

	snap := s.Snapshot()
	assert.False(t, snap.Connected)
	assert.Equal(t, RoleUser, snap.Role)

	require.NoError(t, s.SetRole(ctx, RoleMerchant))
	s.SetConnected(true)

	snap = s.Snapshot()
	assert.True(t, snap.Connected)
	assert.Equal(t, RoleMerchant, snap.Role)
}

package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lottery-miniapp-client/internal/models"
	"lottery-miniapp-client/internal/services"
)

func signedToken(t *testing.T, exp time.Time) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "alice",
		"exp": exp.Unix(),
	})
	s, err := token.SignedString([]byte("server-secret"))
	require.NoError(t, err)
	return s
}

func TestSessionStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := services.NewSessionStore(services.NewMemoryStorage(), nil)

	session, err := store.CheckLoginStatus(ctx)
	require.NoError(t, err)
	assert.Nil(t, session)

	want := models.Session{Token: "abc", User: models.User{Username: "alice", Balance: 100.5}}
	require.NoError(t, store.Save(ctx, want))

	got, err := store.CheckLoginStatus(ctx)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, want, *got)

	user, err := store.UpdateBalance(ctx, 42)
	require.NoError(t, err)
	assert.Equal(t, 42.0, user.Balance)

	got, err = store.Current(ctx)
	require.NoError(t, err)
	assert.Equal(t, "abc", got.Token)
	assert.Equal(t, 42.0, got.User.Balance)

	require.NoError(t, store.Clear(ctx))
	_, err = store.Current(ctx)
	assert.ErrorIs(t, err, services.ErrNoSession)
}

func TestSessionStoreRequiresBothKeys(t *testing.T) {
	ctx := context.Background()
	storage := services.NewMemoryStorage()
	store := services.NewSessionStore(storage, nil)

	require.NoError(t, storage.SetMany(ctx, map[string]string{services.KeyAuthToken: "abc"}))

	session, err := store.CheckLoginStatus(ctx)
	require.NoError(t, err)
	assert.Nil(t, session)

	_, err = store.UpdateBalance(ctx, 1)
	assert.ErrorIs(t, err, services.ErrNoSession)
}

func TestSessionStoreDiscardsExpiredJWT(t *testing.T) {
	ctx := context.Background()
	storage := services.NewMemoryStorage()
	store := services.NewSessionStore(storage, nil)

	require.NoError(t, store.Save(ctx, models.Session{
		Token: signedToken(t, time.Now().Add(-time.Hour)),
		User:  models.User{Username: "alice"},
	}))

	_, err := store.Current(ctx)
	assert.ErrorIs(t, err, services.ErrSessionExpired)

	session, err := store.CheckLoginStatus(ctx)
	require.NoError(t, err)
	assert.Nil(t, session)

	_, err = storage.Get(ctx, services.KeyUserInfo)
	assert.ErrorIs(t, err, services.ErrNotFound)
}

func TestSessionStoreKeepsLiveJWT(t *testing.T) {
	ctx := context.Background()
	store := services.NewSessionStore(services.NewMemoryStorage(), nil)

	token := signedToken(t, time.Now().Add(time.Hour))
	require.NoError(t, store.Save(ctx, models.Session{Token: token, User: models.User{Username: "alice"}}))

	session, err := store.CheckLoginStatus(ctx)
	require.NoError(t, err)
	require.NotNil(t, session)
	assert.Equal(t, token, session.Token)
}

func TestSessionStoreCorruptedProfile(t *testing.T) {
	ctx := context.Background()
	storage := services.NewMemoryStorage()
	store := services.NewSessionStore(storage, nil)

	require.NoError(t, storage.SetMany(ctx, map[string]string{
		services.KeyAuthToken: "abc",
		services.KeyUserInfo:  "[1,2",
	}))

	_, err := store.Current(ctx)
	assert.ErrorIs(t, err, services.ErrSessionCorrupted)

	session, err := store.CheckLoginStatus(ctx)
	require.NoError(t, err)
	assert.Nil(t, session)

	_, err = storage.Get(ctx, services.KeyAuthToken)
	assert.ErrorIs(t, err, services.ErrNotFound)
}

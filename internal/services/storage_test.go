package services_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lottery-miniapp-client/internal/services"
)

func exerciseStorage(t *testing.T, s services.Storage) {
	t.Helper()
	ctx := context.Background()

	_, err := s.Get(ctx, services.KeyAuthToken)
	assert.ErrorIs(t, err, services.ErrNotFound)

	require.NoError(t, s.SetMany(ctx, map[string]string{
		services.KeyAuthToken: "abc",
		services.KeyUserInfo:  `{"username":"alice","balance":1}`,
	}))

	token, err := s.Get(ctx, services.KeyAuthToken)
	require.NoError(t, err)
	assert.Equal(t, "abc", token)

	require.NoError(t, s.Delete(ctx, services.KeyAuthToken, services.KeyUserInfo))
	for _, key := range []string{services.KeyAuthToken, services.KeyUserInfo} {
		_, err := s.Get(ctx, key)
		assert.ErrorIs(t, err, services.ErrNotFound, key)
	}
}

func TestMemoryStorage(t *testing.T) {
	exerciseStorage(t, services.NewMemoryStorage())
}

func TestFileStorage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")

	s, err := services.NewFileStorage(path)
	require.NoError(t, err)
	exerciseStorage(t, s)
}

func TestFileStorageSurvivesRestart(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "session.json")

	s, err := services.NewFileStorage(path)
	require.NoError(t, err)
	require.NoError(t, s.SetMany(ctx, map[string]string{services.KeyAuthToken: "abc", services.KeyUserInfo: "{}"}))

	reopened, err := services.NewFileStorage(path)
	require.NoError(t, err)
	token, err := reopened.Get(ctx, services.KeyAuthToken)
	require.NoError(t, err)
	assert.Equal(t, "abc", token)

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp files are renamed away")
}

func TestFileStorageIgnoresUnreadableFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	require.NoError(t, os.WriteFile(path, []byte("not json"), 0o600))

	s, err := services.NewFileStorage(path)
	require.NoError(t, err)

	_, err = s.Get(context.Background(), services.KeyAuthToken)
	assert.ErrorIs(t, err, services.ErrNotFound)
}

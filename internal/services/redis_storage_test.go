package services_test

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"lottery-miniapp-client/internal/services"
)

func TestRedisStorage(t *testing.T) {
	ctx := context.Background()

	storage, err := services.NewRedisStorage(ctx, "localhost:6379", 0, "test-"+uuid.NewString())
	if err != nil {
		t.Skipf("Redis not available: %v", err)
	}
	defer storage.Close()

	exerciseStorage(t, storage)
}

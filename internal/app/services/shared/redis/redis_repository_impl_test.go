package redis

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// These tests talk to a real server and only run when REDIS_TEST_ADDR is set,
// e.g. REDIS_TEST_ADDR=localhost:6379.
func newTestRepository(t *testing.T) (*redisRepository, context.Context) {
	t.Helper()
	addr := os.Getenv("REDIS_TEST_ADDR")
	if addr == "" {
		t.Skip("REDIS_TEST_ADDR not set")
	}

	client := redis.NewClient(&redis.Options{Addr: addr})
	ctx := context.Background()
	require.NoError(t, client.Ping(ctx).Err())
	t.Cleanup(func() { client.Close() })

	return &redisRepository{client: client}, ctx
}

func TestRedisRepository_SetGetDelete(t *testing.T) {
	repo, ctx := newTestRepository(t)
	key := "ehr-client:test:" + t.Name()

	err := repo.Set(ctx, key, map[string]string{"token": "tok123"}, time.Minute)
	require.NoError(t, err)

	data, err := repo.Get(ctx, key)
	require.NoError(t, err)
	assert.JSONEq(t, `{"token":"tok123"}`, data)

	require.NoError(t, repo.Delete(ctx, key))

	data, err = repo.Get(ctx, key)
	require.NoError(t, err)
	assert.Empty(t, data)
}

func TestRedisRepository_Expiry(t *testing.T) {
	repo, ctx := newTestRepository(t)
	key := "ehr-client:test:" + t.Name()

	require.NoError(t, repo.Set(ctx, key, "value", 50*time.Millisecond))
	time.Sleep(150 * time.Millisecond)

	data, err := repo.Get(ctx, key)
	require.NoError(t, err)
	assert.Empty(t, data)
}

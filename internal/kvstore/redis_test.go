package kvstore

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRedisStore(t *testing.T) (*RedisStore, *miniredis.Miniredis) {
	t.Helper()

	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	store := NewRedisStoreFromClient(client)
	t.Cleanup(func() { _ = store.Close() })

	return store, mr
}

func TestRedisStore_SetGetDelete(t *testing.T) {
	store, _ := newTestRedisStore(t)
	ctx := context.Background()

	require.NoError(t, store.SetWithTTL(ctx, "refresh:42", "tok", time.Minute))

	v, err := store.Get(ctx, "refresh:42")
	require.NoError(t, err)
	assert.Equal(t, "tok", v)

	require.NoError(t, store.Delete(ctx, "refresh:42"))

	_, err = store.Get(ctx, "refresh:42")
	assert.ErrorIs(t, err, ErrNotFound)

	// deleting again is not an error
	assert.NoError(t, store.Delete(ctx, "refresh:42"))
}

func TestRedisStore_ExpiryLooksLikeAbsence(t *testing.T) {
	store, mr := newTestRedisStore(t)
	ctx := context.Background()

	require.NoError(t, store.SetWithTTL(ctx, "otp:login:+1555", "123456", 5*time.Minute))

	mr.FastForward(5*time.Minute + time.Second)

	_, err := store.Get(ctx, "otp:login:+1555")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRedisStore_IncrWindow(t *testing.T) {
	store, mr := newTestRedisStore(t)
	ctx := context.Background()

	n, err := store.Incr(ctx, "email:rate:a@x.com", time.Hour)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	n, err = store.Incr(ctx, "email:rate:a@x.com", time.Hour)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)

	mr.FastForward(time.Hour + time.Second)

	n, err = store.Incr(ctx, "email:rate:a@x.com", time.Hour)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n, "counter restarts after the window")
}

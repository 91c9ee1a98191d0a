package cache

import (
	"context"
	"testing"
	"time"

	mr "github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

func newTestCache(t *testing.T) *Cache {
	t.Helper()
	m, err := mr.Run()
	require.NoError(t, err)
	t.Cleanup(m.Close)
	client := redis.NewClient(&redis.Options{Addr: m.Addr()})
	return New(client, "test:", time.Minute)
}

func TestSetGetInvalidate(t *testing.T) {
	c := newTestCache(t)
	ctx := context.Background()

	type payload struct {
		Title string `json:"title"`
	}

	var out []payload
	hit, err := c.Get(ctx, "projects", &out)
	require.NoError(t, err)
	require.False(t, hit)

	in := []payload{{Title: "a"}, {Title: "b"}}
	require.NoError(t, c.Set(ctx, "projects", in))

	hit, err = c.Get(ctx, "projects", &out)
	require.NoError(t, err)
	require.True(t, hit)
	require.Equal(t, in, out)

	require.NoError(t, c.Invalidate(ctx, "projects"))
	hit, err = c.Get(ctx, "projects", &out)
	require.NoError(t, err)
	require.False(t, hit)
}

func TestNilCacheIsNoop(t *testing.T) {
	var c *Cache
	ctx := context.Background()

	var out string
	hit, err := c.Get(ctx, "k", &out)
	require.NoError(t, err)
	require.False(t, hit)
	require.NoError(t, c.Set(ctx, "k", "v"))
	require.NoError(t, c.Invalidate(ctx, "k"))
}

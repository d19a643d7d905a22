package cache

import (
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/registration-service/internal/models"
)

func newTestCache(t *testing.T) (*Cache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	return &Cache{Db: redis.NewClient(&redis.Options{Addr: mr.Addr()})}, mr
}

func TestCache_SetAndGet(t *testing.T) {
	c, _ := newTestCache(t)

	users := []*models.User{
		{ID: "1700000000000", FirstName: "John", Email: "john@example.com"},
	}
	require.NoError(t, c.Set("users:list:20:0", users, time.Minute))

	var got []*models.User
	found, err := c.Get("users:list:20:0", &got)
	require.NoError(t, err)
	require.True(t, found)
	require.Len(t, got, 1)
	assert.Equal(t, "john@example.com", got[0].Email)
}

func TestCache_GetMissing(t *testing.T) {
	c, _ := newTestCache(t)

	var got []*models.User
	found, err := c.Get("users:list:20:0", &got)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestCache_Invalidate(t *testing.T) {
	c, _ := newTestCache(t)

	require.NoError(t, c.Set("users:list:20:0", "value", time.Minute))
	require.NoError(t, c.Invalidate("users:list:20:0"))

	var got string
	found, err := c.Get("users:list:20:0", &got)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestCache_Expiration(t *testing.T) {
	c, mr := newTestCache(t)

	require.NoError(t, c.Set("users:list:20:0", "value", time.Minute))
	mr.FastForward(2 * time.Minute)

	var got string
	found, err := c.Get("users:list:20:0", &got)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestCache_GetCorruptedValue(t *testing.T) {
	c, mr := newTestCache(t)

	require.NoError(t, mr.Set("users:list:20:0", "not a json"))

	var got []*models.User
	found, err := c.Get("users:list:20:0", &got)
	require.Error(t, err)
	assert.False(t, found)
}

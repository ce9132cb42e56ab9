package cache

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

// A nil *Cache must behave as a disabled cache so the server can run without redis.
func TestNilCacheIsNoOp(t *testing.T) {
	var c *Cache
	ctx := context.Background()

	var dest map[string]int
	hit, err := c.GetJSON(ctx, DashboardKey(), &dest)
	assert.NoError(t, err)
	assert.False(t, hit)

	assert.NoError(t, c.SetJSON(ctx, DashboardKey(), map[string]int{"x": 1}))
	assert.NoError(t, c.Delete(ctx, DashboardKey()))
}

package ratelimit_test

import (
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/podiumd/podium/internal/rest/middleware/ratelimit"
	"github.com/podiumd/podium/internal/setup/config"
	"github.com/redis/rueidis"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func setupTest(t *testing.T, cfg *config.RateLimit) (*ratelimit.Middleware, *miniredis.Miniredis) {
	t.Helper()

	mr, err := miniredis.Run()
	require.NoError(t, err)

	client, err := rueidis.NewClient(rueidis.ClientOption{
		InitAddress:  []string{mr.Addr()},
		DisableCache: true,
	})
	require.NoError(t, err)

	t.Cleanup(func() {
		client.Close()
		mr.Close()
	})

	return ratelimit.New(cfg, client, zap.NewNop()), mr
}

func TestAllowWithinLimit(t *testing.T) {
	t.Parallel()

	middleware, _ := setupTest(t, &config.RateLimit{
		Enabled:       true,
		Requests:      3,
		WindowSeconds: 60,
	})

	ctx := t.Context()

	for range 3 {
		allowed, _ := middleware.Allow(ctx, "ip:10.0.0.1")
		assert.True(t, allowed)
	}
}

func TestRejectsOverLimit(t *testing.T) {
	t.Parallel()

	middleware, _ := setupTest(t, &config.RateLimit{
		Enabled:       true,
		Requests:      2,
		WindowSeconds: 60,
	})

	ctx := t.Context()

	for range 2 {
		allowed, _ := middleware.Allow(ctx, "ip:10.0.0.2")
		require.True(t, allowed)
	}

	allowed, retryAfter := middleware.Allow(ctx, "ip:10.0.0.2")
	assert.False(t, allowed)
	assert.Positive(t, retryAfter)
}

func TestClientsAreIndependent(t *testing.T) {
	t.Parallel()

	middleware, _ := setupTest(t, &config.RateLimit{
		Enabled:       true,
		Requests:      1,
		WindowSeconds: 60,
	})

	ctx := t.Context()

	allowed, _ := middleware.Allow(ctx, "ip:10.0.0.3")
	require.True(t, allowed)

	allowed, _ = middleware.Allow(ctx, "ip:10.0.0.3")
	require.False(t, allowed)

	// A different client still has its full budget.
	allowed, _ = middleware.Allow(ctx, "key:other-client")
	assert.True(t, allowed)
}

func TestWindowResets(t *testing.T) {
	t.Parallel()

	middleware, mr := setupTest(t, &config.RateLimit{
		Enabled:       true,
		Requests:      1,
		WindowSeconds: 30,
	})

	ctx := t.Context()

	allowed, _ := middleware.Allow(ctx, "ip:10.0.0.4")
	require.True(t, allowed)

	allowed, _ = middleware.Allow(ctx, "ip:10.0.0.4")
	require.False(t, allowed)

	// Expire the window.
	mr.FastForward(31 * time.Second)

	allowed, _ = middleware.Allow(ctx, "ip:10.0.0.4")
	assert.True(t, allowed)
}

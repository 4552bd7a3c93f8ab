// Package ratelimit implements a fixed-window per-client rate limit backed by
// Redis, so limits hold across multiple API server instances.
package ratelimit

import (
	"context"
	"fmt"
	"net"
	"net/http"

	"github.com/podiumd/podium/internal/rest/middleware/auth"
	"github.com/podiumd/podium/internal/setup/config"
	"github.com/redis/rueidis"
	"github.com/uptrace/bunrouter"
	"go.uber.org/zap"
)

const headerRetryAfter = "Retry-After"

// Middleware implements rate limiting for API requests.
type Middleware struct {
	client rueidis.Client
	config *config.RateLimit
	logger *zap.Logger
}

// New creates a new rate limiting middleware.
func New(config *config.RateLimit, client rueidis.Client, logger *zap.Logger) *Middleware {
	return &Middleware{
		client: client,
		config: config,
		logger: logger.Named("ratelimit"),
	}
}

// AsRESTMiddleware returns a bunrouter middleware handler for rate limiting.
func (m *Middleware) AsRESTMiddleware(next bunrouter.HandlerFunc) bunrouter.HandlerFunc {
	return func(w http.ResponseWriter, req bunrouter.Request) error {
		if !m.config.Enabled {
			return next(w, req)
		}

		allowed, retryAfter := m.Allow(req.Context(), clientIdentity(req.Request))
		if !allowed {
			if retryAfter > 0 {
				w.Header().Set(headerRetryAfter, fmt.Sprintf("%d", retryAfter))
			}

			http.Error(w, "rate limit exceeded", http.StatusTooManyRequests)

			return nil
		}

		return next(w, req)
	}
}

// Allow consumes one request from the client's current window. Returns whether
// the request may proceed and, when limited, the seconds until the window
// resets. Redis failures fail open so an outage does not take the API down.
func (m *Middleware) Allow(ctx context.Context, client string) (bool, int64) {
	key := "ratelimit:" + client

	count, err := m.client.Do(ctx, m.client.B().Incr().Key(key).Build()).AsInt64()
	if err != nil {
		m.logger.Error("Failed to increment rate limit counter", zap.Error(err))
		return true, 0
	}

	// First hit in the window starts the clock.
	if count == 1 {
		err := m.client.Do(ctx,
			m.client.B().Expire().Key(key).Seconds(int64(m.config.WindowSeconds)).Build(),
		).Error()
		if err != nil {
			m.logger.Error("Failed to set rate limit window", zap.Error(err))
		}
	}

	if count <= int64(m.config.Requests) {
		return true, 0
	}

	retryAfter, err := m.client.Do(ctx, m.client.B().Ttl().Key(key).Build()).AsInt64()
	if err != nil || retryAfter < 0 {
		retryAfter = int64(m.config.WindowSeconds)
	}

	return false, retryAfter
}

// clientIdentity keys the limit by API key when present, otherwise by the
// caller's IP address.
func clientIdentity(req *http.Request) string {
	if key := auth.KeyFromRequest(req); key != "" {
		return "key:" + key
	}

	host, _, err := net.SplitHostPort(req.RemoteAddr)
	if err != nil {
		return "ip:" + req.RemoteAddr
	}

	return "ip:" + host
}

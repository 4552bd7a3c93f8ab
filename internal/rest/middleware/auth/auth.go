// Package auth implements bearer API key authentication for the REST server.
package auth

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/podiumd/podium/internal/setup/config"
	"github.com/uptrace/bunrouter"
	"go.uber.org/zap"
)

// Middleware validates the Authorization header against the configured keys.
type Middleware struct {
	config *config.Auth
	logger *zap.Logger
}

// New creates a new authentication middleware.
func New(config *config.Auth, logger *zap.Logger) *Middleware {
	return &Middleware{
		config: config,
		logger: logger.Named("auth"),
	}
}

// AsRESTMiddleware returns a bunrouter middleware handler enforcing API keys.
func (m *Middleware) AsRESTMiddleware(next bunrouter.HandlerFunc) bunrouter.HandlerFunc {
	return func(w http.ResponseWriter, req bunrouter.Request) error {
		if !m.config.Enabled {
			return next(w, req)
		}

		key := KeyFromRequest(req.Request)
		if key == "" || !m.keyValid(key) {
			m.logger.Debug("Rejected unauthenticated request",
				zap.String("path", req.URL.Path),
				zap.String("remoteAddr", req.RemoteAddr))
			http.Error(w, "unauthorized", http.StatusUnauthorized)

			return nil
		}

		return next(w, req)
	}
}

// KeyFromRequest extracts the bearer API key from a request, if any.
func KeyFromRequest(req *http.Request) string {
	header := req.Header.Get("Authorization")
	if header == "" {
		return ""
	}

	token, ok := strings.CutPrefix(header, "Bearer ")
	if !ok {
		return ""
	}

	return strings.TrimSpace(token)
}

func (m *Middleware) keyValid(key string) bool {
	for _, candidate := range m.config.APIKeys {
		if subtle.ConstantTimeCompare([]byte(candidate), []byte(key)) == 1 {
			return true
		}
	}

	return false
}

package ratelimit

import (
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
)

// Middleware guards a route with the given store. A denied request gets
// the fixed 429 body and the wrapped handler is never invoked. Stats may
// be nil.
func Middleware(store *Store, stats StatsStore) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			key := ClientKey(req)

			allowed := store.Allow(key)
			if stats != nil {
				_ = stats.Record(req.Context(), StatsEvent{
					Key:     key,
					Allowed: allowed,
					Method:  req.Method,
					Path:    req.URL.Path,
					At:      time.Now(),
				})
			}

			if !allowed {
				return c.JSON(http.StatusTooManyRequests, map[string]interface{}{
					"message": "Too many requests, please try again later.",
					"data":    nil,
					"error":   "Rate limit exceeded",
				})
			}

			return next(c)
		}
	}
}

// ClientKey identifies the client by the host part of RemoteAddr.
// For production behind a proxy, the X-Real-IP header would be the
// identifier instead.
func ClientKey(r *http.Request) string {
	host, _, err := net.SplitHostPort(strings.TrimSpace(r.RemoteAddr))
	if err == nil && host != "" {
		return host
	}
	if r.RemoteAddr != "" {
		return r.RemoteAddr
	}
	return "unknown"
}

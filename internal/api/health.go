package api

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

// StoreClock reports the store's current time, proving it is reachable.
type StoreClock interface {
	Now(ctx context.Context) (time.Time, error)
}

type HealthHandler struct {
	store StoreClock
}

func NewHealthHandler(store StoreClock) *HealthHandler {
	return &HealthHandler{store: store}
}

// Ping probes store liveness --> GET /ping
func (h *HealthHandler) Ping(c echo.Context) error {
	now, err := h.store.Now(c.Request().Context())
	if err != nil {
		return InternalError(c)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"status": "ok",
		"time":   now.Format(time.RFC3339),
	})
}

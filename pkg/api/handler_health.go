package api

import (
	"context"
	"net/http"
	"time"

	echo "github.com/labstack/echo/v5"

	"github.com/promptlens/promptlens/pkg/database"
)

// healthHandler handles GET /health.
func (s *Server) healthHandler(c *echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	workers, depth := s.pool.Health()
	dbHealth, err := database.Health(ctx, s.db.DB())
	body := map[string]interface{}{
		"status":      "healthy",
		"database":    dbHealth,
		"workers":     workers,
		"queue_depth": depth,
	}
	if err != nil {
		body["status"] = "unhealthy"
		body["error"] = err.Error()
		return c.JSON(http.StatusServiceUnavailable, body)
	}
	return c.JSON(http.StatusOK, body)
}

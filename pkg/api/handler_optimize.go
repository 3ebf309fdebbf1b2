package api

import (
	"errors"
	"net/http"

	echo "github.com/labstack/echo/v5"

	"github.com/promptlens/promptlens/pkg/optimizer"
)

// OptimizeTaskRequest is the body of POST /api/v1/tasks/:id/optimize.
type OptimizeTaskRequest struct {
	MaxIterations    int      `json:"max_iterations"`
	ChangeableFields []string `json:"changeable_fields"`
}

// optimizeTaskHandler handles POST /api/v1/tasks/:id/optimize. The loop runs
// synchronously; each iteration evaluates a freshly proposed variant.
func (s *Server) optimizeTaskHandler(c *echo.Context) error {
	var req OptimizeTaskRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	result, err := s.optimizer.Run(c.Request().Context(), optimizer.Request{
		TaskID:           c.Param("id"),
		MaxIterations:    req.MaxIterations,
		ChangeableFields: req.ChangeableFields,
	})
	if err != nil {
		if errors.Is(err, optimizer.ErrAlreadyRunning) {
			return echo.NewHTTPError(http.StatusConflict, err.Error())
		}
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, result)
}

package api

import (
	"net/http"

	echo "github.com/labstack/echo/v5"

	"github.com/promptlens/promptlens/pkg/services"
)

// ExecuteImplementationRequest is the body of POST
// /api/v1/implementations/:id/execute.
type ExecuteImplementationRequest struct {
	Variables map[string]string `json:"variables"`
}

// executeImplementationHandler handles POST /api/v1/implementations/:id/execute.
func (s *Server) executeImplementationHandler(c *echo.Context) error {
	var req ExecuteImplementationRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	res, err := s.executions.ExecuteImplementation(c.Request().Context(), c.Param("id"), req.Variables, services.ExecutionContext{})
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusCreated, res)
}

// ExecuteTaskRequest is the body of POST /api/v1/tasks/:id/execute. Any
// override runs a temp variant instead of the production implementation.
type ExecuteTaskRequest struct {
	Variables       map[string]string `json:"variables"`
	Model           *string           `json:"model"`
	Temperature     *float64          `json:"temperature"`
	MaxOutputTokens *int              `json:"max_output_tokens"`
}

// executeTaskHandler handles POST /api/v1/tasks/:id/execute.
func (s *Server) executeTaskHandler(c *echo.Context) error {
	var req ExecuteTaskRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	res, err := s.executions.ExecuteTask(c.Request().Context(), c.Param("id"), req.Variables, services.TaskExecutionOverrides{
		Model:           req.Model,
		Temperature:     req.Temperature,
		MaxOutputTokens: req.MaxOutputTokens,
	})
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusCreated, res)
}

// getExecutionResultHandler handles GET /api/v1/execution-results/:id.
func (s *Server) getExecutionResultHandler(c *echo.Context) error {
	res, err := s.executions.GetExecutionResult(c.Request().Context(), c.Param("id"))
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, res)
}

// listExecutionResultsHandler handles GET /api/v1/tasks/:id/execution-results.
func (s *Server) listExecutionResultsHandler(c *echo.Context) error {
	results, err := s.executions.ListExecutionResults(c.Request().Context(), c.Param("id"))
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, results)
}

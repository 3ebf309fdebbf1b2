package api

import (
	"net/http"
	"strconv"
	"time"

	echo "github.com/labstack/echo/v5"

	"github.com/promptlens/promptlens/ent"
	"github.com/promptlens/promptlens/pkg/models"
	"github.com/promptlens/promptlens/pkg/services"
)

// Stats defaults for task listings.
const (
	defaultStatsPercentile = 50.0
	defaultStatsHalfLife   = 24 * time.Hour
)

// CreateTaskRequest is the body of POST /api/v1/tasks.
type CreateTaskRequest struct {
	ProjectID      string                 `json:"project_id"`
	Name           string                 `json:"name"`
	Description    string                 `json:"description"`
	Path           *string                `json:"path"`
	ResponseSchema map[string]interface{} `json:"response_schema"`
}

// TaskListItem is a task plus its traffic stats.
type TaskListItem struct {
	*ent.Task
	Stats *services.TaskStats `json:"stats"`
}

// createTaskHandler handles POST /api/v1/tasks.
func (s *Server) createTaskHandler(c *echo.Context) error {
	var req CreateTaskRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	t, err := s.tasks.CreateTask(c.Request().Context(), services.CreateTaskRequest{
		ProjectID:      req.ProjectID,
		Name:           req.Name,
		Description:    req.Description,
		Path:           req.Path,
		ResponseSchema: req.ResponseSchema,
	})
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusCreated, t)
}

// listTasksHandler handles GET /api/v1/tasks. Query params percentile and
// half_life_hours tune the per-task cost/latency stats.
func (s *Server) listTasksHandler(c *echo.Context) error {
	projectID := c.QueryParam("project_id")
	if projectID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "project_id is required")
	}

	percentile := defaultStatsPercentile
	if v := c.QueryParam("percentile"); v != "" {
		p, err := strconv.ParseFloat(v, 64)
		if err != nil || p < 0 || p > 100 {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid percentile: must be in [0,100]")
		}
		percentile = p
	}
	halfLife := defaultStatsHalfLife
	if v := c.QueryParam("half_life_hours"); v != "" {
		h, err := strconv.ParseFloat(v, 64)
		if err != nil || h <= 0 {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid half_life_hours: must be positive")
		}
		halfLife = time.Duration(h * float64(time.Hour))
	}

	tasks, err := s.tasks.ListTasks(c.Request().Context(), projectID)
	if err != nil {
		return mapServiceError(err)
	}
	items := make([]TaskListItem, 0, len(tasks))
	for _, t := range tasks {
		stats, err := s.tasks.Stats(c.Request().Context(), t.ID, percentile, halfLife)
		if err != nil {
			return mapServiceError(err)
		}
		items = append(items, TaskListItem{Task: t, Stats: stats})
	}
	return c.JSON(http.StatusOK, items)
}

// getTaskHandler handles GET /api/v1/tasks/:id.
func (s *Server) getTaskHandler(c *echo.Context) error {
	t, err := s.tasks.GetTask(c.Request().Context(), c.Param("id"))
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, t)
}

// SetProductionVersionRequest is the body of PUT
// /api/v1/tasks/:id/production-version.
type SetProductionVersionRequest struct {
	ImplementationID string `json:"implementation_id"`
}

// setProductionVersionHandler handles PUT /api/v1/tasks/:id/production-version.
func (s *Server) setProductionVersionHandler(c *echo.Context) error {
	var req SetProductionVersionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if req.ImplementationID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "implementation_id is required")
	}
	t, err := s.tasks.SetProductionVersion(c.Request().Context(), c.Param("id"), req.ImplementationID)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, t)
}

// CreateImplementationRequest is the body of POST
// /api/v1/tasks/:id/implementations.
type CreateImplementationRequest struct {
	Prompt          string                  `json:"prompt"`
	Model           string                  `json:"model"`
	Temperature     *float64                `json:"temperature"`
	Reasoning       map[string]interface{}  `json:"reasoning"`
	Tools           []models.ToolDefinition `json:"tools"`
	ToolChoice      *string                 `json:"tool_choice"`
	MaxOutputTokens int                     `json:"max_output_tokens"`
	ResponseSchema  map[string]interface{}  `json:"response_schema"`
	Major           int                     `json:"major"`
}

// createImplementationHandler handles POST /api/v1/tasks/:id/implementations.
func (s *Server) createImplementationHandler(c *echo.Context) error {
	var req CreateImplementationRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	impl, err := s.tasks.CreateImplementation(c.Request().Context(), c.Param("id"), req.Major, services.ImplementationInput{
		Prompt:          req.Prompt,
		Model:           req.Model,
		Temperature:     req.Temperature,
		Reasoning:       req.Reasoning,
		Tools:           req.Tools,
		ToolChoice:      req.ToolChoice,
		MaxOutputTokens: req.MaxOutputTokens,
		ResponseSchema:  req.ResponseSchema,
	})
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusCreated, impl)
}

// listImplementationsHandler handles GET /api/v1/tasks/:id/implementations.
func (s *Server) listImplementationsHandler(c *echo.Context) error {
	impls, err := s.tasks.ListImplementations(c.Request().Context(), c.Param("id"))
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, impls)
}

// getImplementationHandler handles GET /api/v1/implementations/:id.
func (s *Server) getImplementationHandler(c *echo.Context) error {
	impl, err := s.tasks.GetImplementation(c.Request().Context(), c.Param("id"))
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, impl)
}

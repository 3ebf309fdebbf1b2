package api

import (
	"net/http"

	echo "github.com/labstack/echo/v5"

	"github.com/promptlens/promptlens/ent"
	"github.com/promptlens/promptlens/pkg/services"
)

// GraderRequest is the body of grader create and update calls.
type GraderRequest struct {
	Name            string                 `json:"name"`
	Prompt          string                 `json:"prompt"`
	ScoreType       string                 `json:"score_type"`
	Model           string                 `json:"model"`
	Temperature     *float64               `json:"temperature"`
	Reasoning       map[string]interface{} `json:"reasoning"`
	ResponseSchema  map[string]interface{} `json:"response_schema"`
	MaxOutputTokens int                    `json:"max_output_tokens"`
	IsActive        *bool                  `json:"is_active"`
}

func (r GraderRequest) input() services.GraderInput {
	return services.GraderInput{
		Name:            r.Name,
		Prompt:          r.Prompt,
		ScoreType:       r.ScoreType,
		Model:           r.Model,
		Temperature:     r.Temperature,
		Reasoning:       r.Reasoning,
		ResponseSchema:  r.ResponseSchema,
		MaxOutputTokens: r.MaxOutputTokens,
		IsActive:        r.IsActive,
	}
}

// GraderListItem is a grader plus its usage count.
type GraderListItem struct {
	*ent.Grader
	GradeCount int `json:"grade_count"`
}

// createGraderHandler handles POST /api/v1/projects/:id/graders.
func (s *Server) createGraderHandler(c *echo.Context) error {
	var req GraderRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	g, err := s.graders.CreateGrader(c.Request().Context(), c.Param("id"), req.input())
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusCreated, g)
}

// listGradersHandler handles GET /api/v1/projects/:id/graders.
func (s *Server) listGradersHandler(c *echo.Context) error {
	graders, err := s.graders.ListGraders(c.Request().Context(), c.Param("id"))
	if err != nil {
		return mapServiceError(err)
	}
	items := make([]GraderListItem, 0, len(graders))
	for _, g := range graders {
		n, err := s.graders.GradeCount(c.Request().Context(), g.ID)
		if err != nil {
			return mapServiceError(err)
		}
		items = append(items, GraderListItem{Grader: g, GradeCount: n})
	}
	return c.JSON(http.StatusOK, items)
}

// getGraderHandler handles GET /api/v1/graders/:id.
func (s *Server) getGraderHandler(c *echo.Context) error {
	g, err := s.graders.GetGrader(c.Request().Context(), c.Param("id"))
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, g)
}

// updateGraderHandler handles PUT /api/v1/graders/:id.
func (s *Server) updateGraderHandler(c *echo.Context) error {
	var req GraderRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	g, err := s.graders.UpdateGrader(c.Request().Context(), c.Param("id"), req.input())
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, g)
}

// deleteGraderHandler handles DELETE /api/v1/graders/:id.
func (s *Server) deleteGraderHandler(c *echo.Context) error {
	if err := s.graders.DeleteGrader(c.Request().Context(), c.Param("id")); err != nil {
		return mapServiceError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

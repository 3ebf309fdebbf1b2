package api

import (
	"net/http"

	echo "github.com/labstack/echo/v5"

	"github.com/promptlens/promptlens/pkg/services"
)

// CreateGradeRequest is the body of POST /api/v1/grades. Exactly one of
// TraceID and ExecutionResultID must be set.
type CreateGradeRequest struct {
	GraderID          string  `json:"grader_id"`
	TraceID           *string `json:"trace_id"`
	ExecutionResultID *string `json:"execution_result_id"`
}

// createGradeHandler handles POST /api/v1/grades: runs the grader against
// the target and returns the persisted grade.
func (s *Server) createGradeHandler(c *echo.Context) error {
	var req CreateGradeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if req.GraderID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "grader_id is required")
	}
	gr, err := s.grades.ExecuteGrading(c.Request().Context(), req.GraderID, services.GradeTarget{
		TraceID:           req.TraceID,
		ExecutionResultID: req.ExecutionResultID,
	})
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusCreated, gr)
}

// listGradesHandler handles GET /api/v1/grades.
func (s *Server) listGradesHandler(c *echo.Context) error {
	var filter services.GradeFilter
	if v := c.QueryParam("grader_id"); v != "" {
		filter.GraderID = &v
	}
	if v := c.QueryParam("trace_id"); v != "" {
		filter.TraceID = &v
	}
	if v := c.QueryParam("execution_result_id"); v != "" {
		filter.ExecutionResultID = &v
	}
	grades, err := s.grades.ListGrades(c.Request().Context(), filter)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, grades)
}

// getGradeHandler handles GET /api/v1/grades/:id.
func (s *Server) getGradeHandler(c *echo.Context) error {
	gr, err := s.grades.GetGrade(c.Request().Context(), c.Param("id"))
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, gr)
}

// deleteGradeHandler handles DELETE /api/v1/grades/:id.
func (s *Server) deleteGradeHandler(c *echo.Context) error {
	if err := s.grades.DeleteGrade(c.Request().Context(), c.Param("id")); err != nil {
		return mapServiceError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

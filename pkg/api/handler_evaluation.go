package api

import (
	"net/http"

	echo "github.com/labstack/echo/v5"

	"github.com/promptlens/promptlens/ent"
	"github.com/promptlens/promptlens/pkg/evaluation"
	"github.com/promptlens/promptlens/pkg/services"
)

// EvaluationConfigRequest is the body of PUT
// /api/v1/tasks/:id/evaluation-config.
type EvaluationConfigRequest struct {
	QualityWeight float64  `json:"quality_weight"`
	CostWeight    float64  `json:"cost_weight"`
	TimeWeight    float64  `json:"time_weight"`
	GraderIDs     []string `json:"grader_ids"`
}

// upsertEvaluationConfigHandler handles PUT /api/v1/tasks/:id/evaluation-config.
func (s *Server) upsertEvaluationConfigHandler(c *echo.Context) error {
	var req EvaluationConfigRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	cfg, err := s.configs.UpsertConfig(c.Request().Context(), c.Param("id"), services.EvaluationConfigInput{
		QualityWeight: req.QualityWeight,
		CostWeight:    req.CostWeight,
		TimeWeight:    req.TimeWeight,
		GraderIDs:     req.GraderIDs,
	})
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, cfg)
}

// getEvaluationConfigHandler handles GET /api/v1/tasks/:id/evaluation-config.
func (s *Server) getEvaluationConfigHandler(c *echo.Context) error {
	cfg, err := s.configs.GetConfig(c.Request().Context(), c.Param("id"))
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, cfg)
}

// CreateEvaluationRequest is the body of POST /api/v1/evaluations.
type CreateEvaluationRequest struct {
	ImplementationID string `json:"implementation_id"`
}

// EvaluationResponse is an evaluation with its derived scores.
type EvaluationResponse struct {
	*ent.Evaluation
	evaluation.ComputedScores
}

// createEvaluationHandler handles POST /api/v1/evaluations: validates the
// setup, returns the RUNNING row and executes in the background.
func (s *Server) createEvaluationHandler(c *echo.Context) error {
	var req CreateEvaluationRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if req.ImplementationID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "implementation_id is required")
	}
	ev, err := s.evaluations.CreateEvaluation(c.Request().Context(), req.ImplementationID)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusCreated, ev)
}

// listEvaluationsHandler handles GET /api/v1/evaluations.
func (s *Server) listEvaluationsHandler(c *echo.Context) error {
	var filter evaluation.EvaluationFilter
	if v := c.QueryParam("task_id"); v != "" {
		filter.TaskID = &v
	}
	if v := c.QueryParam("implementation_id"); v != "" {
		filter.ImplementationID = &v
	}
	evals, err := s.evaluations.ListEvaluations(c.Request().Context(), filter)
	if err != nil {
		return mapServiceError(err)
	}

	out := make([]EvaluationResponse, 0, len(evals))
	for _, ev := range evals {
		scores, err := s.evaluations.ComputeScores(c.Request().Context(), ev)
		if err != nil {
			return mapServiceError(err)
		}
		out = append(out, EvaluationResponse{Evaluation: ev, ComputedScores: scores})
	}
	return c.JSON(http.StatusOK, out)
}

// getEvaluationHandler handles GET /api/v1/evaluations/:id.
func (s *Server) getEvaluationHandler(c *echo.Context) error {
	ev, err := s.evaluations.GetEvaluation(c.Request().Context(), c.Param("id"))
	if err != nil {
		return mapServiceError(err)
	}
	scores, err := s.evaluations.ComputeScores(c.Request().Context(), ev)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, EvaluationResponse{Evaluation: ev, ComputedScores: scores})
}

// deleteEvaluationHandler handles DELETE /api/v1/evaluations/:id.
func (s *Server) deleteEvaluationHandler(c *echo.Context) error {
	if err := s.evaluations.DeleteEvaluation(c.Request().Context(), c.Param("id")); err != nil {
		return mapServiceError(err)
	}
	return c.NoContent(http.StatusNoContent)
}
